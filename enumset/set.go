package enumset

import (
	"iter"

	"github.com/dogmatiq/enumkit/domain"
	"github.com/dogmatiq/enumkit/repr"
)

// Set is a set of S values, implemented as a bit field.
//
// The zero value is the empty set. Sets are values: they can be copied freely
// and compared with ==, which compares their members.
//
// A Set has exactly the size and alignment of W.
type Set[S Symbol[S, W], W repr.Word[W]] struct {
	// items has bit i set if the i'th symbol of the domain is a member. Bits at
	// or above the domain's length are always zero.
	items W
}

// Empty returns a set with no members.
func Empty[S Symbol[S, W], W repr.Word[W]]() Set[S, W] {
	return Set[S, W]{}
}

// All returns a set containing every symbol of the domain.
func All[S Symbol[S, W], W repr.Word[W]]() Set[S, W] {
	return Set[S, W]{domainOf[S, W]().Mask()}
}

// Of returns a set containing the given symbols. Duplicates are ignored.
//
// It panics if any of the symbols is not a member of the domain.
func Of[S Symbol[S, W], W repr.Word[W]](symbols ...S) Set[S, W] {
	var items W
	for _, s := range symbols {
		items = items.Or(mustBitOf[S, W](s))
	}
	return Set[S, W]{items}
}

// FromSeq returns a set containing the symbols yielded by seq. Duplicates are
// ignored.
//
// It panics if any of the symbols is not a member of the domain.
func FromSeq[S Symbol[S, W], W repr.Word[W]](seq iter.Seq[S]) Set[S, W] {
	var set Set[S, W]
	set.Extend(seq)
	return set
}

// Domain returns the domain of the set's symbols.
func (s Set[S, W]) Domain() *domain.Domain[S, W] {
	return domainOf[S, W]()
}

// IsEmpty returns true if the set has no members.
func (s Set[S, W]) IsEmpty() bool {
	return s.items.IsZero()
}

// IsAll returns true if the set contains every symbol of the domain.
func (s Set[S, W]) IsAll() bool {
	return s.items == domainOf[S, W]().Mask()
}

// Len returns the number of members.
func (s Set[S, W]) Len() int {
	return s.items.OnesCount()
}

// Contains returns true if v is a member of the set.
//
// It returns false if v is not a member of the domain.
func (s Set[S, W]) Contains(v S) bool {
	b, ok := bitOf[S, W](v)
	return ok && !s.items.And(b).IsZero()
}
