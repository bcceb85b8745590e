package enumset

import (
	"github.com/dogmatiq/enumkit/domain"
	"github.com/dogmatiq/enumkit/repr"
)

// Symbol is the constraint satisfied by enumeration types whose values can be
// members of a [Set].
//
// Domain must return the same domain for every value of the type, including
// the zero value.
type Symbol[S comparable, W repr.Word[W]] interface {
	comparable
	Domain() *domain.Domain[S, W]
}

// domainOf returns the domain shared by all values of S.
func domainOf[S Symbol[S, W], W repr.Word[W]]() *domain.Domain[S, W] {
	var zero S
	return zero.Domain()
}

// bitOf returns the word with only the bit for s set. It returns false if s is
// not a member of its domain.
func bitOf[S Symbol[S, W], W repr.Word[W]](s S) (W, bool) {
	var zero W

	i, ok := s.Domain().Index(s)
	if !ok {
		return zero, false
	}

	return zero.Bit(i), true
}

// mustBitOf returns the word with only the bit for s set. It panics if s is not
// a member of its domain.
func mustBitOf[S Symbol[S, W], W repr.Word[W]](s S) W {
	b, ok := bitOf[S, W](s)
	if !ok {
		panic(newUnknownSymbolError[S, W](s))
	}
	return b
}
