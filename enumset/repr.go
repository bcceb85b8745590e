package enumset

import "github.com/dogmatiq/enumkit/repr"

// ToRepr returns the integer representation of s.
//
// Bit i is set if the i'th symbol of the domain is a member.
func (s Set[S, W]) ToRepr() W {
	return s.items
}

// FromRepr returns the set represented by r.
//
// It returns false if r has bits set that do not correspond to any symbol.
func FromRepr[S Symbol[S, W], W repr.Word[W]](r W) (Set[S, W], bool) {
	masked := r.And(domainOf[S, W]().Mask())
	if masked != r {
		return Set[S, W]{}, false
	}
	return Set[S, W]{masked}, true
}

// IsValidRepr returns true if r has no bits set that do not correspond to a
// symbol.
func IsValidRepr[S Symbol[S, W], W repr.Word[W]](r W) bool {
	return r.And(domainOf[S, W]().Mask()) == r
}

// FromReprUnchecked returns the set represented by r without validating it.
//
// It is the only way to construct a set that violates the mask invariant. The
// caller must guarantee that [IsValidRepr] returns true for r. Otherwise, the
// result is a corrupt set: [Set.Len] counts the stray bits, [Set.IsEmpty]
// returns false for a set without members, equality with valid sets is
// meaningless and iteration panics upon reaching a stray bit.
func FromReprUnchecked[S Symbol[S, W], W repr.Word[W]](r W) Set[S, W] {
	return Set[S, W]{r}
}

// FromReprMasked returns the set represented by r, silently discarding any
// bits that do not correspond to a symbol.
func FromReprMasked[S Symbol[S, W], W repr.Word[W]](r W) Set[S, W] {
	return Set[S, W]{r.And(domainOf[S, W]().Mask())}
}

// FromReprDiscarded returns the set represented by r, discarding any bits that
// do not correspond to a symbol. The discarded bits are returned as the second
// value.
func FromReprDiscarded[S Symbol[S, W], W repr.Word[W]](r W) (Set[S, W], W) {
	mask := domainOf[S, W]().Mask()
	return Set[S, W]{r.And(mask)}, r.AndNot(mask)
}
