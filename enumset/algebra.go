package enumset

// Union returns a set of the symbols that are in s, o or both.
func (s Set[S, W]) Union(o Set[S, W]) Set[S, W] {
	return Set[S, W]{s.items.Or(o.items)}
}

// Intersection returns a set of the symbols that are in both s and o.
func (s Set[S, W]) Intersection(o Set[S, W]) Set[S, W] {
	return Set[S, W]{s.items.And(o.items)}
}

// Difference returns a set of the symbols that are in s but not in o.
func (s Set[S, W]) Difference(o Set[S, W]) Set[S, W] {
	// Both operands are already masked, so the result is too.
	return Set[S, W]{s.items.AndNot(o.items)}
}

// SymmetricDifference returns a set of the symbols that are in exactly one of
// s and o.
func (s Set[S, W]) SymmetricDifference(o Set[S, W]) Set[S, W] {
	return Set[S, W]{s.items.Xor(o.items)}
}

// Complement returns a set of the symbols in the domain that are not in s.
func (s Set[S, W]) Complement() Set[S, W] {
	return Set[S, W]{domainOf[S, W]().Mask().AndNot(s.items)}
}

// IsSubsetOf returns true if every member of s is also a member of o.
func (s Set[S, W]) IsSubsetOf(o Set[S, W]) bool {
	return s.items.And(o.items) == s.items
}

// IsSupersetOf returns true if every member of o is also a member of s.
func (s Set[S, W]) IsSupersetOf(o Set[S, W]) bool {
	return s.items.And(o.items) == o.items
}

// IsDisjoint returns true if s and o have no members in common.
func (s Set[S, W]) IsDisjoint(o Set[S, W]) bool {
	return s.items.And(o.items).IsZero()
}

// IsComplementary returns true if s and o are disjoint and together contain
// every symbol of the domain.
func (s Set[S, W]) IsComplementary(o Set[S, W]) bool {
	return s.IsDisjoint(o) && s.Union(o).IsAll()
}
