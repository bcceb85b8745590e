package enumset

import "iter"

// Insert adds v to the set. It has no effect if v is already a member.
//
// It panics if v is not a member of the domain.
func (s *Set[S, W]) Insert(v S) {
	s.items = s.items.Or(mustBitOf[S, W](v))
}

// Remove removes v from the set. It has no effect if v is not a member.
func (s *Set[S, W]) Remove(v S) {
	if b, ok := bitOf[S, W](v); ok {
		s.items = s.items.AndNot(b)
	}
}

// Extend adds each symbol yielded by seq to the set.
//
// It panics if any of the symbols is not a member of the domain.
func (s *Set[S, W]) Extend(seq iter.Seq[S]) {
	for v := range seq {
		s.Insert(v)
	}
}

// With returns a copy of s with the given symbols added.
//
// It panics if any of the symbols is not a member of the domain.
func (s Set[S, W]) With(symbols ...S) Set[S, W] {
	for _, v := range symbols {
		s.Insert(v)
	}
	return s
}

// Without returns a copy of s with the given symbols removed.
func (s Set[S, W]) Without(symbols ...S) Set[S, W] {
	for _, v := range symbols {
		s.Remove(v)
	}
	return s
}

// UnionWith adds the members of o to s.
func (s *Set[S, W]) UnionWith(o Set[S, W]) {
	s.items = s.items.Or(o.items)
}

// IntersectWith removes the members of s that are not in o.
func (s *Set[S, W]) IntersectWith(o Set[S, W]) {
	s.items = s.items.And(o.items)
}

// DifferenceWith removes the members of o from s.
func (s *Set[S, W]) DifferenceWith(o Set[S, W]) {
	s.items = s.items.AndNot(o.items)
}

// SymmetricDifferenceWith replaces s with the symbols that are in exactly one
// of s and o.
func (s *Set[S, W]) SymmetricDifferenceWith(o Set[S, W]) {
	s.items = s.items.Xor(o.items)
}
