package enumset

import (
	"iter"

	"github.com/dogmatiq/enumkit/repr"
)

// Iterator yields the members of a set in domain order.
//
// An Iterator is consumed as it is used; call [Set.Iter] again to start over.
type Iterator[S Symbol[S, W], W repr.Word[W]] struct {
	items W
}

// Iter returns an iterator over the members of s.
//
// Members are yielded in the order in which they appear in the domain,
// regardless of the order in which they were added.
func (s Set[S, W]) Iter() Iterator[S, W] {
	return Iterator[S, W]{s.items}
}

// Next returns the next member. It returns false when there are no more
// members.
func (it *Iterator[S, W]) Next() (S, bool) {
	if it.items.IsZero() {
		var zero S
		return zero, false
	}

	i := it.items.TrailingZeros()
	it.items = it.items.AndNot(it.items.Bit(i))

	// The index is in range as long as the set satisfies the mask invariant.
	return domainOf[S, W]().Symbol(i), true
}

// Len returns the number of members that have not yet been yielded.
func (it *Iterator[S, W]) Len() int {
	return it.items.OnesCount()
}

// Count consumes the iterator and returns the number of members that had not
// yet been yielded.
func (it *Iterator[S, W]) Count() int {
	n := it.items.OnesCount()
	it.items = it.items.AndNot(it.items)
	return n
}

// Seq returns an [iter.Seq] that consumes the remaining members.
func (it *Iterator[S, W]) Seq() iter.Seq[S] {
	return func(yield func(S) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Members returns an [iter.Seq] over the members of s in domain order.
func (s Set[S, W]) Members() iter.Seq[S] {
	return func(yield func(S) bool) {
		it := s.Iter()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Slice returns the members of s in domain order.
func (s Set[S, W]) Slice() []S {
	return s.AppendTo(make([]S, 0, s.Len()))
}

// AppendTo appends the members of s to dst in domain order and returns the
// extended slice.
func (s Set[S, W]) AppendTo(dst []S) []S {
	it := s.Iter()
	for {
		v, ok := it.Next()
		if !ok {
			return dst
		}
		dst = append(dst, v)
	}
}
