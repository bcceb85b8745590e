package testdomain

import (
	"github.com/dogmatiq/enumkit/enumset"
	"github.com/dogmatiq/enumkit/repr"
	"pgregory.net/rapid"
)

// Symbols returns a generator that draws symbols from the domain of S.
func Symbols[S enumset.Symbol[S, W], W repr.Word[W]]() *rapid.Generator[S] {
	var zero S
	return rapid.SampledFrom(zero.Domain().Symbols())
}

// Sets returns a generator that draws valid sets of S.
func Sets[S enumset.Symbol[S, W], W repr.Word[W]]() *rapid.Generator[enumset.Set[S, W]] {
	symbols := Symbols[S, W]()

	return rapid.Custom(func(t *rapid.T) enumset.Set[S, W] {
		members := rapid.SliceOf(symbols).Draw(t, "members")
		return enumset.Of[S, W](members...)
	})
}
