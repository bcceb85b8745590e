package marshaler

import (
	"testing"

	"github.com/dogmatiq/enumkit/enumset"
	"github.com/dogmatiq/enumkit/repr"
	"pgregory.net/rapid"
)

// RunTests runs tests that confirm a [Marshaler] of sets of S behaves
// correctly.
//
// The domain of S must permit both encoding and decoding.
func RunTests[S enumset.Symbol[S, W], W repr.Word[W]](
	t *testing.T,
	m Marshaler[enumset.Set[S, W]],
) {
	roundTrip := func(t interface {
		Helper()
		Fatal(...any)
		Fatalf(string, ...any)
	}, want enumset.Set[S, W]) {
		t.Helper()

		data, err := m.Marshal(want)
		if err != nil {
			t.Fatal(err)
		}

		got, err := m.Unmarshal(data)
		if err != nil {
			t.Fatal(err)
		}

		if got != want {
			t.Fatalf("unexpected set: got %v, want %v", got, want)
		}
	}

	t.Run("it round-trips the empty set", func(t *testing.T) {
		t.Parallel()
		roundTrip(t, enumset.Empty[S, W]())
	})

	t.Run("it round-trips the full set", func(t *testing.T) {
		t.Parallel()
		roundTrip(t, enumset.All[S, W]())
	})

	t.Run("it round-trips each single-member set", func(t *testing.T) {
		t.Parallel()

		for s := range enumset.All[S, W]().Members() {
			roundTrip(t, enumset.Of[S, W](s))
		}
	})

	t.Run("it round-trips arbitrary sets", func(t *testing.T) {
		t.Parallel()

		symbols := rapid.SampledFrom(enumset.All[S, W]().Slice())

		rapid.Check(t, func(t *rapid.T) {
			members := rapid.SliceOf(symbols).Draw(t, "members")
			roundTrip(t, enumset.Of[S, W](members...))
		})
	})

	t.Run("it produces the same data for equal sets", func(t *testing.T) {
		t.Parallel()

		symbols := enumset.All[S, W]().Slice()

		forward := enumset.Of[S, W](symbols...)

		var reverse enumset.Set[S, W]
		for i := len(symbols) - 1; i >= 0; i-- {
			reverse.Insert(symbols[i])
		}

		a, err := m.Marshal(forward)
		if err != nil {
			t.Fatal(err)
		}

		b, err := m.Marshal(reverse)
		if err != nil {
			t.Fatal(err)
		}

		if string(a) != string(b) {
			t.Fatalf("unexpected data: got %q, want %q", b, a)
		}
	})
}
