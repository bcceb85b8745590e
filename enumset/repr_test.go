package enumset_test

import (
	"testing"

	. "github.com/dogmatiq/enumkit/enumset"
	"github.com/dogmatiq/enumkit/internal/testdomain"
	"github.com/dogmatiq/enumkit/repr"
	"pgregory.net/rapid"
)

func TestRepr(t *testing.T) {
	t.Run("FromRepr", func(t *testing.T) {
		comments := []testdomain.Comment{
			testdomain.TodoSinceFirstCommit,
			testdomain.BlackMagic,
			testdomain.LateNightRambling,
		}

		for r := range repr.U16(8) {
			var want testdomain.CommentSet
			for i, c := range comments {
				if r&(1<<i) != 0 {
					want.Insert(c)
				}
			}

			got, ok := FromRepr[testdomain.Comment, repr.U16](r)
			if !ok {
				t.Fatalf("expected %d to be a valid representation", r)
			}

			if got != want {
				t.Fatalf("unexpected set for %d: got %v, want %v", r, got, want)
			}
		}

		for _, r := range []repr.U16{8, 9, 10000} {
			if _, ok := FromRepr[testdomain.Comment, repr.U16](r); ok {
				t.Fatalf("did not expect %d to be a valid representation", r)
			}

			if IsValidRepr[testdomain.Comment, repr.U16](r) {
				t.Fatalf("did not expect IsValidRepr(%d) to return true", r)
			}
		}
	})

	t.Run("ToRepr", func(t *testing.T) {
		set := Of[testdomain.Comment, repr.U16](
			testdomain.TodoSinceFirstCommit,
			testdomain.LateNightRambling,
		)

		if got, want := set.ToRepr(), repr.U16(0b101); got != want {
			t.Fatalf("unexpected representation: got %#b, want %#b", got, want)
		}
	})

	t.Run("FromReprUnchecked", func(t *testing.T) {
		t.Run("it accepts a valid representation", func(t *testing.T) {
			got := FromReprUnchecked[testdomain.Comment, repr.U16](0b010)
			want := Of[testdomain.Comment, repr.U16](testdomain.BlackMagic)

			if got != want {
				t.Fatalf("unexpected set: got %v, want %v", got, want)
			}
		})

		t.Run("it retains stray bits", func(t *testing.T) {
			set := FromReprUnchecked[testdomain.Comment, repr.U16](256)

			if got, want := set.Len(), 1; got != want {
				t.Fatalf("unexpected length: got %d, want %d", got, want)
			}

			if set.IsEmpty() {
				t.Fatal("did not expect set to be empty")
			}

			for _, c := range []testdomain.Comment{
				testdomain.TodoSinceFirstCommit,
				testdomain.BlackMagic,
				testdomain.LateNightRambling,
			} {
				if set.Contains(c) {
					t.Fatalf("did not expect %d to be a member", c)
				}
			}

			if got, want := set.ToRepr(), repr.U16(256); got != want {
				t.Fatalf("unexpected representation: got %d, want %d", got, want)
			}
		})
	})

	t.Run("FromReprMasked", func(t *testing.T) {
		got := FromReprMasked[testdomain.Comment, repr.U16](0b1111_0110)
		want := Of[testdomain.Comment, repr.U16](
			testdomain.BlackMagic,
			testdomain.LateNightRambling,
		)

		if got != want {
			t.Fatalf("unexpected set: got %v, want %v", got, want)
		}
	})

	t.Run("FromReprDiscarded", func(t *testing.T) {
		got, discarded := FromReprDiscarded[testdomain.Comment, repr.U16](0b1111_0110)
		want := Of[testdomain.Comment, repr.U16](
			testdomain.BlackMagic,
			testdomain.LateNightRambling,
		)

		if got != want {
			t.Fatalf("unexpected set: got %v, want %v", got, want)
		}

		if want := repr.U16(0b1111_0000); discarded != want {
			t.Fatalf("unexpected discarded bits: got %#b, want %#b", discarded, want)
		}
	})

	t.Run("it supports 128-bit representations", func(t *testing.T) {
		set := Of[testdomain.Wide, repr.U128](0, 99)
		want := repr.U128{Lo: 1, Hi: 1 << 35}

		if got := set.ToRepr(); got != want {
			t.Fatalf("unexpected representation: got %+v, want %+v", got, want)
		}

		if _, ok := FromRepr[testdomain.Wide, repr.U128](repr.U128{Hi: 1 << 36}); ok {
			t.Fatal("did not expect bit 100 to be accepted")
		}
	})

	t.Run("property-based", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			r := repr.U128{
				Lo: rapid.Uint64().Draw(t, "lo"),
				Hi: rapid.Uint64().Draw(t, "hi"),
			}

			set, discarded := FromReprDiscarded[testdomain.Wide, repr.U128](r)

			if got := set.ToRepr().Or(discarded); got != r {
				t.Fatalf("kept and discarded bits do not recompose the input: got %+v, want %+v", got, r)
			}

			if !set.ToRepr().And(discarded).IsZero() {
				t.Fatal("kept and discarded bits overlap")
			}

			if got := FromReprMasked[testdomain.Wide, repr.U128](r); got != set {
				t.Fatalf("unexpected masked set: got %v, want %v", got, set)
			}

			checked, ok := FromRepr[testdomain.Wide, repr.U128](r)
			if ok != discarded.IsZero() {
				t.Fatalf("unexpected validity: got %t, want %t", ok, discarded.IsZero())
			}

			if ok != IsValidRepr[testdomain.Wide, repr.U128](r) {
				t.Fatal("FromRepr and IsValidRepr disagree")
			}

			if ok && checked != set {
				t.Fatalf("unexpected set: got %v, want %v", checked, set)
			}

			if roundTrip, ok := FromRepr[testdomain.Wide, repr.U128](set.ToRepr()); !ok || roundTrip != set {
				t.Fatalf("round trip failed: got %v, want %v", roundTrip, set)
			}
		})
	})
}
