package marshaler_test

import (
	"errors"
	"testing"

	"github.com/dogmatiq/enumkit/enumset"
	"github.com/dogmatiq/enumkit/internal/testdomain"
	. "github.com/dogmatiq/enumkit/marshaler"
	"github.com/dogmatiq/enumkit/repr"
	"github.com/google/go-cmp/cmp"
	"github.com/tinylib/msgp/msgp"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestNew(t *testing.T) {
	m := New(
		func(v string) ([]byte, error) { return []byte(v), nil },
		func(data []byte) (string, error) { return string(data), nil },
	)

	data, err := m.Marshal("<value>")
	if err != nil {
		t.Fatal(err)
	}

	got, err := m.Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}

	if want := "<value>"; got != want {
		t.Fatalf("unexpected value: got %q, want %q", got, want)
	}
}

func TestConformance(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		t.Run("TriSet", func(t *testing.T) { RunTests(t, NewJSON[testdomain.Tri, repr.U8]()) })
		t.Run("StateSet", func(t *testing.T) { RunTests(t, NewJSON[testdomain.State, repr.U16]()) })
		t.Run("WideSet", func(t *testing.T) { RunTests(t, NewJSON[testdomain.Wide, repr.U128]()) })
	})

	t.Run("YAML", func(t *testing.T) {
		t.Run("CommentSet", func(t *testing.T) { RunTests(t, NewYAML[testdomain.Comment, repr.U16]()) })
		t.Run("LetterSet", func(t *testing.T) { RunTests(t, NewYAML[testdomain.Letter, repr.U32]()) })
	})

	t.Run("ProtoList", func(t *testing.T) {
		t.Run("OpaqueSet", func(t *testing.T) { RunTests(t, NewProtoList[testdomain.Opaque, repr.U8]()) })
		t.Run("FlagSet", func(t *testing.T) { RunTests(t, NewProtoList[testdomain.Flag, repr.U64]()) })
	})

	t.Run("MessagePack", func(t *testing.T) {
		t.Run("SoloSet", func(t *testing.T) { RunTests(t, NewMessagePack[testdomain.Solo, repr.U8]()) })
		t.Run("WideSet", func(t *testing.T) { RunTests(t, NewMessagePack[testdomain.Wide, repr.U128]()) })
	})

	t.Run("Repr", func(t *testing.T) {
		t.Run("PairSet", func(t *testing.T) { RunTests(t, NewRepr[testdomain.Pair, repr.U8]()) })
		t.Run("CommentSet", func(t *testing.T) { RunTests(t, NewRepr[testdomain.Comment, repr.U16]()) })
		t.Run("LetterSet", func(t *testing.T) { RunTests(t, NewRepr[testdomain.Letter, repr.U32]()) })
		t.Run("FlagSet", func(t *testing.T) { RunTests(t, NewRepr[testdomain.Flag, repr.U64]()) })
		t.Run("WideSet", func(t *testing.T) { RunTests(t, NewRepr[testdomain.Wide, repr.U128]()) })
		t.Run("SealedSet", func(t *testing.T) { RunTests(t, NewRepr[testdomain.Sealed, repr.U8]()) })
	})
}

func TestNewJSON(t *testing.T) {
	m := NewJSON[testdomain.Tri, repr.U8]()

	data, err := m.Marshal(enumset.Of[testdomain.Tri, repr.U8](testdomain.Z, testdomain.X))
	if err != nil {
		t.Fatal(err)
	}

	if got, want := string(data), `["X","Z"]`; got != want {
		t.Fatalf("unexpected JSON: got %s, want %s", got, want)
	}

	if _, err := m.Unmarshal([]byte(`["X","W"]`)); err == nil {
		t.Fatal("expected an error")
	}

	if _, err := NewJSON[testdomain.Sealed, repr.U8]().Marshal(testdomain.SealedSet{}); err == nil {
		t.Fatal("expected an error")
	}
}

func TestNewYAML(t *testing.T) {
	m := NewYAML[testdomain.Outbound, repr.U8]()

	if _, err := m.Marshal(enumset.All[testdomain.Outbound, repr.U8]()); err != nil {
		t.Fatal(err)
	}

	if _, err := m.Unmarshal([]byte("- Sent\n")); err == nil {
		t.Fatal("expected an error")
	}
}

func TestNewProtoList(t *testing.T) {
	m := NewProtoList[testdomain.State, repr.U16]()

	t.Run("it encodes the names as a list of strings", func(t *testing.T) {
		data, err := m.Marshal(enumset.Of[testdomain.State, repr.U16](testdomain.TimeToLeave, testdomain.Awake))
		if err != nil {
			t.Fatal(err)
		}

		var list structpb.ListValue
		if err := proto.Unmarshal(data, &list); err != nil {
			t.Fatal(err)
		}

		want := []any{"Awake", "TimeToLeave"}
		if diff := cmp.Diff(want, list.AsSlice()); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("it returns an error if an element is not a string", func(t *testing.T) {
		list, err := structpb.NewList([]any{"Awake", 1.0})
		if err != nil {
			t.Fatal(err)
		}

		data, err := proto.Marshal(list)
		if err != nil {
			t.Fatal(err)
		}

		if _, err := m.Unmarshal(data); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("it returns an error if a name is unknown", func(t *testing.T) {
		list, err := structpb.NewList([]any{"Awake", "Hibernating"})
		if err != nil {
			t.Fatal(err)
		}

		data, err := proto.Marshal(list)
		if err != nil {
			t.Fatal(err)
		}

		_, err = m.Unmarshal(data)

		var target enumset.UnknownNameError
		if !errors.As(err, &target) {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := "Hibernating"; target.Identifier != want {
			t.Fatalf("unexpected identifier: got %q, want %q", target.Identifier, want)
		}
	})

	t.Run("it returns an error if the list codec is disabled", func(t *testing.T) {
		_, err := NewProtoList[testdomain.Sealed, repr.U8]().Marshal(testdomain.SealedSet{})

		want := enumset.ListCodecDisabledError{Domain: "SealedSet", Operation: "encoding"}
		if !errors.Is(err, want) {
			t.Fatalf("unexpected error: got %v, want %v", err, want)
		}
	})
}

func TestNewMessagePack(t *testing.T) {
	m := NewMessagePack[testdomain.Tri, repr.U8]()

	t.Run("it encodes the names as an array of strings", func(t *testing.T) {
		data, err := m.Marshal(enumset.Of[testdomain.Tri, repr.U8](testdomain.Y, testdomain.X))
		if err != nil {
			t.Fatal(err)
		}

		want := []byte{0x92, 0xa1, 'X', 0xa1, 'Y'}
		if diff := cmp.Diff(want, data); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("it returns an error if the data is truncated", func(t *testing.T) {
		if _, err := m.Unmarshal([]byte{0x92, 0xa1, 'X'}); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("it returns an error if there is trailing data", func(t *testing.T) {
		data := msgp.AppendArrayHeader(nil, 1)
		data = msgp.AppendString(data, "X")
		data = msgp.AppendString(data, "Y")

		if _, err := m.Unmarshal(data); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("it returns an error if the list codec is disabled", func(t *testing.T) {
		_, err := NewMessagePack[testdomain.Outbound, repr.U8]().Unmarshal([]byte{0x90})

		want := enumset.ListCodecDisabledError{Domain: "OutboundSet", Operation: "decoding"}
		if !errors.Is(err, want) {
			t.Fatalf("unexpected error: got %v, want %v", err, want)
		}
	})
}

func TestNewRepr(t *testing.T) {
	t.Run("it encodes the representation in little-endian order", func(t *testing.T) {
		m := NewRepr[testdomain.State, repr.U16]()

		data, err := m.Marshal(enumset.Of[testdomain.State, repr.U16](testdomain.Awake, testdomain.Sleeping))
		if err != nil {
			t.Fatal(err)
		}

		if diff := cmp.Diff([]byte{0x01, 0x01}, data); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("it encodes 128-bit representations as 16 bytes", func(t *testing.T) {
		m := NewRepr[testdomain.Wide, repr.U128]()

		data, err := m.Marshal(enumset.Of[testdomain.Wide, repr.U128](99))
		if err != nil {
			t.Fatal(err)
		}

		want := make([]byte, 16)
		want[12] = 0x08

		if diff := cmp.Diff(want, data); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("it returns an error if bits do not map to symbols", func(t *testing.T) {
		m := NewRepr[testdomain.Comment, repr.U16]()

		_, err := m.Unmarshal([]byte{0x0a, 0x00})

		want := enumset.InvalidReprError[repr.U16]{
			Domain:    "CommentSet",
			Repr:      0b1010,
			Discarded: 0b1000,
		}
		if !errors.Is(err, want) {
			t.Fatalf("unexpected error: got %v, want %v", err, want)
		}
	})

	t.Run("it returns an error if the data is the wrong size", func(t *testing.T) {
		m := NewRepr[testdomain.Letter, repr.U32]()

		_, err := m.Unmarshal([]byte{0x01, 0x00})

		want := ReprSizeError{Domain: "LetterSet", Want: 4, Got: 2}
		if !errors.Is(err, want) {
			t.Fatalf("unexpected error: got %v, want %v", err, want)
		}
	})

	t.Run("it ignores the list codec", func(t *testing.T) {
		m := NewRepr[testdomain.Sealed, repr.U8]()

		got, err := m.Unmarshal([]byte{0x02})
		if err != nil {
			t.Fatal(err)
		}

		if want := enumset.Of[testdomain.Sealed, repr.U8](testdomain.Bolted); got != want {
			t.Fatalf("unexpected set: got %v, want %v", got, want)
		}
	})
}
