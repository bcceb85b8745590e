package telemetry

import (
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

type namedError struct{}

func (*namedError) Error() string { return "<error>" }

func TestAttr(t *testing.T) {
	cases := []struct {
		Name string
		Attr Attr
		Want attribute.KeyValue
	}{
		{"String", String("k", "v"), attribute.String("k", "v")},
		{"Stringer", Stringer("k", time.Second), attribute.String("k", "1s")},
		{"Bool", Bool("k", true), attribute.Bool("k", true)},
		{"false Bool", Bool("k", false), attribute.Bool("k", false)},
		{"Int", Int("k", uint8(200)), attribute.Int64("k", 200)},
		{"negative Int", Int("k", -3), attribute.Int64("k", -3)},
		{"Type of pointer", Type("k", &namedError{}), attribute.String("k", "telemetry.namedError")},
		{"Type of interface", Type[error]("k", nil), attribute.String("k", "error")},
		{"Binary", Binary("k", []byte("a\x00")), attribute.String("k", `"a\x00"`)},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			got, ok := c.Attr.asAttrKeyValue()
			if !ok {
				t.Fatal("expected attribute to be present")
			}

			if got != c.Want {
				t.Fatalf("unexpected attribute: got %v, want %v", got, c.Want)
			}
		})
	}

	t.Run("Binary truncates long values", func(t *testing.T) {
		got, _ := Binary("k", []byte(strings.Repeat("x", 100))).asAttrKeyValue()

		if got.Key != "k_truncated" {
			t.Fatalf("unexpected key: got %q, want %q", got.Key, "k_truncated")
		}

		if n := len(got.Value.AsString()); n != 66 {
			t.Fatalf("unexpected length: got %d, want 66", n)
		}
	})

	t.Run("the zero value is omitted", func(t *testing.T) {
		kvs := asAttrKeyValues([]Attr{{}, String("k", "v")})

		if len(kvs) != 1 {
			t.Fatalf("unexpected number of attributes: got %d, want 1", len(kvs))
		}
	})
}
