package marshaler

import (
	"github.com/dogmatiq/enumkit/enumset"
	"github.com/dogmatiq/enumkit/internal/errorx"
	"github.com/dogmatiq/enumkit/repr"
)

// NewRepr returns a marshaler that encodes sets of S as the little-endian bytes
// of their integer representation.
//
// The encoding is always W.Width().Bytes() long. Unmarshaling fails with an
// [enumset.InvalidReprError] if the data has bits set that do not correspond
// to any symbol. Unlike the list encodings, it is available regardless of the
// domain's list codec.
func NewRepr[S enumset.Symbol[S, W], W repr.Word[W]]() Marshaler[enumset.Set[S, W]] {
	return New(
		func(s enumset.Set[S, W]) ([]byte, error) {
			r := s.ToRepr()
			return r.AppendLittleEndian(make([]byte, 0, r.Width().Bytes())), nil
		},
		func(data []byte) (s enumset.Set[S, W], err error) {
			d := s.Domain()
			defer errorx.Wrap(&err, "unable to unmarshal %s from its integer representation", d.Name())

			var zero W
			if n := zero.Width().Bytes(); len(data) != n {
				return s, ReprSizeError{d.Name(), n, len(data)}
			}

			r := zero.ReadLittleEndian(data)

			s, ok := enumset.FromRepr[S, W](r)
			if !ok {
				_, discarded := enumset.FromReprDiscarded[S, W](r)
				return s, enumset.InvalidReprError[W]{
					Domain:    d.Name(),
					Repr:      r,
					Discarded: discarded,
				}
			}

			return s, nil
		},
	)
}
