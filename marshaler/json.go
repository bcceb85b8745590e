package marshaler

import (
	"github.com/dogmatiq/enumkit/enumset"
	"github.com/dogmatiq/enumkit/internal/errorx"
	"github.com/dogmatiq/enumkit/repr"
	"github.com/goccy/go-json"
)

// NewJSON returns a marshaler that encodes sets of S as a JSON array of symbol
// names.
//
// It fails if the domain's list codec does not permit the operation.
func NewJSON[S enumset.Symbol[S, W], W repr.Word[W]]() Marshaler[enumset.Set[S, W]] {
	return New(
		func(s enumset.Set[S, W]) (_ []byte, err error) {
			defer errorx.Wrap(&err, "unable to marshal %s to JSON", s.Domain().Name())
			return json.Marshal(s)
		},
		func(data []byte) (s enumset.Set[S, W], err error) {
			defer errorx.Wrap(&err, "unable to unmarshal %s from JSON", s.Domain().Name())
			err = json.Unmarshal(data, &s)
			return s, err
		},
	)
}
