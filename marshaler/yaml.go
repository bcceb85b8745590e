package marshaler

import (
	"github.com/dogmatiq/enumkit/enumset"
	"github.com/dogmatiq/enumkit/internal/errorx"
	"github.com/dogmatiq/enumkit/repr"
	"github.com/goccy/go-yaml"
)

// NewYAML returns a marshaler that encodes sets of S as a YAML sequence of
// symbol names.
//
// It fails if the domain's list codec does not permit the operation.
func NewYAML[S enumset.Symbol[S, W], W repr.Word[W]]() Marshaler[enumset.Set[S, W]] {
	return New(
		func(s enumset.Set[S, W]) (_ []byte, err error) {
			defer errorx.Wrap(&err, "unable to marshal %s to YAML", s.Domain().Name())
			return yaml.Marshal(s)
		},
		func(data []byte) (s enumset.Set[S, W], err error) {
			defer errorx.Wrap(&err, "unable to unmarshal %s from YAML", s.Domain().Name())
			err = yaml.Unmarshal(data, &s)
			return s, err
		},
	)
}
