package marshaler

import (
	"fmt"

	"github.com/dogmatiq/enumkit/enumset"
	"github.com/dogmatiq/enumkit/internal/errorx"
	"github.com/dogmatiq/enumkit/repr"
	"github.com/tinylib/msgp/msgp"
)

// NewMessagePack returns a marshaler that encodes sets of S as a MessagePack
// array of symbol names.
//
// It fails if the domain's list codec does not permit the operation.
func NewMessagePack[S enumset.Symbol[S, W], W repr.Word[W]]() Marshaler[enumset.Set[S, W]] {
	return New(
		func(s enumset.Set[S, W]) (_ []byte, err error) {
			defer errorx.Wrap(&err, "unable to marshal %s to MessagePack", s.Domain().Name())

			names, err := listNames(s)
			if err != nil {
				return nil, err
			}

			size := msgp.ArrayHeaderSize
			for _, n := range names {
				size += msgp.StringPrefixSize + len(n)
			}

			data := msgp.AppendArrayHeader(make([]byte, 0, size), uint32(len(names)))
			for _, n := range names {
				data = msgp.AppendString(data, n)
			}

			return data, nil
		},
		func(data []byte) (s enumset.Set[S, W], err error) {
			defer errorx.Wrap(&err, "unable to unmarshal %s from MessagePack", s.Domain().Name())

			n, data, err := msgp.ReadArrayHeaderBytes(data)
			if err != nil {
				return s, err
			}

			if int64(n) > int64(len(data)) {
				return s, fmt.Errorf("array of %d elements exceeds the remaining %d bytes", n, len(data))
			}

			names := make([]string, n)
			for i := range names {
				names[i], data, err = msgp.ReadStringBytes(data)
				if err != nil {
					return s, err
				}
			}

			if len(data) != 0 {
				return s, fmt.Errorf("unexpected %d trailing bytes", len(data))
			}

			return fromListNames[S, W](names)
		},
	)
}
