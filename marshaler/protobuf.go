package marshaler

import (
	"fmt"

	"github.com/dogmatiq/enumkit/enumset"
	"github.com/dogmatiq/enumkit/internal/errorx"
	"github.com/dogmatiq/enumkit/repr"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// NewProto returns a marshaler that marshals and unmarshals Protocol Buffers
// messages.
func NewProto[
	T interface {
		proto.Message
		*M
	},
	M any,
]() Marshaler[T] {
	return New(
		func(m T) ([]byte, error) {
			return proto.Marshal(m)
		},
		func(data []byte) (T, error) {
			var m T = new(M)
			return m, proto.Unmarshal(data, m)
		},
	)
}

// NewProtoList returns a marshaler that encodes sets of S as a
// google.protobuf.ListValue containing the name of each member as a string
// value.
//
// It fails if the domain's list codec does not permit the operation.
func NewProtoList[S enumset.Symbol[S, W], W repr.Word[W]]() Marshaler[enumset.Set[S, W]] {
	m := NewProto[*structpb.ListValue]()

	return New(
		func(s enumset.Set[S, W]) (_ []byte, err error) {
			defer errorx.Wrap(&err, "unable to marshal %s to protocol buffers", s.Domain().Name())

			names, err := listNames(s)
			if err != nil {
				return nil, err
			}

			list := &structpb.ListValue{
				Values: make([]*structpb.Value, len(names)),
			}
			for i, n := range names {
				list.Values[i] = structpb.NewStringValue(n)
			}

			return m.Marshal(list)
		},
		func(data []byte) (s enumset.Set[S, W], err error) {
			defer errorx.Wrap(&err, "unable to unmarshal %s from protocol buffers", s.Domain().Name())

			list, err := m.Unmarshal(data)
			if err != nil {
				return s, err
			}

			names := make([]string, len(list.GetValues()))
			for i, v := range list.GetValues() {
				str, ok := v.GetKind().(*structpb.Value_StringValue)
				if !ok {
					return s, fmt.Errorf("element %d is not a string", i)
				}
				names[i] = str.StringValue
			}

			return fromListNames[S, W](names)
		},
	)
}
