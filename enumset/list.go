package enumset

import (
	"bytes"

	"github.com/dogmatiq/enumkit/repr"
	"github.com/goccy/go-json"
)

// Names returns the external identifiers of the members of s in domain order.
func (s Set[S, W]) Names() []string {
	d := domainOf[S, W]()
	names := make([]string, 0, s.Len())

	for items := s.items; !items.IsZero(); {
		i := items.TrailingZeros()
		items = items.AndNot(items.Bit(i))
		names = append(names, d.SymbolName(i))
	}

	return names
}

// FromNames returns a set containing the symbols with the given external
// identifiers.
//
// The identifiers may be in any order and may contain duplicates. It returns
// an [UnknownNameError] if any identifier does not name a symbol.
func FromNames[S Symbol[S, W], W repr.Word[W]](names []string) (Set[S, W], error) {
	d := domainOf[S, W]()

	var items W
	for _, n := range names {
		i, ok := d.Lookup(n)
		if !ok {
			return Set[S, W]{}, UnknownNameError{d.Name(), n}
		}
		items = items.Or(items.Bit(i))
	}

	return Set[S, W]{items}, nil
}

// MarshalJSON returns the list encoding of s as a JSON array of strings.
func (s Set[S, W]) MarshalJSON() ([]byte, error) {
	if err := checkEncode[S, W](); err != nil {
		return nil, err
	}
	return json.Marshal(s.Names())
}

// UnmarshalJSON replaces s with the set described by a JSON array of
// identifiers.
//
// It returns a [NullListError] if data is the JSON null literal.
func (s *Set[S, W]) UnmarshalJSON(data []byte) error {
	if err := checkDecode[S, W](); err != nil {
		return err
	}

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return NullListError{domainOf[S, W]().Name()}
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}

	return s.setNames(names)
}

// MarshalYAML returns the list encoding of s as a YAML sequence.
func (s Set[S, W]) MarshalYAML() (any, error) {
	if err := checkEncode[S, W](); err != nil {
		return nil, err
	}
	return s.Names(), nil
}

// UnmarshalYAML replaces s with the set described by a YAML sequence of
// identifiers.
func (s *Set[S, W]) UnmarshalYAML(unmarshal func(any) error) error {
	if err := checkDecode[S, W](); err != nil {
		return err
	}

	var names []string
	if err := unmarshal(&names); err != nil {
		return err
	}

	return s.setNames(names)
}

func (s *Set[S, W]) setNames(names []string) error {
	v, err := FromNames[S, W](names)
	if err != nil {
		return err
	}

	*s = v
	return nil
}

func checkEncode[S Symbol[S, W], W repr.Word[W]]() error {
	d := domainOf[S, W]()
	if d.ListCodec().CanEncode() {
		return nil
	}
	return ListCodecDisabledError{d.Name(), "encoding"}
}

func checkDecode[S Symbol[S, W], W repr.Word[W]]() error {
	d := domainOf[S, W]()
	if d.ListCodec().CanDecode() {
		return nil
	}
	return ListCodecDisabledError{d.Name(), "decoding"}
}
