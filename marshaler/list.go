package marshaler

import (
	"github.com/dogmatiq/enumkit/enumset"
	"github.com/dogmatiq/enumkit/repr"
)

// listNames returns the names of the members of s, provided the domain permits
// encoding its sets as a list.
func listNames[S enumset.Symbol[S, W], W repr.Word[W]](s enumset.Set[S, W]) ([]string, error) {
	d := s.Domain()
	if !d.ListCodec().CanEncode() {
		return nil, enumset.ListCodecDisabledError{Domain: d.Name(), Operation: "encoding"}
	}
	return s.Names(), nil
}

// fromListNames returns the set of symbols with the given names, provided the
// domain permits decoding its sets from a list.
func fromListNames[S enumset.Symbol[S, W], W repr.Word[W]](names []string) (enumset.Set[S, W], error) {
	var s enumset.Set[S, W]

	d := s.Domain()
	if !d.ListCodec().CanDecode() {
		return s, enumset.ListCodecDisabledError{Domain: d.Name(), Operation: "decoding"}
	}

	return enumset.FromNames[S, W](names)
}
