package enumset

import (
	"fmt"

	"github.com/dogmatiq/enumkit/repr"
)

// UnknownSymbolError is the panic value used when a value that is not a member
// of its domain is added to a set.
type UnknownSymbolError struct {
	Domain string
	Symbol string
}

func newUnknownSymbolError[S Symbol[S, W], W repr.Word[W]](s S) UnknownSymbolError {
	return UnknownSymbolError{
		Domain: domainOf[S, W]().Name(),
		Symbol: fmt.Sprint(s),
	}
}

func (e UnknownSymbolError) Error() string {
	return fmt.Sprintf("%s: %s is not a member of the domain", e.Domain, e.Symbol)
}

// UnknownNameError is returned when decoding the list encoding of a set if an
// identifier does not name any symbol in the domain.
type UnknownNameError struct {
	Domain     string
	Identifier string
}

func (e UnknownNameError) Error() string {
	return fmt.Sprintf("%s: unknown symbol %q", e.Domain, e.Identifier)
}

// NullListError is returned when decoding the list encoding of a set from a
// null value rather than a list.
type NullListError struct {
	Domain string
}

func (e NullListError) Error() string {
	return fmt.Sprintf("%s: expected a list of symbols, got null", e.Domain)
}

// ListCodecDisabledError is returned when encoding or decoding the list
// encoding of a set whose domain does not permit it.
type ListCodecDisabledError struct {
	Domain    string
	Operation string
}

func (e ListCodecDisabledError) Error() string {
	return fmt.Sprintf("%s: list encoding does not permit %s", e.Domain, e.Operation)
}

// InvalidReprError describes an integer that is not a valid representation of
// a set, because it has bits set that do not correspond to any symbol.
type InvalidReprError[W repr.Word[W]] struct {
	Domain    string
	Repr      W
	Discarded W
}

func (e InvalidReprError[W]) Error() string {
	return fmt.Sprintf(
		"%s: %v is not a valid representation, bits %v do not map to any symbol",
		e.Domain,
		e.Repr,
		e.Discarded,
	)
}
