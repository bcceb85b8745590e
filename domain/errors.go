package domain

import (
	"fmt"

	"github.com/dogmatiq/enumkit/repr"
)

// EmptyDomainError is returned by [New] when no symbols are given.
type EmptyDomainError struct {
	Name string
}

func (e EmptyDomainError) Error() string {
	return fmt.Sprintf("%s: domain must have at least one symbol", e.Name)
}

// TooManySymbolsError is returned by [New] when more symbols are given than
// can be represented by the widest supported word.
type TooManySymbolsError struct {
	Name  string
	Count int
}

func (e TooManySymbolsError) Error() string {
	return fmt.Sprintf(
		"%s: domain has %d symbols, at most %d are supported",
		e.Name,
		e.Count,
		repr.MaxSymbols,
	)
}

// WidthTooNarrowError is returned by [New] when the requested word does not
// have a bit for every symbol.
type WidthTooNarrowError struct {
	Name  string
	Count int
	Width repr.Width
}

func (e WidthTooNarrowError) Error() string {
	return fmt.Sprintf(
		"%s: domain has %d symbols, but the requested representation (%s) is only %d bits wide",
		e.Name,
		e.Count,
		e.Width,
		e.Width.Bits(),
	)
}

// DuplicateSymbolError is returned by [New] when the same symbol appears more
// than once.
type DuplicateSymbolError struct {
	Name     string
	Symbol   string
	Index    int
	Previous int
}

func (e DuplicateSymbolError) Error() string {
	return fmt.Sprintf(
		"%s: symbol %s at index %d is a duplicate of index %d",
		e.Name,
		e.Symbol,
		e.Index,
		e.Previous,
	)
}

// DuplicateNameError is returned by [New] when two symbols share the same
// external identifier.
type DuplicateNameError struct {
	Name       string
	Identifier string
	Index      int
	Previous   int
}

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf(
		"%s: name %q at index %d is already used by index %d",
		e.Name,
		e.Identifier,
		e.Index,
		e.Previous,
	)
}

// NameCountError is returned by [New] when [WithNames] does not supply exactly
// one name per symbol.
type NameCountError struct {
	Name    string
	Symbols int
	Names   int
}

func (e NameCountError) Error() string {
	return fmt.Sprintf(
		"%s: got %d names for %d symbols",
		e.Name,
		e.Names,
		e.Symbols,
	)
}
