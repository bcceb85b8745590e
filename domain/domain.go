package domain

import (
	"fmt"
	"slices"

	"github.com/dogmatiq/enumkit/repr"
)

// Domain is an ordered, immutable sequence of symbols of type S.
//
// Each symbol's bit index is its position within the sequence. W is the word
// type that backs sets of these symbols; it must have at least one bit per
// symbol.
//
// A Domain is safe for concurrent use.
type Domain[S comparable, W repr.Word[W]] struct {
	name    string
	symbols []S
	names   []string
	index   map[S]int
	lookup  map[string]int
	mask    W
	minimal repr.Width
	compact bool
	codec   ListCodec
}

// New returns a new domain of the given symbols.
//
// name is the name of the set type, as used when rendering sets as text.
func New[S comparable, W repr.Word[W]](
	name string,
	symbols []S,
	options ...Option,
) (*Domain[S, W], error) {
	var cfg config
	for _, opt := range options {
		opt(&cfg)
	}

	n := len(symbols)
	if n == 0 {
		return nil, EmptyDomainError{name}
	}

	minimal, ok := repr.Select(n)
	if !ok {
		return nil, TooManySymbolsError{name, n}
	}

	var zero W
	if !repr.Fits(zero.Width(), n) {
		return nil, WidthTooNarrowError{name, n, zero.Width()}
	}

	d := &Domain[S, W]{
		name:    name,
		symbols: slices.Clone(symbols),
		names:   make([]string, n),
		index:   make(map[S]int, n),
		lookup:  make(map[string]int, n),
		mask:    zero.Ones(n),
		minimal: minimal,
		compact: cfg.compact,
		codec:   cfg.codec,
	}

	if cfg.names != nil && len(cfg.names) != n {
		return nil, NameCountError{name, n, len(cfg.names)}
	}

	for i, s := range d.symbols {
		if prev, ok := d.index[s]; ok {
			return nil, DuplicateSymbolError{name, fmt.Sprint(s), i, prev}
		}
		d.index[s] = i

		switch s := any(s).(type) {
		case fmt.Stringer:
			d.names[i] = s.String()
		default:
			d.names[i] = fmt.Sprint(s)
			if cfg.names == nil {
				d.compact = true
			}
		}

		if cfg.names != nil {
			d.names[i] = cfg.names[i]
		}

		if prev, ok := d.lookup[d.names[i]]; ok {
			return nil, DuplicateNameError{name, d.names[i], i, prev}
		}
		d.lookup[d.names[i]] = i
	}

	return d, nil
}

// MustNew returns a new domain of the given symbols. It panics if the domain
// is invalid.
//
// It is intended for initializing package-level variables.
func MustNew[S comparable, W repr.Word[W]](
	name string,
	symbols []S,
	options ...Option,
) *Domain[S, W] {
	d, err := New[S, W](name, symbols, options...)
	if err != nil {
		panic(err)
	}
	return d
}

// Name returns the name of the set type.
func (d *Domain[S, W]) Name() string {
	return d.name
}

// Len returns the number of symbols in the domain.
func (d *Domain[S, W]) Len() int {
	return len(d.symbols)
}

// Symbols returns a copy of the symbols in domain order.
func (d *Domain[S, W]) Symbols() []S {
	return slices.Clone(d.symbols)
}

// Symbol returns the symbol with bit index i. It panics if i is out of range.
func (d *Domain[S, W]) Symbol(i int) S {
	return d.symbols[i]
}

// Index returns the bit index of s. It returns false if s is not a member of
// the domain.
func (d *Domain[S, W]) Index(s S) (int, bool) {
	i, ok := d.index[s]
	return i, ok
}

// SymbolName returns the external identifier of the symbol with bit index i.
// It panics if i is out of range.
func (d *Domain[S, W]) SymbolName(i int) string {
	return d.names[i]
}

// Lookup returns the bit index of the symbol with the given external
// identifier. It returns false if there is no such symbol.
func (d *Domain[S, W]) Lookup(name string) (int, bool) {
	i, ok := d.lookup[name]
	return i, ok
}

// Mask returns the word with one bit set for each symbol in the domain.
func (d *Domain[S, W]) Mask() W {
	return d.mask
}

// Width returns the width of W.
func (d *Domain[S, W]) Width() repr.Width {
	var zero W
	return zero.Width()
}

// MinimalWidth returns the narrowest width that can represent the domain.
func (d *Domain[S, W]) MinimalWidth() repr.Width {
	return d.minimal
}

// CompactFormat returns true if sets are rendered without listing their
// members.
func (d *Domain[S, W]) CompactFormat() bool {
	return d.compact
}

// ListCodec returns the directions in which the list encoding is available.
func (d *Domain[S, W]) ListCodec() ListCodec {
	return d.codec
}
