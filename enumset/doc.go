// Package enumset provides compact sets of enumeration values, backed by a
// single fixed-width unsigned integer with one bit per symbol.
//
// An enumeration type opts in by implementing [Symbol], that is, by returning
// its [domain.Domain] from a Domain method:
//
//	type Color uint8
//
//	const (
//		Red Color = iota
//		Green
//		Blue
//	)
//
//	var colors = domain.MustNew[Color, repr.U8](
//		"ColorSet",
//		[]Color{Red, Green, Blue},
//		domain.WithNames("Red", "Green", "Blue"),
//	)
//
//	func (Color) Domain() *domain.Domain[Color, repr.U8] { return colors }
//
//	type ColorSet = enumset.Set[Color, repr.U8]
//
// The N-th symbol of the domain corresponds to the N-th least significant bit
// of the set's representation. Bits that do not correspond to a symbol are
// always zero; every function in this package upholds that invariant except
// [FromReprUnchecked].
package enumset
