package repr

import "strconv"

// MaxSymbols is the largest number of symbols that can be represented by any
// [Width].
const MaxSymbols = 128

// Width is the number of bits in the unsigned integer that backs a set.
type Width uint8

// The supported widths, narrowest first.
const (
	W8   Width = 8
	W16  Width = 16
	W32  Width = 32
	W64  Width = 64
	W128 Width = 128
)

var widths = [...]Width{W8, W16, W32, W64, W128}

// Select returns the narrowest width that has one bit for each of n symbols.
//
// It returns false if n is less than 1 or greater than [MaxSymbols].
func Select(n int) (Width, bool) {
	if n < 1 {
		return 0, false
	}

	for _, w := range widths {
		if n <= int(w) {
			return w, true
		}
	}

	return 0, false
}

// Fits returns true if w is a supported width with at least n bits.
func Fits(w Width, n int) bool {
	return w.IsValid() && n <= int(w)
}

// IsValid returns true if w is one of the supported widths.
func (w Width) IsValid() bool {
	switch w {
	case W8, W16, W32, W64, W128:
		return true
	default:
		return false
	}
}

// Bits returns the number of bits in w.
func (w Width) Bits() int {
	return int(w)
}

// Bytes returns the number of bytes in w.
func (w Width) Bytes() int {
	return int(w) / 8
}

// String returns the name of the unsigned integer type with width w, such as
// "u16".
func (w Width) String() string {
	return "u" + strconv.Itoa(int(w))
}
