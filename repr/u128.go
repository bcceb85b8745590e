package repr

import (
	"encoding/binary"
	"math"
	"math/big"
	"math/bits"
)

// U128 is a 128-bit [Word].
//
// Go has no native 128-bit integer. The least significant half is stored
// first, so the memory layout of a U128 is that of a little-endian 128-bit
// unsigned integer.
type U128 struct {
	Lo, Hi uint64
}

// U128From64 returns a U128 with the value v.
func U128From64(v uint64) U128 {
	return U128{Lo: v}
}

// Uint64 returns w as a uint64. It returns false if w does not fit.
func (w U128) Uint64() (uint64, bool) {
	return w.Lo, w.Hi == 0
}

// Width returns [W128].
func (U128) Width() Width {
	return W128
}

// Ones returns a word with the n least significant bits set.
func (U128) Ones(n int) U128 {
	switch {
	case n <= 0:
		return U128{}
	case n < 64:
		return U128{Lo: 1<<uint(n) - 1}
	case n < 128:
		return U128{Lo: math.MaxUint64, Hi: 1<<uint(n-64) - 1}
	default:
		return U128{Lo: math.MaxUint64, Hi: math.MaxUint64}
	}
}

// Bit returns a word with only bit i set.
func (U128) Bit(i int) U128 {
	switch {
	case i < 0 || i >= 128:
		return U128{}
	case i < 64:
		return U128{Lo: 1 << uint(i)}
	default:
		return U128{Hi: 1 << uint(i-64)}
	}
}

func (w U128) Or(x U128) U128     { return U128{w.Lo | x.Lo, w.Hi | x.Hi} }
func (w U128) And(x U128) U128    { return U128{w.Lo & x.Lo, w.Hi & x.Hi} }
func (w U128) AndNot(x U128) U128 { return U128{w.Lo &^ x.Lo, w.Hi &^ x.Hi} }
func (w U128) Xor(x U128) U128    { return U128{w.Lo ^ x.Lo, w.Hi ^ x.Hi} }

// Has returns true if bit i is set.
func (w U128) Has(i int) bool {
	b := w.Bit(i)
	return w.Lo&b.Lo != 0 || w.Hi&b.Hi != 0
}

// OnesCount returns the number of set bits.
func (w U128) OnesCount() int {
	return bits.OnesCount64(w.Lo) + bits.OnesCount64(w.Hi)
}

// TrailingZeros returns the index of the least significant set bit, or 128 if
// no bits are set.
func (w U128) TrailingZeros() int {
	if w.Lo != 0 {
		return bits.TrailingZeros64(w.Lo)
	}
	return 64 + bits.TrailingZeros64(w.Hi)
}

// IsZero returns true if no bits are set.
func (w U128) IsZero() bool {
	return w.Lo == 0 && w.Hi == 0
}

// AppendLittleEndian appends the 16-byte little-endian encoding of w to b.
func (w U128) AppendLittleEndian(b []byte) []byte {
	b = binary.LittleEndian.AppendUint64(b, w.Lo)
	return binary.LittleEndian.AppendUint64(b, w.Hi)
}

// ReadLittleEndian decodes a U128 from the first 16 bytes of b.
func (U128) ReadLittleEndian(b []byte) U128 {
	return U128{
		Lo: binary.LittleEndian.Uint64(b[:8]),
		Hi: binary.LittleEndian.Uint64(b[8:16]),
	}
}

// String returns the decimal representation of w.
func (w U128) String() string {
	if w.Hi == 0 {
		return new(big.Int).SetUint64(w.Lo).String()
	}

	v := new(big.Int).SetUint64(w.Hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(w.Lo))

	return v.String()
}
