package repr

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// U8 is an 8-bit [Word].
type U8 uint8

// U16 is a 16-bit [Word].
type U16 uint16

// U32 is a 32-bit [Word].
type U32 uint32

// U64 is a 64-bit [Word].
type U64 uint64

func ones[T constraints.Unsigned](n int) T {
	if n <= 0 {
		return 0
	}
	// Shifting by the full width yields 0, so n == width wraps around to all
	// ones.
	return T(1)<<uint(n) - 1
}

func bit[T constraints.Unsigned](i int) T {
	if i < 0 {
		return 0
	}
	return T(1) << uint(i)
}

func has[T constraints.Unsigned](w T, i int) bool {
	return w&bit[T](i) != 0
}

func (U8) Width() Width         { return W8 }
func (U8) Ones(n int) U8        { return ones[U8](n) }
func (U8) Bit(i int) U8         { return bit[U8](i) }
func (w U8) Or(x U8) U8         { return w | x }
func (w U8) And(x U8) U8        { return w & x }
func (w U8) AndNot(x U8) U8     { return w &^ x }
func (w U8) Xor(x U8) U8        { return w ^ x }
func (w U8) Has(i int) bool     { return has(w, i) }
func (w U8) OnesCount() int     { return bits.OnesCount8(uint8(w)) }
func (w U8) TrailingZeros() int { return bits.TrailingZeros8(uint8(w)) }
func (w U8) IsZero() bool       { return w == 0 }
func (w U8) AppendLittleEndian(b []byte) []byte {
	return append(b, byte(w))
}
func (U8) ReadLittleEndian(b []byte) U8 {
	return U8(b[0])
}

func (U16) Width() Width         { return W16 }
func (U16) Ones(n int) U16       { return ones[U16](n) }
func (U16) Bit(i int) U16        { return bit[U16](i) }
func (w U16) Or(x U16) U16       { return w | x }
func (w U16) And(x U16) U16      { return w & x }
func (w U16) AndNot(x U16) U16   { return w &^ x }
func (w U16) Xor(x U16) U16      { return w ^ x }
func (w U16) Has(i int) bool     { return has(w, i) }
func (w U16) OnesCount() int     { return bits.OnesCount16(uint16(w)) }
func (w U16) TrailingZeros() int { return bits.TrailingZeros16(uint16(w)) }
func (w U16) IsZero() bool       { return w == 0 }
func (w U16) AppendLittleEndian(b []byte) []byte {
	return binary.LittleEndian.AppendUint16(b, uint16(w))
}
func (U16) ReadLittleEndian(b []byte) U16 {
	return U16(binary.LittleEndian.Uint16(b))
}

func (U32) Width() Width         { return W32 }
func (U32) Ones(n int) U32       { return ones[U32](n) }
func (U32) Bit(i int) U32        { return bit[U32](i) }
func (w U32) Or(x U32) U32       { return w | x }
func (w U32) And(x U32) U32      { return w & x }
func (w U32) AndNot(x U32) U32   { return w &^ x }
func (w U32) Xor(x U32) U32      { return w ^ x }
func (w U32) Has(i int) bool     { return has(w, i) }
func (w U32) OnesCount() int     { return bits.OnesCount32(uint32(w)) }
func (w U32) TrailingZeros() int { return bits.TrailingZeros32(uint32(w)) }
func (w U32) IsZero() bool       { return w == 0 }
func (w U32) AppendLittleEndian(b []byte) []byte {
	return binary.LittleEndian.AppendUint32(b, uint32(w))
}
func (U32) ReadLittleEndian(b []byte) U32 {
	return U32(binary.LittleEndian.Uint32(b))
}

func (U64) Width() Width         { return W64 }
func (U64) Ones(n int) U64       { return ones[U64](n) }
func (U64) Bit(i int) U64        { return bit[U64](i) }
func (w U64) Or(x U64) U64       { return w | x }
func (w U64) And(x U64) U64      { return w & x }
func (w U64) AndNot(x U64) U64   { return w &^ x }
func (w U64) Xor(x U64) U64      { return w ^ x }
func (w U64) Has(i int) bool     { return has(w, i) }
func (w U64) OnesCount() int     { return bits.OnesCount64(uint64(w)) }
func (w U64) TrailingZeros() int { return bits.TrailingZeros64(uint64(w)) }
func (w U64) IsZero() bool       { return w == 0 }
func (w U64) AppendLittleEndian(b []byte) []byte {
	return binary.LittleEndian.AppendUint64(b, uint64(w))
}
func (U64) ReadLittleEndian(b []byte) U64 {
	return U64(binary.LittleEndian.Uint64(b))
}
