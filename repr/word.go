package repr

// Word is the constraint satisfied by the fixed-width unsigned integer types
// that can back a set.
//
// Bit indexes are counted from the least significant bit. No method modifies
// its receiver.
type Word[W any] interface {
	comparable

	// Width returns the number of bits in the word. The result does not depend
	// on the receiver's value.
	Width() Width

	// Ones returns a word with the n least significant bits set. The result
	// does not depend on the receiver's value.
	Ones(n int) W

	// Bit returns a word with only bit i set, or the zero word if i is not a
	// valid bit index. The result does not depend on the receiver's value.
	Bit(i int) W

	Or(W) W
	And(W) W
	AndNot(W) W
	Xor(W) W

	// Has returns true if bit i is set.
	Has(i int) bool

	// OnesCount returns the number of set bits.
	OnesCount() int

	// TrailingZeros returns the index of the least significant set bit, or
	// the word's width if no bits are set.
	TrailingZeros() int

	// IsZero returns true if no bits are set.
	IsZero() bool

	// AppendLittleEndian appends the little-endian encoding of the word to b.
	AppendLittleEndian(b []byte) []byte

	// ReadLittleEndian decodes a word from the first Width().Bytes() bytes of
	// b. It panics if b is too short. The result does not depend on the
	// receiver's value.
	ReadLittleEndian(b []byte) W
}

// isWord fails to compile unless W satisfies [Word].
func isWord[W Word[W]]() {}

var (
	_ = isWord[U8]
	_ = isWord[U16]
	_ = isWord[U32]
	_ = isWord[U64]
	_ = isWord[U128]
)
