package domain

// Option is an option that changes the behavior of a [Domain].
type Option func(*config)

type config struct {
	names   []string
	compact bool
	codec   ListCodec
}

// WithNames sets the external identifiers of the symbols, in domain order.
//
// Names are used by the list encoding and when rendering sets as text. By
// default the name of a symbol is the result of its String() method.
func WithNames(names ...string) Option {
	return func(c *config) {
		c.names = append([]string{}, names...)
	}
}

// WithCompactFormat causes sets to be rendered as text without listing their
// members.
//
// It is implied for symbol types that have neither a String() method nor
// explicit names.
func WithCompactFormat() Option {
	return func(c *config) {
		c.compact = true
	}
}

// WithListCodec sets which directions of the list encoding are available.
func WithListCodec(m ListCodec) Option {
	return func(c *config) {
		c.codec = m
	}
}

// ListCodec enumerates the directions in which a set may be converted to and
// from its list encoding.
type ListCodec uint8

const (
	// ListCodecBoth permits encoding and decoding. It is the default.
	ListCodecBoth ListCodec = iota

	// ListCodecEncodeOnly permits encoding only.
	ListCodecEncodeOnly

	// ListCodecDecodeOnly permits decoding only.
	ListCodecDecodeOnly

	// ListCodecNone disables the list encoding.
	ListCodecNone
)

// CanEncode returns true if m permits encoding.
func (m ListCodec) CanEncode() bool {
	return m == ListCodecBoth || m == ListCodecEncodeOnly
}

// CanDecode returns true if m permits decoding.
func (m ListCodec) CanDecode() bool {
	return m == ListCodecBoth || m == ListCodecDecodeOnly
}
