package testdomain

import (
	"github.com/dogmatiq/enumkit/domain"
	"github.com/dogmatiq/enumkit/enumset"
	"github.com/dogmatiq/enumkit/repr"
)

// Solo is an enumeration with a single symbol.
type Solo uint8

// Only is the only [Solo] symbol.
const Only Solo = 0

var solos = domain.MustNew[Solo, repr.U8](
	"SoloSet",
	[]Solo{Only},
	domain.WithNames("Only"),
)

// Domain returns the domain of [Solo].
func (Solo) Domain() *domain.Domain[Solo, repr.U8] { return solos }

// SoloSet is a set of [Solo] values.
type SoloSet = enumset.Set[Solo, repr.U8]

// Pair is an enumeration with two symbols.
type Pair uint8

// The [Pair] symbols.
const (
	A Pair = iota
	B
)

var pairs = domain.MustNew[Pair, repr.U8]("PairSet", []Pair{A, B})

// Domain returns the domain of [Pair].
func (Pair) Domain() *domain.Domain[Pair, repr.U8] { return pairs }

func (p Pair) String() string {
	switch p {
	case A:
		return "A"
	case B:
		return "B"
	default:
		return "Pair(?)"
	}
}

// PairSet is a set of [Pair] values.
type PairSet = enumset.Set[Pair, repr.U8]

// Comment is an enumeration with three symbols that is deliberately backed by a
// wider word than necessary.
type Comment int

// The [Comment] symbols.
const (
	TodoSinceFirstCommit Comment = iota
	BlackMagic
	LateNightRambling
)

var comments = domain.MustNew[Comment, repr.U16](
	"CommentSet",
	[]Comment{TodoSinceFirstCommit, BlackMagic, LateNightRambling},
	domain.WithNames("TodoSinceFirstCommit", "BlackMagic", "LateNightRambling"),
)

// Domain returns the domain of [Comment].
func (Comment) Domain() *domain.Domain[Comment, repr.U16] { return comments }

// CommentSet is a set of [Comment] values.
type CommentSet = enumset.Set[Comment, repr.U16]

// Opaque is an enumeration with no textual representation.
type Opaque int

// The [Opaque] symbols.
const (
	First Opaque = iota + 10
	Second
)

var opaques = domain.MustNew[Opaque, repr.U8]("OpaqueSet", []Opaque{First, Second})

// Domain returns the domain of [Opaque].
func (Opaque) Domain() *domain.Domain[Opaque, repr.U8] { return opaques }

// OpaqueSet is a set of [Opaque] values.
type OpaqueSet = enumset.Set[Opaque, repr.U8]

// Tri is an enumeration with three symbols that uses the list encoding.
type Tri string

// The [Tri] symbols.
const (
	X Tri = "X"
	Y Tri = "Y"
	Z Tri = "Z"
)

var tris = domain.MustNew[Tri, repr.U8]("TriSet", []Tri{X, Y, Z})

// Domain returns the domain of [Tri].
func (Tri) Domain() *domain.Domain[Tri, repr.U8] { return tris }

// String returns the symbol's identifier.
func (t Tri) String() string { return string(t) }

// TriSet is a set of [Tri] values.
type TriSet = enumset.Set[Tri, repr.U8]

// Outbound is an enumeration whose sets may be encoded but not decoded.
type Outbound uint8

// The [Outbound] symbols.
const (
	Sent Outbound = iota
	Acked
)

var outbounds = domain.MustNew[Outbound, repr.U8](
	"OutboundSet",
	[]Outbound{Sent, Acked},
	domain.WithNames("Sent", "Acked"),
	domain.WithListCodec(domain.ListCodecEncodeOnly),
)

// Domain returns the domain of [Outbound].
func (Outbound) Domain() *domain.Domain[Outbound, repr.U8] { return outbounds }

// OutboundSet is a set of [Outbound] values.
type OutboundSet = enumset.Set[Outbound, repr.U8]

// Sealed is an enumeration whose sets have no list encoding and are rendered
// compactly.
type Sealed uint8

// The [Sealed] symbols.
const (
	Locked Sealed = iota
	Bolted
)

var sealeds = domain.MustNew[Sealed, repr.U8](
	"SealedSet",
	[]Sealed{Locked, Bolted},
	domain.WithNames("Locked", "Bolted"),
	domain.WithCompactFormat(),
	domain.WithListCodec(domain.ListCodecNone),
)

// Domain returns the domain of [Sealed].
func (Sealed) Domain() *domain.Domain[Sealed, repr.U8] { return sealeds }

// SealedSet is a set of [Sealed] values.
type SealedSet = enumset.Set[Sealed, repr.U8]
