package testdomain

import (
	"fmt"

	"github.com/dogmatiq/enumkit/domain"
	"github.com/dogmatiq/enumkit/enumset"
	"github.com/dogmatiq/enumkit/repr"
)

// Letter is an enumeration of the 26 letters of the English alphabet.
type Letter rune

// Letters returns every [Letter] in alphabetical order.
func Letters() []Letter {
	letters := make([]Letter, 0, 26)
	for r := 'A'; r <= 'Z'; r++ {
		letters = append(letters, Letter(r))
	}
	return letters
}

var letters = domain.MustNew[Letter, repr.U32]("LetterSet", Letters())

// Domain returns the domain of [Letter].
func (Letter) Domain() *domain.Domain[Letter, repr.U32] { return letters }

func (l Letter) String() string { return string(l) }

// LetterSet is a set of [Letter] values.
type LetterSet = enumset.Set[Letter, repr.U32]

// State is an enumeration with nine symbols.
type State uint8

// The [State] symbols.
const (
	Awake State = iota
	CoffeeAcquired
	CompilerFight
	MergeConflict
	ZoneAchieved
	BuildingCastlesInTheCloud
	TimeToLeave
	SideProject
	Sleeping
)

var stateNames = [...]string{
	"Awake",
	"CoffeeAcquired",
	"CompilerFight",
	"MergeConflict",
	"ZoneAchieved",
	"BuildingCastlesInTheCloud",
	"TimeToLeave",
	"SideProject",
	"Sleeping",
}

var states = domain.MustNew[State, repr.U16](
	"StateSet",
	[]State{
		Awake,
		CoffeeAcquired,
		CompilerFight,
		MergeConflict,
		ZoneAchieved,
		BuildingCastlesInTheCloud,
		TimeToLeave,
		SideProject,
		Sleeping,
	},
)

// Domain returns the domain of [State].
func (State) Domain() *domain.Domain[State, repr.U16] { return states }

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// StateSet is a set of [State] values.
type StateSet = enumset.Set[State, repr.U16]

// Flag is an enumeration with exactly 64 symbols.
type Flag uint8

// Flags returns every [Flag] in domain order.
func Flags() []Flag {
	flags := make([]Flag, 64)
	for i := range flags {
		flags[i] = Flag(i)
	}
	return flags
}

var flags = domain.MustNew[Flag, repr.U64]("FlagSet", Flags())

// Domain returns the domain of [Flag].
func (Flag) Domain() *domain.Domain[Flag, repr.U64] { return flags }

func (f Flag) String() string { return fmt.Sprintf("F%02d", uint8(f)) }

// FlagSet is a set of [Flag] values.
type FlagSet = enumset.Set[Flag, repr.U64]

// Wide is an enumeration with 100 symbols, which requires a 128-bit word.
type Wide uint8

// Wides returns every [Wide] in domain order.
func Wides() []Wide {
	wides := make([]Wide, 100)
	for i := range wides {
		wides[i] = Wide(i)
	}
	return wides
}

var wides = domain.MustNew[Wide, repr.U128]("WideSet", Wides())

// Domain returns the domain of [Wide].
func (Wide) Domain() *domain.Domain[Wide, repr.U128] { return wides }

func (w Wide) String() string { return fmt.Sprintf("W%02d", uint8(w)) }

// WideSet is a set of [Wide] values.
type WideSet = enumset.Set[Wide, repr.U128]
