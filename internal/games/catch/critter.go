package catch

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// Kind identifies what a critter is. Only cats score.
type Kind int

const (
	KindCat Kind = iota
	KindDog
	KindBird
	KindTeddyBear
)

// nonScoringKinds are drawn uniformly when the scoring kind is not chosen.
var nonScoringKinds = [...]Kind{KindDog, KindBird, KindTeddyBear}

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindCat:
		return "cat"
	case KindDog:
		return "dog"
	case KindBird:
		return "bird"
	case KindTeddyBear:
		return "teddybear"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name for JSON snapshots.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Scoring reports whether catching this kind adds a point.
func (k Kind) Scoring() bool {
	return k == KindCat
}

// Color returns the fixed display color of the kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindCat:
		return core.ColorBlack
	case KindDog:
		return core.ColorGray
	case KindBird:
		return core.ColorGreen
	case KindTeddyBear:
		return core.ColorBlue
	default:
		return core.ColorDefault
	}
}

// Glyph returns the terminal character for the kind.
func (k Kind) Glyph() rune {
	switch k {
	case KindCat:
		return 'C'
	case KindDog:
		return 'D'
	case KindBird:
		return 'B'
	case KindTeddyBear:
		return 'T'
	default:
		return '?'
	}
}

// Critter is a single falling object.
// Kind and SpinsRight are fixed at creation.
type Critter struct {
	ID         uuid.UUID
	Kind       Kind
	Pos        core.Vec
	Rotation   float64 // Degrees, cosmetic
	SpinsRight bool
}

// advance moves the critter one tick: drift and spin follow SpinsRight, fall is always down.
func (c Critter) advance(r Rules) Critter {
	sign := -1.0
	if c.SpinsRight {
		sign = 1.0
	}
	c.Pos = c.Pos.Add(core.Vec{X: sign * r.DriftStep, Y: r.FallStep})
	c.Rotation += sign * r.SpinStep
	return c
}
