// Package catch implements the catch arcade game: critters fall from the top of
// the play area and the player moves a basket to catch them before the clock runs out.
//
// Coordinates are play-area units. X grows rightward; Y grows downward with 0 on the
// catch line at the bottom of the visible area, so critters spawn at negative Y and
// fall toward and past zero.
package catch

import (
	"github.com/vovakirdan/tui-catch/internal/core"
)

// Lifecycle is the round state.
type Lifecycle int

const (
	Idle Lifecycle = iota
	Running
	Ended
)

// String returns the lifecycle name.
func (l Lifecycle) String() string {
	switch l {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// MarshalText encodes the lifecycle by name for JSON snapshots.
func (l Lifecycle) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// State is the authoritative mutable model of one game.
type State struct {
	Area        core.Size
	Critters    []Critter
	Score       int // Never negative
	Countdown   int
	Lifecycle   Lifecycle
	BasketRaw   float64 // Raw pointer signal; clamped only when mapped
	BasketWidth float64
	Foreground  bool

	// Per-round tallies
	Catches   int // Scoring critters caught
	Penalties int // Non-scoring critters caught
	Dropped   int // Critters that fell past the bottom
}

// NewState returns an idle, foregrounded state with no area yet.
func NewState() *State {
	return &State{
		Critters:   []Critter{},
		Lifecycle:  Idle,
		Foreground: true,
	}
}

// Layout sets the play area and derives the basket width.
// The basket starts centered.
func (s *State) Layout(w, h float64, r Rules) {
	s.Area = core.Size{W: w, H: h}
	s.BasketWidth = w / r.BasketDivisor
	s.BasketRaw = w/2 + s.BasketWidth/2
}

// Start resets the round: no critters, a full countdown, zero score, Running.
func (s *State) Start(r Rules) {
	s.Critters = []Critter{}
	s.Countdown = r.RoundLength
	s.Score = 0
	s.Catches = 0
	s.Penalties = 0
	s.Dropped = 0
	s.Lifecycle = Running
}

// BasketLeftEdge maps the raw basket signal onto the clamped left edge of the basket.
// Rendering and collision both go through this function.
func BasketLeftEdge(raw, width, areaW, overflow float64) float64 {
	return core.ClampF(raw-width, -overflow, areaW+overflow)
}

// BasketLeft returns the clamped left edge of the basket.
func (s *State) BasketLeft(r Rules) float64 {
	return BasketLeftEdge(s.BasketRaw, s.BasketWidth, s.Area.W, r.EdgeOverflow)
}

// CatchRange returns the horizontal span covered by the basket.
func (s *State) CatchRange(r Rules) core.Span {
	left := s.BasketLeft(r)
	return core.Span{Lo: left, Hi: left + s.BasketWidth}
}

// inCatchBand reports whether y lies in (-BasketWidth, 0].
func (s *State) inCatchBand(y float64) bool {
	return y > -s.BasketWidth && y <= 0
}

// award applies the score change for catching a critter of the given kind.
func (s *State) award(k Kind) int {
	if k.Scoring() {
		s.Score++
		s.Catches++
		return 1
	}
	s.Penalties++
	if s.Score > 0 {
		s.Score--
		return -1
	}
	return 0
}
