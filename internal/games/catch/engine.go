package catch

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// Rand is the random source used for every draw the game makes.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Engine holds the transition functions that operate on a State.
type Engine struct {
	rules Rules
	rng   Rand
	newID func() uuid.UUID
}

// NewEngine creates an engine using the given rules and random source.
func NewEngine(rules Rules, rng Rand) *Engine {
	return &Engine{
		rules: rules,
		rng:   rng,
		newID: uuid.New,
	}
}

// Rules returns the engine's rules.
func (e *Engine) Rules() Rules {
	return e.rules
}

func (e *Engine) coin() bool {
	return e.rng.Intn(2) == 1
}

// SpawnCritter creates one critter above the visible area.
func (e *Engine) SpawnCritter(area core.Size) Critter {
	// Two flips make the scoring kind rarer (~25%).
	first, second := e.coin(), e.coin()
	kind := KindCat
	if !(first && second) {
		kind = nonScoringKinds[e.rng.Intn(len(nonScoringKinds))]
	}

	spinsRight := e.coin()
	x := e.spawnX(area.W)
	rotation := float64(e.rng.Intn(361))

	return Critter{
		ID:         e.newID(),
		Kind:       kind,
		Pos:        core.Vec{X: x, Y: -area.H - 2*e.rules.Diameter},
		Rotation:   rotation,
		SpinsRight: spinsRight,
	}
}

// spawnX draws an integer in [margin, w-margin], collapsing to the midpoint
// when the area is too narrow for that range.
func (e *Engine) spawnX(w float64) float64 {
	lo := int(e.rules.SpawnMargin)
	hi := int(w) - int(e.rules.SpawnMargin)
	if hi < lo {
		return w / 2
	}
	return float64(lo + e.rng.Intn(hi-lo+1))
}
