package catch

import "github.com/vovakirdan/tui-catch/internal/config"

// Rules holds the fixed gameplay constants for a round.
type Rules struct {
	RoundLength     int // Countdown start value in seconds
	MaxSpawnDivisor int // Spawn divisor k is drawn from [1, MaxSpawnDivisor]

	Diameter    float64 // Visual critter size; spawns start 2 diameters above the area
	SpawnMargin float64
	DriftStep   float64
	FallStep    float64
	SpinStep    float64

	BasketDivisor float64
	EdgeOverflow  float64
	KeyboardStep  float64
}

// DefaultRules returns the standard rules.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultCatchConfig())
}

// RulesFromConfig extracts the gameplay rules from a loaded configuration.
func RulesFromConfig(cfg config.CatchConfig) Rules {
	cfg.Normalize()
	return Rules{
		RoundLength:     cfg.Round.LengthSeconds,
		MaxSpawnDivisor: cfg.Round.MaxSpawnDivisor,
		Diameter:        cfg.Critters.Diameter,
		SpawnMargin:     cfg.Critters.SpawnMargin,
		DriftStep:       cfg.Critters.DriftStep,
		FallStep:        cfg.Critters.FallStep,
		SpinStep:        cfg.Critters.SpinStep,
		BasketDivisor:   cfg.Basket.WidthDivisor,
		EdgeOverflow:    cfg.Basket.EdgeOverflow,
		KeyboardStep:    cfg.Basket.KeyboardStep,
	}
}
