package config

import (
	_ "embed"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the default catch configuration.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Round: CatchRound{
			LengthSeconds:   60,
			LoopIntervalMS:  200,
			ClockIntervalMS: 1000,
			MaxSpawnDivisor: 5,
		},
		Critters: CatchCritters{
			Diameter:    40,
			SpawnMargin: 50,
			DriftStep:   10,
			FallStep:    100,
			SpinStep:    10,
		},
		Basket: CatchBasket{
			WidthDivisor: 4,
			EdgeOverflow: 25,
			KeyboardStep: 20,
		},
		View: CatchView{
			UnitsPerCol: 10,
			UnitsPerRow: 20,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCatchYAML
}
