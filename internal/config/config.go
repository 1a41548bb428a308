// Package config provides YAML/TOML-based game configuration loading
// for the catch arcade.
package config

import "time"

// CatchConfig contains all tunable parameters of the catch game.
type CatchConfig struct {
	Round    CatchRound    `yaml:"round" toml:"round"`
	Critters CatchCritters `yaml:"critters" toml:"critters"`
	Basket   CatchBasket   `yaml:"basket" toml:"basket"`
	View     CatchView     `yaml:"view" toml:"view"`
}

// CatchRound defines round length and the two scheduler periods.
type CatchRound struct {
	LengthSeconds   int `yaml:"length_seconds" toml:"length_seconds"`
	LoopIntervalMS  int `yaml:"loop_interval_ms" toml:"loop_interval_ms"`
	ClockIntervalMS int `yaml:"clock_interval_ms" toml:"clock_interval_ms"`
	MaxSpawnDivisor int `yaml:"max_spawn_divisor" toml:"max_spawn_divisor"` // k is drawn from [1, max]
}

// CatchCritters defines critter geometry and per-tick motion.
type CatchCritters struct {
	Diameter    float64 `yaml:"diameter" toml:"diameter"`
	SpawnMargin float64 `yaml:"spawn_margin" toml:"spawn_margin"` // Keeps spawns away from the side edges
	DriftStep   float64 `yaml:"drift_step" toml:"drift_step"`
	FallStep    float64 `yaml:"fall_step" toml:"fall_step"`
	SpinStep    float64 `yaml:"spin_step" toml:"spin_step"` // Degrees per tick
}

// CatchBasket defines basket sizing and input behaviour.
type CatchBasket struct {
	WidthDivisor float64 `yaml:"width_divisor" toml:"width_divisor"` // Basket width = area width / divisor
	EdgeOverflow float64 `yaml:"edge_overflow" toml:"edge_overflow"` // How far the basket may leave the area
	KeyboardStep float64 `yaml:"keyboard_step" toml:"keyboard_step"`
}

// CatchView defines how play-area units map onto terminal cells.
type CatchView struct {
	UnitsPerCol int `yaml:"units_per_col" toml:"units_per_col"`
	UnitsPerRow int `yaml:"units_per_row" toml:"units_per_row"`
}

// LoopInterval returns the movement tick period.
func (r CatchRound) LoopInterval() time.Duration {
	return time.Duration(r.LoopIntervalMS) * time.Millisecond
}

// ClockInterval returns the countdown tick period.
func (r CatchRound) ClockInterval() time.Duration {
	return time.Duration(r.ClockIntervalMS) * time.Millisecond
}

// Normalize replaces non-positive values with their defaults.
// Partially written config files therefore still produce a playable game.
func (c *CatchConfig) Normalize() {
	d := DefaultCatchConfig()

	fillInt(&c.Round.LengthSeconds, d.Round.LengthSeconds)
	fillInt(&c.Round.LoopIntervalMS, d.Round.LoopIntervalMS)
	fillInt(&c.Round.ClockIntervalMS, d.Round.ClockIntervalMS)
	fillInt(&c.Round.MaxSpawnDivisor, d.Round.MaxSpawnDivisor)

	fillFloat(&c.Critters.Diameter, d.Critters.Diameter)
	fillFloat(&c.Critters.SpawnMargin, d.Critters.SpawnMargin)
	fillFloat(&c.Critters.DriftStep, d.Critters.DriftStep)
	fillFloat(&c.Critters.FallStep, d.Critters.FallStep)
	fillFloat(&c.Critters.SpinStep, d.Critters.SpinStep)

	fillFloat(&c.Basket.WidthDivisor, d.Basket.WidthDivisor)
	fillFloat(&c.Basket.EdgeOverflow, d.Basket.EdgeOverflow)
	fillFloat(&c.Basket.KeyboardStep, d.Basket.KeyboardStep)

	fillInt(&c.View.UnitsPerCol, d.View.UnitsPerCol)
	fillInt(&c.View.UnitsPerRow, d.View.UnitsPerRow)
}

func fillInt(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}

func fillFloat(v *float64, def float64) {
	if *v <= 0 {
		*v = def
	}
}
