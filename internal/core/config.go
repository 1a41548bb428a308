package core

// RuntimeConfig contains host-provided settings passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW int    // Screen width in characters
	ScreenH int    // Screen height in characters
	Seed    int64  // RNG seed for deterministic gameplay (0 = time based)
	Player  string // Name recorded on the leaderboard
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
		Player:  "player",
	}
}
