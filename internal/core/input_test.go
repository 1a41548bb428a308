package core

import "testing"

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionStart, "Start"},
		{ActionRestart, "Restart"},
		{ActionScoreboard, "Scoreboard"},
		{ActionBack, "Back"},
		{ActionScreenshot, "Screenshot"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ScreenW != 80 || cfg.ScreenH != 24 {
		t.Errorf("DefaultConfig() screen = %dx%d, expected 80x24", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.Seed != 0 {
		t.Errorf("DefaultConfig() seed = %d, expected 0", cfg.Seed)
	}
}
