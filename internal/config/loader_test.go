package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
}

func TestLoadCatchEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadCatch("")
	if err != nil {
		t.Fatalf("LoadCatch() failed: %v", err)
	}
	if cfg != DefaultCatchConfig() {
		t.Errorf("embedded defaults differ from DefaultCatchConfig():\n got  %+v\n want %+v", cfg, DefaultCatchConfig())
	}
}

func TestLoadCatchCustomYAML(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "short.yaml")
	data := []byte("round:\n  length_seconds: 30\ncritters:\n  fall_step: 50\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCatch(path)
	if err != nil {
		t.Fatalf("LoadCatch() failed: %v", err)
	}
	if cfg.Round.LengthSeconds != 30 {
		t.Errorf("LengthSeconds = %d, expected 30", cfg.Round.LengthSeconds)
	}
	if cfg.Critters.FallStep != 50 {
		t.Errorf("FallStep = %v, expected 50", cfg.Critters.FallStep)
	}
	// Unset fields come from defaults
	if cfg.Round.LoopIntervalMS != 200 {
		t.Errorf("LoopIntervalMS = %d, expected default 200", cfg.Round.LoopIntervalMS)
	}
}

func TestLoadCatchCustomTOML(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "catch.toml")
	data := []byte("[round]\nlength_seconds = 90\n\n[basket]\nwidth_divisor = 5.0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCatch(path)
	if err != nil {
		t.Fatalf("LoadCatch() failed: %v", err)
	}
	if cfg.Round.LengthSeconds != 90 {
		t.Errorf("LengthSeconds = %d, expected 90", cfg.Round.LengthSeconds)
	}
	if cfg.Basket.WidthDivisor != 5 {
		t.Errorf("WidthDivisor = %v, expected 5", cfg.Basket.WidthDivisor)
	}
	if cfg.Basket.EdgeOverflow != 25 {
		t.Errorf("EdgeOverflow = %v, expected default 25", cfg.Basket.EdgeOverflow)
	}
}

func TestLoadCatchUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	dir := filepath.Join(home, ".catch")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "catch.toml"), []byte("[view]\nunits_per_row = 40\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCatch("")
	if err != nil {
		t.Fatalf("LoadCatch() failed: %v", err)
	}
	if cfg.View.UnitsPerRow != 40 {
		t.Errorf("UnitsPerRow = %d, expected 40 from user config", cfg.View.UnitsPerRow)
	}
}

func TestLoadCatchSkipsBrokenUserYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	dir := filepath.Join(home, ".catch")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	// length_seconds decodes before loop_interval_ms fails
	broken := []byte("round:\n  length_seconds: 30\n  loop_interval_ms: fast\n")
	if err := os.WriteFile(filepath.Join(dir, "catch.yaml"), broken, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "catch.toml"), []byte("[view]\nunits_per_row = 40\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCatch("")
	if err != nil {
		t.Fatalf("LoadCatch() failed: %v", err)
	}
	if cfg.View.UnitsPerRow != 40 {
		t.Errorf("UnitsPerRow = %d, expected 40 from catch.toml", cfg.View.UnitsPerRow)
	}
	if cfg.Round.LengthSeconds != 60 {
		t.Errorf("LengthSeconds = %d, expected default 60, not a leftover from catch.yaml", cfg.Round.LengthSeconds)
	}
}

func TestLoadCatchLocalConfigsDir(t *testing.T) {
	isolate(t)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "catch.yaml"), []byte("round:\n  length_seconds: 45\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCatch("")
	if err != nil {
		t.Fatalf("LoadCatch() failed: %v", err)
	}
	if cfg.Round.LengthSeconds != 45 {
		t.Errorf("LengthSeconds = %d, expected 45 from ./configs", cfg.Round.LengthSeconds)
	}
	if cfg.Round.ClockIntervalMS != 1000 {
		t.Errorf("ClockIntervalMS = %d, expected default 1000", cfg.Round.ClockIntervalMS)
	}
}

func TestLoadCatchMissingCustomPath(t *testing.T) {
	isolate(t)

	if _, err := LoadCatch(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadCatch() with missing file should fail")
	}
}

func TestLoadCatchInvalidYAML(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("round: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatch(path); err == nil {
		t.Error("LoadCatch() with invalid YAML should fail")
	}
}

func TestNormalize(t *testing.T) {
	cfg := CatchConfig{}
	cfg.Round.LengthSeconds = -3
	cfg.Critters.Diameter = 12
	cfg.Normalize()

	if cfg.Round.LengthSeconds != 60 {
		t.Errorf("negative LengthSeconds should normalize to 60, got %d", cfg.Round.LengthSeconds)
	}
	if cfg.Critters.Diameter != 12 {
		t.Errorf("explicit Diameter should be kept, got %v", cfg.Critters.Diameter)
	}
	if cfg.View.UnitsPerCol != 10 {
		t.Errorf("UnitsPerCol should default to 10, got %d", cfg.View.UnitsPerCol)
	}
}

func TestIntervals(t *testing.T) {
	r := DefaultCatchConfig().Round
	if r.LoopInterval().Milliseconds() != 200 {
		t.Errorf("LoopInterval() = %v, expected 200ms", r.LoopInterval())
	}
	if r.ClockInterval().Seconds() != 1 {
		t.Errorf("ClockInterval() = %v, expected 1s", r.ClockInterval())
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, DefaultCatchConfig()); err != nil {
		t.Fatalf("WriteYAML() failed: %v", err)
	}

	var back CatchConfig
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if back != DefaultCatchConfig() {
		t.Errorf("WriteYAML output does not parse back to defaults: %+v", back)
	}
}

func TestWriteTOMLLoadsBack(t *testing.T) {
	isolate(t)

	cfg := DefaultCatchConfig()
	cfg.Round.LengthSeconds = 30

	var buf bytes.Buffer
	if err := WriteTOML(&buf, cfg); err != nil {
		t.Fatalf("WriteTOML() failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "dumped.toml")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	back, err := LoadCatch(path)
	if err != nil {
		t.Fatalf("LoadCatch() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("TOML round trip = %+v, expected %+v", back, cfg)
	}
}

// chdir changes the working directory for the duration of the test,
// restoring the previous one on cleanup (stand-in for testing.T.Chdir,
// which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q): %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore Chdir(%q): %v", prev, err)
		}
	})
}
