package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadCatch loads the catch configuration.
// Search order: customPath -> ~/.catch/catch.{yaml,toml} -> ./configs/catch.yaml -> embedded default.
// The result is always normalized.
func LoadCatch(customPath string) (CatchConfig, error) {
	var cfg CatchConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Normalize()
		return cfg, nil
	}

	// Try user config directory
	for _, name := range []string{"catch.yaml", "catch.toml"} {
		path := userConfigPath(name)
		if path == "" {
			break
		}
		if data, err := os.ReadFile(path); err == nil {
			cfg = CatchConfig{}
			if err := decode(path, data, &cfg); err == nil {
				cfg.Normalize()
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "catch.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		cfg = CatchConfig{}
		if err := decode(localPath, data, &cfg); err == nil {
			cfg.Normalize()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg = CatchConfig{}
	if err := yaml.Unmarshal(defaultCatchYAML, &cfg); err != nil {
		return DefaultCatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Normalize()
	return cfg, nil
}

// WriteYAML encodes the configuration as YAML.
func WriteYAML(w io.Writer, cfg CatchConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

// WriteTOML encodes the configuration as TOML.
func WriteTOML(w io.Writer, cfg CatchConfig) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// decode picks the format from the file extension; anything but .toml is YAML.
func decode(path string, data []byte, cfg *CatchConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".catch", filename)
}
