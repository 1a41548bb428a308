package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-catch/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration the game would run with, after applying the
search order and filling unset values with defaults.

Search order:
  --config <path>
  ~/.catch/catch.yaml, then ~/.catch/catch.toml
  ./configs/catch.yaml
  built-in defaults

Examples:
  catch config
  catch config --format toml > ~/.catch/catch.toml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	game, err := loadGameConfig()
	if err != nil {
		return err
	}

	switch flagFormat {
	case "yaml":
		return config.WriteYAML(cmd.OutOrStdout(), game)
	case "toml":
		return config.WriteTOML(cmd.OutOrStdout(), game)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (use yaml or toml)\n", flagFormat)
		os.Exit(1)
		return nil
	}
}
