// catch is a terminal arcade game: catch the falling cats, dodge everything else.
//
// Usage:
//
//	catch play               - Play in this terminal
//	catch serve              - Start SSH server for remote play
//	catch web                - Serve the game to browsers
//	catch config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game config file (.yaml or .toml)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-catch/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catch",
	Short: "CATch - catch the cats before the clock runs out",
	Long: `CATch is a small arcade game. Critters fall from the sky; move the basket
to catch the cats (+1) and avoid the dogs, birds and teddy bears (-1).
A round lasts 60 seconds.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Serve the game to browsers over WebSocket
  config   - Print the effective configuration

Examples:
  catch play
  catch play --seed 42 --name ana
  catch serve --ssh :2222 --web :8080
  catch web --addr :8080
  catch config --config ./my-catch.toml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config (.yaml or .toml)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the game configuration from --config and the search path.
func loadGameConfig() (config.CatchConfig, error) {
	cfg, err := config.LoadCatch(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// newLogger creates a stderr logger honoring --log-level.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
