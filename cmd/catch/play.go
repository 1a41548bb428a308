package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/platform/tui"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

var flagName string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Mouse        - Move the basket
  Left/Right   - Nudge the basket (also h/l, a/d)
  Enter/Space  - Start a round
  R            - Restart at any time
  Tab          - High scores (between rounds)
  Esc/B        - Menu (between rounds)
  Ctrl+S       - Save a screenshot to ~/.catch/screenshots
  Q/Ctrl+C     - Quit

The countdown pauses while the terminal window is out of focus.
Scores last until the program exits.

Examples:
  catch play
  catch play --name ana
  catch play --seed 42
  catch play --config ./my-catch.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", defaultPlayerName(), "Name shown on the scoreboard")
}

func defaultPlayerName() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return core.DefaultConfig().Player
}

func runPlay(_ *cobra.Command, _ []string) {
	game, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	cfg.Player = flagName

	// Scores only live as long as this process
	store, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scoreboard: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// No logger: the alternate screen owns the terminal
	runErr := tui.Run(tui.Options{
		Game:    game,
		Runtime: cfg,
		Store:   store,
		Host:    "tui",
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
