package main

import (
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-catch/internal/platform/web"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

var (
	flagWebAddr string
	flagOrigins []string
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the game to browsers",
	Long: `Start an HTTP server with a browser client. Every page load plays its own
round over a WebSocket; finished rounds go to a shared in-memory leaderboard.

Routes:
  /         - Browser client
  /ws       - WebSocket game endpoint (?name=<player>)
  /scores   - Leaderboard as JSON (?limit=<n>)

Examples:
  catch web
  catch web --addr :9000
  catch web --allow-origin https://games.example`,
	Args: cobra.NoArgs,
	Run:  runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP server address (host:port)")
	webCmd.Flags().StringSliceVar(&flagOrigins, "allow-origin", nil, "Extra Origin values allowed to open the WebSocket")
}

func runWeb(_ *cobra.Command, _ []string) {
	game, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger("catch-web")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open scoreboard", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := web.DefaultServerConfig()
	cfg.Address = flagWebAddr
	cfg.Game = game
	cfg.Seed = flagSeed
	cfg.AllowedOrigins = flagOrigins

	fmt.Printf("Open http://localhost:%s in a browser\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := web.NewServer(cfg, store, logger).ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// portOf returns the port of a host:port address, or the address itself.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return strings.TrimPrefix(addr, ":")
}
