package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-catch/internal/platform/tui"
	"github.com/vovakirdan/tui-catch/internal/platform/web"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeWeb    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own round; the SSH user name is the player name.
All users share one leaderboard, kept in memory until the server stops.
With --web the browser host runs in the same process and shares it too.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.catch/host_key

Examples:
  catch serve                           # Listen on :23234 with auto-generated key
  catch serve --ssh :2222               # Listen on port 2222
  catch serve --host-key ./my_host_key  # Use specific host key
  catch serve --web :8080               # Also serve browsers

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeWeb, "web", "", "Also serve browsers on this address (host:port)")
}

func runServe(_ *cobra.Command, _ []string) {
	game, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger("catch-ssh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open scoreboard", "error", err)
		// Continue without storage
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        game,
		Seed:        flagSeed,
	}

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	if flagServeWeb != "" {
		webCfg := web.DefaultServerConfig()
		webCfg.Address = flagServeWeb
		webCfg.Game = game
		webCfg.Seed = flagSeed

		webServer := web.NewServer(webCfg, store, logger.WithPrefix("catch-web"))
		go func() {
			if err := webServer.ListenAndServe(); err != nil {
				logger.Error("web server error", "error", err)
			}
		}()
	}

	fmt.Printf("Starting catch SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
