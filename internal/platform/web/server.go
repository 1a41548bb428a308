// Package web hosts the catch game in a browser. Each WebSocket connection
// plays its own round; finished rounds go to the shared leaderboard.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

//go:embed static
var staticFiles embed.FS

// ServerConfig holds configuration for the web server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// Game is the gameplay configuration every connection plays with.
	Game config.CatchConfig

	// Seed fixes the RNG of every connection when non-zero.
	Seed int64

	// AllowedOrigins lists extra Origin values accepted for WebSocket upgrades.
	// Same-origin requests are always accepted.
	AllowedOrigins []string
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address: ":8080",
		Game:    config.DefaultCatchConfig(),
	}
}

// Server serves the browser client, the WebSocket endpoint and the leaderboard.
type Server struct {
	config   ServerConfig
	store    *storage.Store
	logger   *log.Logger
	upgrader websocket.Upgrader
	http     *http.Server

	// Hijacked connections outlive http.Server.Shutdown, so sessions hang
	// off this context instead of the request's.
	ctx      context.Context
	cancel   context.CancelFunc
	sessions sync.WaitGroup
}

// NewServer creates a web server. A nil store disables the leaderboard;
// a nil logger logs to stderr.
func NewServer(cfg ServerConfig, store *storage.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "catch-web",
		})
	}

	s := &Server{
		config: cfg,
		store:  store,
		logger: logger,
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     s.checkOrigin,
	}
	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// The directory is embedded at build time
		panic(err)
	}

	mux := http.NewServeMux()
	mux.Handle("GET /", http.FileServer(http.FS(static)))
	mux.HandleFunc("GET /ws", s.handleWS)
	mux.HandleFunc("GET /scores", s.handleScores)
	return mux
}

// checkOrigin accepts same-origin upgrades and the configured extra origins.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range s.config.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return strings.EqualFold(strings.TrimPrefix(strings.TrimPrefix(origin, "http://"), "https://"), r.Host)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	player := strings.TrimSpace(r.URL.Query().Get("name"))
	if player == "" {
		player = "guest-" + uuid.NewString()[:8]
	}

	if s.ctx.Err() != nil {
		http.Error(w, "server is shutting down", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client
		s.logger.Warn("upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s.sessions.Add(1)
	defer s.sessions.Done()

	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := s.logger.With("remote", r.RemoteAddr)
	logger.Info("session started", "player", player)
	newSession(conn, s.config.Game, seed, s.store, player, logger).run(s.ctx)
	logger.Info("session ended", "player", player)
}

// handleScores serves the leaderboard, or one player's recent rounds with ?player=.
func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	player := strings.TrimSpace(r.URL.Query().Get("player"))

	rounds := []storage.RoundResult{}
	if s.store != nil {
		var top []storage.RoundResult
		var err error
		if player != "" {
			top, err = s.store.PlayerRounds(player, limit)
		} else {
			top, err = s.store.TopRounds(limit)
		}
		if err != nil {
			s.logger.Error("could not load scores", "error", err)
			http.Error(w, "could not load scores", http.StatusInternalServerError)
			return
		}
		if top != nil {
			rounds = top
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rounds); err != nil {
		s.logger.Warn("could not write scores", "error", err)
	}
}

// ListenAndServe starts the web server and blocks until shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting web server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return err
	case <-done:
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server and closes every live session.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.cancel()
	err := s.http.Shutdown(ctx)

	done := make(chan struct{})
	go func() {
		s.sessions.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return errors.Join(err, fmt.Errorf("web: sessions still open: %w", ctx.Err()))
	}
	return err
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}
