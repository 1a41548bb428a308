package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/games/catch"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

// Options configures a terminal game session.
type Options struct {
	Game    config.CatchConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional shared leaderboard
	Host    string         // Recorded with each round: "tui" or "ssh"
	Logger  *log.Logger    // Optional; nil discards
}

// recorder saves finished rounds and keeps the hint shown after a round.
type recorder struct {
	store  *storage.Store
	player string
	host   string
	logger *log.Logger
	best   int // Best score of this session
	hint   string
}

func (r *recorder) record(snap catch.Snapshot) {
	r.best = max(r.best, snap.Score)
	r.hint = fmt.Sprintf("Session best: %d  |  Tab: scores  |  Esc: menu", r.best)

	r.logger.Info("round ended",
		"player", r.player,
		"score", snap.Score,
		"catches", snap.Catches,
		"penalties", snap.Penalties,
		"dropped", snap.Dropped,
	)

	if r.store == nil {
		return
	}

	if _, err := r.store.SaveRound(storage.RoundResult{
		Player:    r.player,
		Host:      r.host,
		Score:     snap.Score,
		Catches:   snap.Catches,
		Penalties: snap.Penalties,
		Dropped:   snap.Dropped,
	}); err != nil {
		// Best-effort save, the game continues regardless
		r.logger.Warn("could not save round", "error", err)
		return
	}

	if high, err := r.store.HighScore(); err == nil {
		r.hint = fmt.Sprintf("Session best: %d  |  High score: %d  |  Tab: scores", r.best, high)
	}
}

// Model is the Bubble Tea model for one catch game.
type Model struct {
	ctrl      *catch.Controller
	sched     *teaScheduler
	view      catch.View
	screen    *core.Screen
	rec       *recorder
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	quitting        bool
	backToMenu      bool
	wantsScoreboard bool
}

// NewModel creates an idle game laid out for the configured screen.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game := opts.Game
	game.Normalize()

	sched := newTeaScheduler(game.Round.LoopInterval(), game.Round.ClockInterval())
	ctrl := catch.NewController(catch.RulesFromConfig(game), rand.New(rand.NewSource(cfg.Seed)), sched)

	rec := &recorder{
		store:  opts.Store,
		player: cfg.Player,
		host:   opts.Host,
		logger: logger,
	}
	ctrl.Subscribe(func(ev catch.Event) {
		if ev.Kind == catch.EventEnded {
			rec.record(ctrl.Snapshot())
		}
	})

	m := Model{
		ctrl:      ctrl,
		sched:     sched,
		view:      catch.ViewFromConfig(game),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		rec:       rec,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	m.layout()
	return m
}

// layout sizes the play area to the current screen.
func (m Model) layout() {
	area := m.view.AreaFor(m.screen.Width(), m.screen.Height())
	m.ctrl.Layout(area.W, area.H)
}

// Init waits for the player; nothing ticks until a round starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.FocusMsg:
		m.ctrl.SetForeground(true)
		return m, nil

	case tea.BlurMsg:
		m.ctrl.SetForeground(false)
		return m, nil

	case LoopMsg:
		return m, m.sched.Loop(msg)

	case ClockMsg:
		return m, m.sched.Clock(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	running := m.ctrl.Lifecycle() == catch.Running

	switch action {
	case core.ActionLeft:
		m.ctrl.NudgeBasket(-1)
	case core.ActionRight:
		m.ctrl.NudgeBasket(1)
	case core.ActionStart:
		if !running {
			m.ctrl.Start()
		}
	case core.ActionRestart:
		m.ctrl.Start()
	case core.ActionScoreboard:
		if !running {
			m.wantsScoreboard = true
		}
	case core.ActionBack:
		if !running {
			m.backToMenu = true
		}
	case core.ActionScreenshot:
		m.saveScreenshot()
	}

	return m, m.sched.Commands()
}

// handleMouse centers the basket under the pointer.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
		return m, nil
	}
	if msg.Button != tea.MouseButtonNone && msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	m.ctrl.MoveBasket(m.view.AreaX(msg.X) + m.ctrl.BasketWidth()/2)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// A running round keeps its area; the next round picks up the new size.
	if m.ctrl.Lifecycle() != catch.Running {
		m.layout()
	}

	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	catch.Render(m.screen, m.ctrl.Snapshot(), m.view, m.rec.hint)

	dir := filepath.Join(os.Getenv("HOME"), ".catch", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.rec.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("catch_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.rec.logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	catch.Render(m.screen, m.ctrl.Snapshot(), m.view, m.rec.hint)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// WantsScoreboard returns true if user asked for the leaderboard.
func (m Model) WantsScoreboard() bool {
	return m.wantsScoreboard
}

// Resume clears the navigation flags so the model can be shown again.
func (m Model) Resume() Model {
	m.backToMenu = false
	m.wantsScoreboard = false
	return m
}

// Snapshot exposes the current game state, mainly for tests.
func (m Model) Snapshot() catch.Snapshot {
	return m.ctrl.Snapshot()
}
