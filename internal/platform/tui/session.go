package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// screen identifies which sub-model a session is showing.
type screen int

const (
	screenGame screen = iota
	screenMenu
	screenScores
)

// SessionModel manages the full session flow: game <-> menu <-> scoreboard.
// The game model lives for the whole session so the basket and session best survive
// trips to the other screens. It is the top-level model for local and SSH play.
type SessionModel struct {
	opts     Options
	game     Model
	menu     MenuModel
	scores   ScoreboardModel
	current  screen
	width    int
	height   int
	quitting bool
}

// NewSessionModel creates a session that opens on an idle game.
func NewSessionModel(opts Options) SessionModel {
	return SessionModel{
		opts:    opts,
		game:    NewModel(opts),
		current: screenGame,
		width:   opts.Runtime.ScreenW,
		height:  opts.Runtime.ScreenH,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// The game tracks size even while hidden so it re-lays out correctly
		next, _ := m.game.Update(msg)
		m.game = next.(Model)
		if m.current == screenGame {
			return m, nil
		}

	case LoopMsg, ClockMsg:
		// Ticks always belong to the game, whichever screen is showing
		next, cmd := m.game.Update(msg)
		m.game = next.(Model)
		return m, cmd
	}

	switch m.current {
	case screenMenu:
		return m.updateMenu(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateGame(msg)
	}
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(Model)

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.WantsScoreboard():
		m.game = m.game.Resume()
		return m.showScores()
	case m.game.BackToMenu():
		m.game = m.game.Resume()
		m.menu = NewMenuModel(m.opts.Store, m.opts.Runtime.Player, m.width, m.height)
		m.current = screenMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Selected() {
	case MenuChoicePlay:
		m.current = screenGame
		return m, nil
	case MenuChoiceScores:
		return m.showScores()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.current = screenGame
		return m, nil
	}

	return m, cmd
}

func (m SessionModel) showScores() (tea.Model, tea.Cmd) {
	m.scores = NewScoreboardModel(m.opts.Store, m.opts.Runtime.Player, m.width, m.height)
	m.current = screenScores
	return m, m.scores.Init()
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenMenu:
		return m.menu.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.game.View()
	}
}

// Current reports which screen is showing, mainly for tests.
func (m SessionModel) Current() string {
	switch m.current {
	case screenMenu:
		return "menu"
	case screenScores:
		return "scores"
	default:
		return "game"
	}
}

// Game returns the session's game model.
func (m SessionModel) Game() Model {
	return m.game
}

// Run starts a local Bubble Tea program for one player.
func Run(opts Options) error {
	if opts.Host == "" {
		opts.Host = "tui"
	}

	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // The basket follows the pointer
		tea.WithReportFocus(),    // Focus loss freezes the countdown
	)

	_, err := p.Run()
	return err
}
