package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

// MenuChoice is what the player picked in the menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

// MenuItem represents a selectable menu entry.
type MenuItem struct {
	Title  string
	Choice MenuChoice
}

var menuItems = []MenuItem{
	{Title: "Play", Choice: MenuChoicePlay},
	{Title: "High scores", Choice: MenuChoiceScores},
	{Title: "Quit", Choice: MenuChoiceQuit},
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	store    *storage.Store
	player   string
	quitting bool
	selected MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, player string, width, height int) MenuModel {
	return MenuModel{
		items:  menuItems,
		width:  width,
		height: height,
		store:  store,
		player: player,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "w", "up", "k": // vim-style k for up
		m.cursor = core.Clamp(m.cursor-1, 0, len(m.items)-1)

	case "s", "down", "j": // vim-style j for down
		m.cursor = core.Clamp(m.cursor+1, 0, len(m.items)-1)

	case "enter", " ":
		m.selected = m.items[m.cursor].Choice
		if m.selected == MenuChoiceQuit {
			m.quitting = true
			return m, tea.Quit
		}

	case "tab":
		m.selected = MenuChoiceScores
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  C A T C H  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Catch the cats. Dodge the dogs, birds and bears.", m.width))
	b.WriteString("\n")

	if m.store != nil {
		if high, err := m.store.HighScore(); err == nil && high > 0 {
			b.WriteString(centerText(fmt.Sprintf("High score: %d", high), m.width))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.player != "" {
		b.WriteString(centerText(fmt.Sprintf("Playing as %s", m.player), m.width))
		b.WriteString("\n")
	}
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the confirmed choice, or MenuChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
