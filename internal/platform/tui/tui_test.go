package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
	"github.com/vovakirdan/tui-catch/internal/games/catch"
	"github.com/vovakirdan/tui-catch/internal/storage"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testOptions(store *storage.Store) Options {
	return Options{
		Game: config.DefaultCatchConfig(),
		Runtime: core.RuntimeConfig{
			ScreenW: 60,
			ScreenH: 12,
			Seed:    1,
			Player:  "tester",
		},
		Store: store,
		Host:  "tui",
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model, cmd
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{keyRunes("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{keyRunes("h"), core.ActionLeft, false},
		{keyRunes("a"), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{keyRunes("l"), core.ActionRight, false},
		{keyRunes("d"), core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionStart, false},
		{keyRunes("r"), core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionScoreboard, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot, false},
		{keyRunes("x"), core.ActionNone, false},
	}

	for _, tc := range tests {
		action, quit := km.MapKey(tc.msg)
		if action != tc.action || quit != tc.quit {
			t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), action, quit, tc.action, tc.quit)
		}
	}
}

func TestTeaSchedulerGenerations(t *testing.T) {
	s := newTeaScheduler(0, 0)
	loops := 0

	if cmd := s.Commands(); cmd != nil {
		t.Error("Commands() before Start should be nil")
	}

	s.Start(func() { loops++ }, func() {})
	first := s.gen
	if cmd := s.Commands(); cmd == nil {
		t.Fatal("Commands() after Start should not be nil")
	}
	if cmd := s.Commands(); cmd != nil {
		t.Error("Commands() should only fire once per Start")
	}

	if cmd := s.Loop(LoopMsg{Gen: first}); cmd == nil || loops != 1 {
		t.Errorf("live tick: cmd=%v loops=%d", cmd != nil, loops)
	}

	s.Start(func() { loops++ }, func() {})
	if cmd := s.Loop(LoopMsg{Gen: first}); cmd != nil || loops != 1 {
		t.Error("tick from the previous round should be dropped")
	}

	s.Stop()
	if cmd := s.Loop(LoopMsg{Gen: s.gen}); cmd != nil || loops != 1 {
		t.Error("tick after Stop should be dropped")
	}
}

func TestModelLayout(t *testing.T) {
	m := NewModel(testOptions(nil))
	snap := m.Snapshot()

	if snap.AreaW != 600 || snap.AreaH != 220 {
		t.Errorf("area = %vx%v, expected 600x220", snap.AreaW, snap.AreaH)
	}
	if snap.Lifecycle != catch.Idle {
		t.Errorf("Lifecycle = %v, expected idle", snap.Lifecycle)
	}
	if !strings.Contains(m.View(), "Enter to start") {
		t.Error("idle view should invite the player to start")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 21})
	if snap := m.Snapshot(); snap.AreaW != 800 || snap.AreaH != 400 {
		t.Errorf("area after resize = %vx%v, expected 800x400", snap.AreaW, snap.AreaH)
	}
}

func TestModelStartAndTick(t *testing.T) {
	m := NewModel(testOptions(nil))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("starting a round should schedule ticks")
	}
	if m.Snapshot().Lifecycle != catch.Running {
		t.Fatalf("Lifecycle = %v, expected running", m.Snapshot().Lifecycle)
	}

	gen := m.sched.gen
	m, cmd = update(t, m, LoopMsg{Gen: gen})
	if cmd == nil {
		t.Error("a live loop tick should schedule the next one")
	}
	if len(m.Snapshot().Critters) == 0 {
		t.Error("first tick at countdown 60 always spawns")
	}

	m, _ = update(t, m, ClockMsg{Gen: gen})
	if got := m.Snapshot().Countdown; got != 59 {
		t.Errorf("Countdown = %d, expected 59", got)
	}

	// Enter during a round does not restart it
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Snapshot().Countdown; got != 59 {
		t.Errorf("Countdown after Enter = %d, expected 59", got)
	}

	// R does, and old ticks stop counting
	m, _ = update(t, m, keyRunes("r"))
	m, cmd = update(t, m, ClockMsg{Gen: gen})
	if cmd != nil || m.Snapshot().Countdown != 60 {
		t.Errorf("stale clock tick changed countdown to %d", m.Snapshot().Countdown)
	}
}

func TestModelFocus(t *testing.T) {
	m := NewModel(testOptions(nil))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	gen := m.sched.gen

	m, _ = update(t, m, tea.BlurMsg{})
	m, _ = update(t, m, ClockMsg{Gen: gen})
	if got := m.Snapshot().Countdown; got != 60 {
		t.Errorf("Countdown while blurred = %d, expected 60", got)
	}
	if !strings.Contains(m.View(), "paused") {
		t.Error("blurred round should show paused")
	}

	m, _ = update(t, m, tea.FocusMsg{})
	m, _ = update(t, m, ClockMsg{Gen: gen})
	if got := m.Snapshot().Countdown; got != 59 {
		t.Errorf("Countdown after focus = %d, expected 59", got)
	}
}

func TestModelBasketInput(t *testing.T) {
	m := NewModel(testOptions(nil))

	m, _ = update(t, m, tea.MouseMsg{X: 20, Y: 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	// Column 20 centers at x=205; basket is 150 wide
	if got := m.Snapshot().BasketLeft; got != 130 {
		t.Errorf("BasketLeft after mouse = %v, expected 130", got)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Snapshot().BasketLeft; got != 110 {
		t.Errorf("BasketLeft after left key = %v, expected 110", got)
	}

	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if got := m.Snapshot().BasketLeft; got != 110 {
		t.Errorf("wheel moved the basket to %v", got)
	}
}

func TestModelRoundEndSavesScore(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := NewModel(testOptions(store))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	gen := m.sched.gen

	// Tab and Esc are ignored mid-round
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.WantsScoreboard() || m.BackToMenu() {
		t.Fatal("navigation should be ignored while running")
	}

	for i := 0; i < 61; i++ {
		m, _ = update(t, m, ClockMsg{Gen: gen})
	}
	if m.Snapshot().Lifecycle != catch.Ended {
		t.Fatalf("Lifecycle = %v, expected ended", m.Snapshot().Lifecycle)
	}

	rounds, err := store.TopRounds(10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(rounds) != 1 || rounds[0].Player != "tester" || rounds[0].Host != "tui" {
		t.Errorf("saved rounds = %+v, expected one for tester", rounds)
	}

	view := m.View()
	if !strings.Contains(view, "TIME'S UP") || !strings.Contains(view, "High score") {
		t.Errorf("ended view missing summary:\n%s", view)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("Tab after the round should open the scoreboard")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(testOptions(nil))
	m, cmd := update(t, m, keyRunes("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestSessionNavigation(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveRound(storage.RoundResult{Player: "tester", Score: 9})

	var s tea.Model = NewSessionModel(testOptions(store))
	send := func(msg tea.Msg) SessionModel {
		t.Helper()
		s, _ = s.Update(msg)
		return s.(SessionModel)
	}

	if got := s.(SessionModel).Current(); got != "game" {
		t.Fatalf("Current() = %q, expected game", got)
	}

	if got := send(tea.KeyMsg{Type: tea.KeyEsc}).Current(); got != "menu" {
		t.Fatalf("Esc from idle game: Current() = %q, expected menu", got)
	}
	if view := s.View(); !strings.Contains(view, "High score: 9") {
		t.Errorf("menu should show the high score:\n%s", view)
	}

	send(tea.KeyMsg{Type: tea.KeyDown})
	if got := send(tea.KeyMsg{Type: tea.KeyEnter}).Current(); got != "scores" {
		t.Fatalf("High scores entry: Current() = %q, expected scores", got)
	}
	if view := s.View(); !strings.Contains(view, "HIGH SCORES") {
		t.Errorf("scoreboard view missing title:\n%s", view)
	}

	if got := send(tea.KeyMsg{Type: tea.KeyEsc}).Current(); got != "game" {
		t.Fatalf("Esc from scores: Current() = %q, expected game", got)
	}

	send(tea.KeyMsg{Type: tea.KeyEnter})
	if got := s.(SessionModel).Game().Snapshot().Lifecycle; got != catch.Running {
		t.Errorf("Lifecycle = %v, expected running", got)
	}

	session := send(keyRunes("q"))
	if session.View() != "" {
		t.Error("quitting session should render nothing")
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	var m tea.Model = NewMenuModel(nil, "tester", 60, 12)
	press := func(msg tea.KeyMsg) MenuModel {
		m, _ = m.Update(msg)
		return m.(MenuModel)
	}

	if got := press(tea.KeyMsg{Type: tea.KeyUp}).cursor; got != 0 {
		t.Errorf("cursor after Up at top = %d, expected 0", got)
	}

	for i := 0; i < len(menuItems)+2; i++ {
		press(tea.KeyMsg{Type: tea.KeyDown})
	}
	if got := m.(MenuModel).cursor; got != len(menuItems)-1 {
		t.Errorf("cursor after Down past the end = %d, expected %d", got, len(menuItems)-1)
	}

	if menu := press(tea.KeyMsg{Type: tea.KeyEnter}); !menu.IsQuitting() {
		t.Error("Enter on the last item should quit")
	}
}
