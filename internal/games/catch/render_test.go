package catch

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-catch/internal/core"
)

func testView() View {
	return View{UnitsPerCol: 10, UnitsPerRow: 20}
}

func TestViewMapping(t *testing.T) {
	v := testView()

	area := v.AreaFor(40, 12)
	if area.W != 400 || area.H != 220 {
		t.Errorf("AreaFor(40, 12) = %+v, expected 400x220", area)
	}

	tests := []struct {
		y        float64
		expected int
	}{
		{0, 10},
		{-1, 10},
		{-20, 9},
		{-21, 9},
		{-41, 8},
		{-220, -1},
		{15, 11},
	}
	for _, tc := range tests {
		if got := v.Row(tc.y, 11); got != tc.expected {
			t.Errorf("Row(%v, 11) = %d, expected %d", tc.y, got, tc.expected)
		}
	}

	if got := v.Column(105); got != 10 {
		t.Errorf("Column(105) = %d, expected 10", got)
	}
	if got := v.Column(v.AreaX(17)); got != 17 {
		t.Errorf("Column(AreaX(17)) = %d, expected 17", got)
	}
}

func TestRenderRunning(t *testing.T) {
	screen := core.NewScreen(40, 12)
	snap := Snapshot{
		AreaW:       400,
		AreaH:       220,
		Critters:    []CritterView{{Kind: KindCat, X: 105, Y: -20}, {Kind: KindDog, X: 300, Y: -900}},
		Score:       3,
		Countdown:   42,
		Lifecycle:   Running,
		BasketLeft:  150,
		BasketWidth: 100,
		Foreground:  true,
	}

	Render(screen, snap, testView(), "")

	cell := screen.GetCell(10, 9)
	if cell.Rune != 'C' || cell.Color != core.ColorBlack {
		t.Errorf("critter cell = %q/%v, expected 'C'/black", cell.Rune, cell.Color)
	}
	if strings.ContainsRune(screen.String(), 'D') {
		t.Error("critter above the area should not be drawn")
	}

	if got := screen.Get(15, 10); got != BasketRimLeft {
		t.Errorf("basket left rim = %q, expected %q", got, BasketRimLeft)
	}
	if got := screen.Get(16, 10); got != BasketChar {
		t.Errorf("basket body = %q, expected %q", got, BasketChar)
	}
	if got := screen.Get(25, 10); got != BasketRimRight {
		t.Errorf("basket right rim = %q, expected %q", got, BasketRimRight)
	}

	hud := screen.Row(11)
	if !strings.Contains(hud, "Score: 3") || !strings.Contains(hud, "42") {
		t.Errorf("HUD row = %q, expected score and countdown", hud)
	}
	if strings.Contains(hud, "paused") {
		t.Error("foreground round should not show paused")
	}
}

func TestRenderBackgrounded(t *testing.T) {
	screen := core.NewScreen(40, 12)
	snap := Snapshot{Countdown: 30, Lifecycle: Running, BasketWidth: 100}

	Render(screen, snap, testView(), "")

	if hud := screen.Row(11); !strings.Contains(hud, "30 (paused)") {
		t.Errorf("HUD row = %q, expected paused countdown", hud)
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name      string
		lifecycle Lifecycle
		hint      string
		expected  []string
	}{
		{"idle", Idle, "", []string{"C A T C H", "Enter to start"}},
		{"ended", Ended, "Best this session: 12", []string{"TIME'S UP", "Score: 7", "Best this session: 12"}},
		{"running has no box", Running, "ignored", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			screen := core.NewScreen(60, 16)
			snap := Snapshot{AreaW: 600, AreaH: 300, Score: 7, Lifecycle: tc.lifecycle, Foreground: true, BasketWidth: 150}

			Render(screen, snap, testView(), tc.hint)

			out := screen.String()
			for _, want := range tc.expected {
				if !strings.Contains(out, want) {
					t.Errorf("screen missing %q:\n%s", want, out)
				}
			}
			if tc.expected == nil && strings.Contains(out, tc.hint) {
				t.Error("hint should only show after the round")
			}
		})
	}
}

func TestRenderTinyScreen(t *testing.T) {
	screen := core.NewScreen(5, 1)
	Render(screen, Snapshot{Lifecycle: Running}, testView(), "")
}
