package catch

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-catch/internal/config"
	"github.com/vovakirdan/tui-catch/internal/core"
)

// HUDRows is the number of screen rows reserved below the play area.
const HUDRows = 1

// Visual characters for rendering
const (
	BasketChar     = '▀'
	BasketRimLeft  = '\\'
	BasketRimRight = '/'
)

// View maps play-area units onto terminal cells.
type View struct {
	UnitsPerCol int
	UnitsPerRow int
}

// ViewFromConfig extracts the cell mapping from a configuration.
func ViewFromConfig(cfg config.CatchConfig) View {
	cfg.Normalize()
	return View{UnitsPerCol: cfg.View.UnitsPerCol, UnitsPerRow: cfg.View.UnitsPerRow}
}

// AreaFor returns the play area that fills a screen of cols x rows.
func (v View) AreaFor(cols, rows int) core.Size {
	playRows := max(rows-HUDRows, 1)
	return core.Size{
		W: float64(max(cols, 1) * v.UnitsPerCol),
		H: float64(playRows * v.UnitsPerRow),
	}
}

// Column maps a horizontal area offset to a screen column.
func (v View) Column(x float64) int {
	return int(math.Floor(x / float64(v.UnitsPerCol)))
}

// Row maps a vertical area offset to a screen row. The catch line (y = 0)
// is the last play row; anything below it is off screen.
func (v View) Row(y float64, playRows int) int {
	return playRows - 1 + int(math.Ceil(y/float64(v.UnitsPerRow)))
}

// AreaX maps a screen column back to the area offset at the column's center.
func (v View) AreaX(col int) float64 {
	return (float64(col) + 0.5) * float64(v.UnitsPerCol)
}

// Render draws a snapshot onto the screen. hint is shown in the end-of-round box.
func Render(dst *core.Screen, snap Snapshot, v View, hint string) {
	dst.Clear()
	playRows := dst.Height() - HUDRows
	if playRows < 1 {
		return
	}

	for _, c := range snap.Critters {
		row := v.Row(c.Y, playRows)
		if row < 0 || row >= playRows {
			continue
		}
		dst.SetColored(v.Column(c.X), row, c.Kind.Glyph(), c.Kind.Color())
	}

	drawBasket(dst, snap, v, playRows-1)
	drawHUD(dst, snap, playRows)

	switch snap.Lifecycle {
	case Idle:
		drawCenteredMessage(dst, "C A T C H", "Catch cats, dodge the rest  |  Enter to start")
	case Ended:
		subtitle := fmt.Sprintf("Score: %d  |  Enter to play again", snap.Score)
		drawCenteredMessage(dst, "TIME'S UP", subtitle)
		if hint != "" {
			dst.DrawTextCentered(dst.Height()/2+3, hint)
		}
	}
}

func drawBasket(dst *core.Screen, snap Snapshot, v View, row int) {
	left := v.Column(snap.BasketLeft)
	right := v.Column(snap.BasketLeft + snap.BasketWidth)
	if right <= left {
		right = left + 1
	}
	dst.SetColored(left, row, BasketRimLeft, core.ColorBrown)
	dst.DrawHLine(left+1, row, right-left-1, BasketChar, core.ColorBrown)
	dst.SetColored(right, row, BasketRimRight, core.ColorBrown)
}

func drawHUD(dst *core.Screen, snap Snapshot, row int) {
	dst.DrawHLine(0, row, dst.Width(), ' ', core.ColorDefault)

	score := fmt.Sprintf(" Score: %d ", snap.Score)
	dst.DrawTextColored(1, row, score, core.ColorBrightWhite)

	clock := fmt.Sprintf(" %d ", snap.Countdown)
	if snap.Lifecycle == Running && !snap.Foreground {
		clock = fmt.Sprintf(" %d (paused) ", snap.Countdown)
	}
	dst.DrawTextColored(dst.Width()-len(clock)-1, row, clock, core.ColorRed)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
