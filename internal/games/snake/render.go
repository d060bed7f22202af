package snake

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

const (
	cellWidth = 2 // Terminal columns per grid cell
	hudRows   = 2 // HUD line plus separator
)

// glyph is the two-column appearance of one grid cell.
type glyph struct {
	left, right rune
	color       core.Color
}

var (
	glyphEmpty   = glyph{'·', ' ', core.ColorDarkGray}
	glyphHead    = glyph{'█', '█', core.ColorBrightWhite}
	glyphSegment = glyph{'▪', '▪', core.ColorGray}
	glyphFood    = glyph{'▓', '▓', core.ColorMagenta}
)

// glyphFor picks the cell appearance from an entity's kind and size.
func glyphFor(e EntityView) glyph {
	switch {
	case e.Kind == KindFood:
		return glyphFood
	case e.Size == SizeFull:
		return glyphHead
	default:
		return glyphSegment
	}
}

// viewport maps grid cells to screen cells. Grid y grows upward while
// screen rows grow downward, so rows are flipped.
type viewport struct {
	originX, originY int // Screen cell of the top-left grid cell
	rows             int
}

func newViewport(g Grid, screenW, top int) viewport {
	boxW := g.Width*cellWidth + 2
	return viewport{
		originX: (screenW-boxW)/2 + 1,
		originY: top + 1,
		rows:    g.Height,
	}
}

func (v viewport) toScreen(p Position) (int, int) {
	return v.originX + p.X*cellWidth, v.originY + (v.rows - 1 - p.Y)
}

// frame returns the border rectangle around the arena.
func (v viewport) frame(g Grid) core.Rect {
	return core.NewRect(v.originX-1, v.originY-1, g.Width*cellWidth+2, g.Height+2)
}

// RequiredSize returns the smallest screen that fits the HUD, the framed
// arena and the hint line below it.
func RequiredSize(g Grid) (int, int) {
	return g.Width*cellWidth + 2, hudRows + g.Height + 2 + 1
}

// Render draws the current frame to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		dst.Clear()
		return
	}
	RenderWorld(dst, g.world, g.paused)
}

// RenderWorld draws a world with its HUD, the framed arena and any overlay.
func RenderWorld(dst *core.Screen, w *World, paused bool) {
	dst.Clear()
	renderHUD(dst, w)

	needW, needH := RequiredSize(w.Grid())
	if dst.Width() < needW || dst.Height() < needH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	grid := w.Grid()
	vp := newViewport(grid, dst.Width(), hudRows)
	dst.DrawBox(vp.frame(grid), core.ColorGray)

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			drawCell(dst, vp, Position{X: x, Y: y}, glyphEmpty)
		}
	}

	// Food first so the snake wins when both share a cell.
	entities := w.Entities()
	for i := len(entities) - 1; i >= 0; i-- {
		e := entities[i]
		if !grid.Contains(e.Pos) {
			continue
		}
		drawCell(dst, vp, e.Pos, glyphFor(e))
	}

	hintY := vp.frame(grid).Bottom()
	switch {
	case paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	case w.Direction() == DirNone:
		dst.DrawTextCentered(hintY, "Press an arrow key to start")
	}
}

func drawCell(dst *core.Screen, vp viewport, p Position, gl glyph) {
	sx, sy := vp.toScreen(p)
	dst.SetColor(sx, sy, gl.left, gl.color)
	dst.SetColor(sx+1, sy, gl.right, gl.color)
}

func renderHUD(dst *core.Screen, w *World) {
	hud := fmt.Sprintf(" Snake  Food: %d  Length: %d  Runs: %d", w.FoodEaten(), w.Len(), w.Runs())
	if end := w.LastEnd(); end != nil {
		hud += fmt.Sprintf("  Last: %s", end.Cause)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		dst.DrawHLine(box.X+1, y, boxW-2, ' ')
	}
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
