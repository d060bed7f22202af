package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// Position is a cell on the arena grid. The y axis points up: moving Up
// increases Y.
type Position struct {
	X, Y int
}

// Add returns p displaced by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid describes the arena extent in cells.
type Grid struct {
	Width, Height int
}

// Contains reports whether p lies inside the arena.
func (g Grid) Contains(p Position) bool {
	return core.NewRect(0, 0, g.Width, g.Height).Contains(p.X, p.Y)
}

// Cells returns the number of cells in the arena.
func (g Grid) Cells() int {
	return g.Width * g.Height
}
