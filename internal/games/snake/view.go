package snake

// Size is the render size category of an entity.
type Size int

const (
	SizeFull  Size = iota // Head and food fill their cell
	SizeSmall             // Body segments are drawn smaller
)

// EntityView is a read-only copy of an entity for the renderer.
type EntityView struct {
	Kind Kind
	Pos  Position
	Size Size
}

// Entities returns the snake in body order followed by all food.
func (w *World) Entities() []EntityView {
	out := make([]EntityView, 0, w.arena.Len())
	for i := 0; i < w.body.Len(); i++ {
		e, ok := w.arena.Get(w.body.At(i))
		if !ok {
			continue
		}
		size := SizeSmall
		if e.Kind == KindHead {
			size = SizeFull
		}
		out = append(out, EntityView{Kind: e.Kind, Pos: e.Pos, Size: size})
	}
	for _, p := range w.Food() {
		out = append(out, EntityView{Kind: KindFood, Pos: p, Size: SizeFull})
	}
	return out
}

// Body returns segment positions, head first.
func (w *World) Body() []Position {
	return w.positions()
}

// Food returns the positions of all live food.
func (w *World) Food() []Position {
	var out []Position
	for _, h := range w.arena.Handles(KindFood) {
		if e, ok := w.arena.Get(h); ok {
			out = append(out, e.Pos)
		}
	}
	return out
}

// Direction returns the latched head direction.
func (w *World) Direction() Direction {
	head, ok := w.headEntity()
	if !ok {
		return DirNone
	}
	return head.Dir
}

// LastTail returns the tail position remembered from the latest move.
func (w *World) LastTail() (Position, bool) {
	return w.lastTail, w.hasLastTail
}

// Grid returns the arena extent.
func (w *World) Grid() Grid {
	return w.settings.Grid
}

// Len returns the body length.
func (w *World) Len() int {
	return w.body.Len()
}

// FoodEaten returns the food eaten in the current run.
func (w *World) FoodEaten() int {
	return w.foodEaten
}

// Ticks returns the movement ticks of the current run.
func (w *World) Ticks() int {
	return w.ticks
}

// Runs returns how many runs have terminated.
func (w *World) Runs() int {
	return w.runs
}

// LastEnd returns the most recent termination, or nil.
func (w *World) LastEnd() *RunEnd {
	return w.lastEnd
}
