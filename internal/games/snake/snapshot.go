package snake

// Snapshot captures the observable simulation state for determinism
// testing and headless output.
type Snapshot struct {
	Frames    uint64 // Frames stepped by the Game; zero for a bare World
	Ticks     int
	Runs      int
	FoodEaten int
	Length    int
	Head      Position
	Dir       Direction
	Body      []Position
	Food      []Position
	LastCause Cause
	Paused    bool
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Ticks:     w.ticks,
		Runs:      w.runs,
		FoodEaten: w.foodEaten,
		Length:    w.body.Len(),
		Dir:       w.Direction(),
		Body:      w.Body(),
		Food:      w.Food(),
	}
	if len(s.Body) > 0 {
		s.Head = s.Body[0]
	}
	if w.lastEnd != nil {
		s.LastCause = w.lastEnd.Cause
	}
	return s
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{}
	}
	s := g.world.Snapshot()
	s.Frames = g.frames
	s.Paused = g.paused
	return s
}
