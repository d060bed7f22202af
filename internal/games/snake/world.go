package snake

import (
	"math/rand"
	"time"
)

// Settings configures a World.
type Settings struct {
	Grid            Grid
	MoveInterval    time.Duration
	FoodInterval    time.Duration
	StartHead       Position
	StartTail       Position
	MaxFood         int
	PreventReversal bool
}

// DefaultSettings returns the classic 10x10 arena with the snake starting at
// (3,3) with its tail below at (3,2).
func DefaultSettings() Settings {
	return Settings{
		Grid:         Grid{Width: DefaultWidth, Height: DefaultHeight},
		MoveInterval: 200 * time.Millisecond,
		FoodInterval: time.Second,
		StartHead:    Position{X: 3, Y: 3},
		StartTail:    Position{X: 3, Y: 2},
		MaxFood:      1,
	}
}

// Default arena extent in cells.
const (
	DefaultWidth  = 10
	DefaultHeight = 10
)

// RunEnd describes a terminated run.
type RunEnd struct {
	Cause     Cause
	At        Position
	Length    int
	FoodEaten int
	Ticks     int
}

// TickResult reports what a call to Update or Tick did.
type TickResult struct {
	Moved   bool    // A movement tick displaced the snake
	Grew    bool    // A segment was appended
	Spawned bool    // Food was placed
	Ended   *RunEnd // Non-nil when the run terminated and the world was reset
}

// World is the whole simulation state: arena records, body order, timers
// and the per-tick event queues. It is owned by a single loop and is not
// safe for concurrent use.
type World struct {
	settings Settings
	arena    Arena
	body     Body
	events   eventQueue
	rng      *rand.Rand

	moveTimer Timer
	foodTimer Timer

	lastTail    Position
	hasLastTail bool

	// Per-run and per-session counters
	ticks     int
	foodEaten int
	runs      int
	lastEnd   *RunEnd
}

// NewWorld creates a world and spawns the starting snake.
func NewWorld(s Settings, seed int64) *World {
	w := &World{
		settings:  s,
		rng:       rand.New(rand.NewSource(seed)),
		moveTimer: NewTimer(s.MoveInterval),
		foodTimer: NewTimer(s.FoodInterval),
	}
	w.spawnSnake()
	return w
}

// spawnSnake creates the canonical two-segment body with no direction.
func (w *World) spawnSnake() {
	head := w.arena.Spawn(Entity{Kind: KindHead, Pos: w.settings.StartHead, Dir: DirNone})
	tail := w.arena.Spawn(Entity{Kind: KindSegment, Pos: w.settings.StartTail})
	w.body.Append(head)
	w.body.Append(tail)
}

// Steer latches d as the head direction. DirNone is ignored, so the
// direction only changes on real input. With PreventReversal set, a
// direction pointing straight back into the second segment is dropped.
func (w *World) Steer(d Direction) {
	if d == DirNone {
		return
	}
	head, ok := w.headEntity()
	if !ok {
		return
	}
	if w.settings.PreventReversal && w.body.Len() > 1 {
		if neck, ok := w.arena.Get(w.body.At(1)); ok && head.Pos.Add(d.Delta()) == neck.Pos {
			return
		}
	}
	head.Dir = d
}

// Update advances the world by dt. The movement gate fires at most one
// tick; the food gate independently attempts at most one spawn.
func (w *World) Update(dt time.Duration) TickResult {
	var res TickResult
	if w.moveTimer.Advance(dt) {
		res = w.Tick()
	}
	if w.foodTimer.Advance(dt) {
		_, res.Spawned = w.spawnFood()
	}
	return res
}

// Tick runs one movement tick: move, detect collisions and food, then apply
// game over before growth. A reset supersedes any growth raised in the same
// tick.
func (w *World) Tick() TickResult {
	var res TickResult

	snapshot := w.move()
	if snapshot == nil {
		return res
	}
	res.Moved = true
	w.ticks++

	w.detectCollisions(snapshot)
	w.consumeFood()

	if ev, ok := w.events.firstGameOver(); ok {
		res.Ended = w.gameOver(ev)
	} else if _, ok := w.events.firstGrowth(); ok {
		res.Grew = w.grow()
	}

	w.events.clear()
	return res
}

// gameOver destroys every segment and food record and respawns the start body.
func (w *World) gameOver(ev GameOverEvent) *RunEnd {
	end := &RunEnd{
		Cause:     ev.Cause,
		At:        ev.At,
		Length:    w.body.Len(),
		FoodEaten: w.foodEaten,
		Ticks:     w.ticks,
	}
	w.clear()
	w.spawnSnake()
	w.runs++
	w.lastEnd = end
	return end
}

// grow appends a segment at the tail position remembered from this tick's move.
func (w *World) grow() bool {
	if !w.hasLastTail {
		return false
	}
	w.body.Append(w.arena.Spawn(Entity{Kind: KindSegment, Pos: w.lastTail}))
	w.foodEaten++
	return true
}

// Restart starts a fresh run without recording a termination.
func (w *World) Restart() {
	w.clear()
	w.spawnSnake()
	w.moveTimer.Reset()
	w.foodTimer.Reset()
}

func (w *World) clear() {
	for i := 0; i < w.body.Len(); i++ {
		w.arena.Despawn(w.body.At(i))
	}
	for _, h := range w.arena.Handles(KindFood) {
		w.arena.Despawn(h)
	}
	w.body.Clear()
	w.events.clear()
	w.hasLastTail = false
	w.ticks = 0
	w.foodEaten = 0
}

// SetMoveInterval changes the movement tick interval.
func (w *World) SetMoveInterval(d time.Duration) {
	w.moveTimer.SetInterval(d)
}

// MoveInterval returns the current movement tick interval.
func (w *World) MoveInterval() time.Duration {
	return w.moveTimer.Interval()
}

func (w *World) headEntity() (*Entity, bool) {
	h, ok := w.body.Head()
	if !ok {
		return nil, false
	}
	return w.arena.Get(h)
}

// positions returns the position of every segment in body order.
func (w *World) positions() []Position {
	out := make([]Position, 0, w.body.Len())
	for i := 0; i < w.body.Len(); i++ {
		if e, ok := w.arena.Get(w.body.At(i)); ok {
			out = append(out, e.Pos)
		}
	}
	return out
}
