package snake

// Cause names why a run terminated.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall       // Head left the arena
	CauseSelf       // Head moved onto its own body
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "none"
	}
}

// GrowthEvent is raised when a head eats food.
type GrowthEvent struct {
	Head Handle
	At   Position
}

// GameOverEvent is raised on a terminal collision.
type GameOverEvent struct {
	Cause Cause
	At    Position // Head position that triggered the collision
}

// eventQueue holds the one-shot signals raised during a single tick.
// Handlers read only the first queued event of each type; the queue is
// emptied before the tick returns.
type eventQueue struct {
	growth   []GrowthEvent
	gameOver []GameOverEvent
}

func (q *eventQueue) raiseGrowth(e GrowthEvent) {
	q.growth = append(q.growth, e)
}

func (q *eventQueue) raiseGameOver(e GameOverEvent) {
	q.gameOver = append(q.gameOver, e)
}

func (q *eventQueue) firstGrowth() (GrowthEvent, bool) {
	if len(q.growth) == 0 {
		return GrowthEvent{}, false
	}
	return q.growth[0], true
}

func (q *eventQueue) firstGameOver() (GameOverEvent, bool) {
	if len(q.gameOver) == 0 {
		return GameOverEvent{}, false
	}
	return q.gameOver[0], true
}

func (q *eventQueue) clear() {
	q.growth = q.growth[:0]
	q.gameOver = q.gameOver[:0]
}

func (q *eventQueue) pending() int {
	return len(q.growth) + len(q.gameOver)
}
