package snake

// move displaces the head one cell and pulls every trailing segment into
// the cell its predecessor held before the tick. It returns the pre-move
// positions in body order, or nil when the snake is idle or missing.
func (w *World) move() []Position {
	head, ok := w.headEntity()
	if !ok || head.Dir == DirNone {
		return nil
	}

	// Segment i follows to where segment i-1 was, so every position is
	// captured before anything is written.
	snapshot := w.positions()

	head.Pos = snapshot[0].Add(head.Dir.Delta())
	for i := 1; i < w.body.Len(); i++ {
		if seg, ok := w.arena.Get(w.body.At(i)); ok {
			seg.Pos = snapshot[i-1]
		}
	}

	w.lastTail = snapshot[len(snapshot)-1]
	w.hasLastTail = true
	return snapshot
}
