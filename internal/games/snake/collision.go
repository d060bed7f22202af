package snake

// detectCollisions raises GameOverEvent when the head left the arena or
// landed on a cell a trailing segment occupied before this tick's move.
func (w *World) detectCollisions(snapshot []Position) {
	head, ok := w.headEntity()
	if !ok {
		return
	}

	if !w.settings.Grid.Contains(head.Pos) {
		w.events.raiseGameOver(GameOverEvent{Cause: CauseWall, At: head.Pos})
	}

	for _, p := range snapshot[1:] {
		if p == head.Pos {
			w.events.raiseGameOver(GameOverEvent{Cause: CauseSelf, At: head.Pos})
			break
		}
	}
}

// consumeFood destroys every food record sharing a cell with a head and
// raises one GrowthEvent per meal.
func (w *World) consumeFood() {
	for _, hh := range w.arena.Handles(KindHead) {
		head, ok := w.arena.Get(hh)
		if !ok {
			continue
		}
		at := head.Pos
		for _, fh := range w.arena.Handles(KindFood) {
			food, ok := w.arena.Get(fh)
			if !ok || food.Pos != at {
				continue
			}
			w.arena.Despawn(fh)
			w.events.raiseGrowth(GrowthEvent{Head: hh, At: at})
		}
	}
}
