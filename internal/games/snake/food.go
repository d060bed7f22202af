package snake

// spawnFood places one food record on a random empty in-bounds cell. It
// does nothing while MaxFood records are already alive or when the arena
// has no free cell.
func (w *World) spawnFood() (Position, bool) {
	if w.arena.Count(KindFood) >= w.settings.MaxFood {
		return Position{}, false
	}

	grid := w.settings.Grid
	empty := make([]Position, 0, grid.Cells())
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := Position{X: x, Y: y}
			if !w.arena.Occupied(p) {
				empty = append(empty, p)
			}
		}
	}
	if len(empty) == 0 {
		return Position{}, false
	}

	p := empty[w.rng.Intn(len(empty))]
	w.arena.Spawn(Entity{Kind: KindFood, Pos: p})
	return p, true
}
