package snake

// Replay drives w through a scripted session of ticks movement ticks. Before
// tick i it steers with ParseDirection(moves[i]); '.' or a missing letter
// keeps the latched direction. Each step advances the world by exactly one
// movement interval, so the food gate runs on simulated time. after, when
// non-nil, sees every step. Replay returns the runs that terminated.
func Replay(w *World, moves string, ticks int, after func(tick int, res TickResult)) []RunEnd {
	script := []rune(moves)
	if ticks <= 0 {
		ticks = len(script)
	}

	var ends []RunEnd
	for i := 0; i < ticks; i++ {
		if i < len(script) {
			w.Steer(ParseDirection(script[i]))
		}
		res := w.Update(w.MoveInterval())
		if res.Ended != nil {
			ends = append(ends, *res.Ended)
		}
		if after != nil {
			after(i+1, res)
		}
	}
	return ends
}
