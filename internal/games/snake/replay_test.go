package snake

import (
	"reflect"
	"testing"
)

func TestReplay(t *testing.T) {
	tests := []struct {
		name     string
		moves    string
		ticks    int
		wantBody []Position
		wantEnds []Cause
	}{
		{"straight up", "UUU", 0, []Position{{3, 6}, {3, 5}}, nil},
		{"latched direction", "R", 3, []Position{{6, 3}, {5, 3}}, nil},
		{"into the left wall", "LLLL", 0, []Position{{3, 3}, {3, 2}}, []Cause{CauseWall}},
		{"reverse into body", "UD", 0, []Position{{3, 3}, {3, 2}}, []Cause{CauseSelf}},
		{"idle script", "...", 0, []Position{{3, 3}, {3, 2}}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			s.MaxFood = 0
			w := NewWorld(s, 1)

			ends := Replay(w, tc.moves, tc.ticks, nil)

			if got := w.Body(); !reflect.DeepEqual(got, tc.wantBody) {
				t.Errorf("body = %v, want %v", got, tc.wantBody)
			}
			var causes []Cause
			for _, e := range ends {
				causes = append(causes, e.Cause)
			}
			if !reflect.DeepEqual(causes, tc.wantEnds) {
				t.Errorf("ends = %v, want %v", causes, tc.wantEnds)
			}
		})
	}
}

func TestReplayCallbackAndFood(t *testing.T) {
	w := NewWorld(DefaultSettings(), 9)

	calls := 0
	spawned := 0
	Replay(w, "R", 5, func(tick int, res TickResult) {
		calls++
		if tick != calls {
			t.Errorf("tick = %d, want %d", tick, calls)
		}
		if res.Spawned {
			spawned++
		}
	})

	if calls != 5 {
		t.Errorf("callback ran %d times, want 5", calls)
	}
	// Five 200ms steps add up to one food interval.
	if spawned != 1 {
		t.Errorf("spawned %d food, want 1", spawned)
	}
}
