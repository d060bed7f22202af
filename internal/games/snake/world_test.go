package snake

import (
	"reflect"
	"testing"
	"time"
)

// arrange replaces the starting snake with the given body, head first.
func arrange(t *testing.T, s Settings, dir Direction, body ...Position) *World {
	t.Helper()
	if len(body) == 0 {
		t.Fatal("arrange needs at least a head")
	}
	w := NewWorld(s, 1)
	w.clear()
	w.body.Append(w.arena.Spawn(Entity{Kind: KindHead, Pos: body[0], Dir: dir}))
	for _, p := range body[1:] {
		w.body.Append(w.arena.Spawn(Entity{Kind: KindSegment, Pos: p}))
	}
	return w
}

func placeFood(w *World, p Position) {
	w.arena.Spawn(Entity{Kind: KindFood, Pos: p})
}

func pos(x, y int) Position {
	return Position{X: x, Y: y}
}

func TestNewWorldStartsIdle(t *testing.T) {
	w := NewWorld(DefaultSettings(), 1)

	if got, want := w.Body(), []Position{pos(3, 3), pos(3, 2)}; !reflect.DeepEqual(got, want) {
		t.Errorf("body = %v, want %v", got, want)
	}
	if w.Direction() != DirNone {
		t.Errorf("direction = %v, want none", w.Direction())
	}
	if len(w.Food()) != 0 {
		t.Errorf("food = %v, want none", w.Food())
	}
}

func TestMoveFollowsLeader(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		body []Position
		want []Position
	}{
		{"up", DirUp, []Position{pos(5, 5), pos(5, 4), pos(5, 3)}, []Position{pos(5, 6), pos(5, 5), pos(5, 4)}},
		{"down", DirDown, []Position{pos(5, 5), pos(5, 6), pos(5, 7)}, []Position{pos(5, 4), pos(5, 5), pos(5, 6)}},
		{"left", DirLeft, []Position{pos(5, 5), pos(6, 5), pos(7, 5)}, []Position{pos(4, 5), pos(5, 5), pos(6, 5)}},
		{"right", DirRight, []Position{pos(5, 5), pos(4, 5), pos(3, 5)}, []Position{pos(6, 5), pos(5, 5), pos(4, 5)}},
		{"turn", DirRight, []Position{pos(5, 5), pos(5, 4), pos(4, 4), pos(3, 4)}, []Position{pos(6, 5), pos(5, 5), pos(5, 4), pos(4, 4)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := arrange(t, DefaultSettings(), tc.dir, tc.body...)
			res := w.Tick()

			if !res.Moved || res.Grew || res.Ended != nil {
				t.Fatalf("unexpected result %+v", res)
			}
			if got := w.Body(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("body = %v, want %v", got, tc.want)
			}
			if got := w.Len(); got != len(tc.body) {
				t.Errorf("length = %d, want %d", got, len(tc.body))
			}
			if tail, ok := w.LastTail(); !ok || tail != tc.body[len(tc.body)-1] {
				t.Errorf("last tail = %v (%v), want %v", tail, ok, tc.body[len(tc.body)-1])
			}
		})
	}
}

func TestIdleSnakeNeverMoves(t *testing.T) {
	w := NewWorld(DefaultSettings(), 1)
	start := w.Body()

	for i := 0; i < 50; i++ {
		if res := w.Tick(); res.Moved {
			t.Fatalf("idle snake moved on tick %d", i)
		}
		w.Update(time.Second)
	}

	if got := w.Body(); !reflect.DeepEqual(got, start) {
		t.Errorf("body = %v, want %v", got, start)
	}
	if w.Ticks() != 0 {
		t.Errorf("ticks = %d, want 0", w.Ticks())
	}
}

func TestSteerIgnoresNone(t *testing.T) {
	w := NewWorld(DefaultSettings(), 1)
	w.Steer(DirLeft)
	w.Steer(DirNone)
	if w.Direction() != DirLeft {
		t.Errorf("direction = %v, want left", w.Direction())
	}
}

func TestWallCollisionResets(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		body []Position
		at   Position
	}{
		{"left edge", DirLeft, []Position{pos(0, 5), pos(1, 5)}, pos(-1, 5)},
		{"right edge", DirRight, []Position{pos(9, 5), pos(8, 5)}, pos(10, 5)},
		{"bottom edge", DirDown, []Position{pos(4, 0), pos(4, 1)}, pos(4, -1)},
		{"top edge", DirUp, []Position{pos(4, 9), pos(4, 8), pos(4, 7)}, pos(4, 10)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := arrange(t, DefaultSettings(), tc.dir, tc.body...)
			placeFood(w, pos(7, 7))

			res := w.Tick()
			if res.Ended == nil {
				t.Fatal("expected run to end")
			}
			if res.Ended.Cause != CauseWall || res.Ended.At != tc.at {
				t.Errorf("ended = %+v, want wall at %v", *res.Ended, tc.at)
			}
			if res.Ended.Length != len(tc.body) {
				t.Errorf("ended length = %d, want %d", res.Ended.Length, len(tc.body))
			}
			assertFreshRun(t, w)
			if len(w.Food()) != 0 {
				t.Errorf("food survived reset: %v", w.Food())
			}
			if w.Runs() != 1 {
				t.Errorf("runs = %d, want 1", w.Runs())
			}
		})
	}
}

func TestSelfCollisionResets(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		body []Position
	}{
		{"reverse into neck", DirDown, []Position{pos(3, 3), pos(3, 2)}},
		{"third segment", DirRight, []Position{pos(5, 5), pos(5, 6), pos(6, 5)}},
		{"tail about to vacate", DirLeft, []Position{pos(5, 5), pos(5, 4), pos(4, 4), pos(4, 5)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := arrange(t, DefaultSettings(), tc.dir, tc.body...)

			res := w.Tick()
			if res.Ended == nil || res.Ended.Cause != CauseSelf {
				t.Fatalf("expected self collision, got %+v", res)
			}
			assertFreshRun(t, w)
		})
	}
}

func TestNoCollisionAlongsideBody(t *testing.T) {
	w := arrange(t, DefaultSettings(), DirUp, pos(5, 5), pos(5, 4), pos(4, 4), pos(4, 5), pos(4, 6))
	if res := w.Tick(); res.Ended != nil {
		t.Fatalf("unexpected termination %+v", *res.Ended)
	}
	if w.Len() != 5 {
		t.Errorf("length = %d, want 5", w.Len())
	}
}

func TestFoodGrowsAtPreMoveTail(t *testing.T) {
	w := arrange(t, DefaultSettings(), DirUp, pos(3, 3), pos(3, 2))
	placeFood(w, pos(3, 4))

	res := w.Tick()
	if !res.Grew {
		t.Fatal("expected growth")
	}
	want := []Position{pos(3, 4), pos(3, 3), pos(3, 2)}
	if got := w.Body(); !reflect.DeepEqual(got, want) {
		t.Errorf("body = %v, want %v", got, want)
	}
	if len(w.Food()) != 0 {
		t.Errorf("food not consumed: %v", w.Food())
	}
	if w.FoodEaten() != 1 {
		t.Errorf("food eaten = %d, want 1", w.FoodEaten())
	}
	if w.events.pending() != 0 {
		t.Errorf("events left in queue: %d", w.events.pending())
	}
}

func TestStackedFoodGrowsOnce(t *testing.T) {
	w := arrange(t, DefaultSettings(), DirRight, pos(3, 3), pos(2, 3))
	placeFood(w, pos(4, 3))
	placeFood(w, pos(4, 3))

	w.Tick()
	if w.Len() != 3 {
		t.Errorf("length = %d, want 3", w.Len())
	}
	if len(w.Food()) != 0 {
		t.Errorf("food left: %v", w.Food())
	}
}

func TestGameOverSupersedesGrowth(t *testing.T) {
	w := arrange(t, DefaultSettings(), DirLeft, pos(5, 5), pos(5, 4), pos(4, 4), pos(4, 5))
	placeFood(w, pos(4, 5))

	res := w.Tick()
	if res.Ended == nil {
		t.Fatal("expected run to end")
	}
	if res.Grew {
		t.Error("growth applied on a terminating tick")
	}
	assertFreshRun(t, w)
}

func TestSequentialScenario(t *testing.T) {
	w := NewWorld(DefaultSettings(), 7)
	w.Steer(DirUp)

	w.Tick()
	if got, want := w.Body(), []Position{pos(3, 4), pos(3, 3)}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after tick 1: body = %v, want %v", got, want)
	}

	placeFood(w, pos(3, 5))
	res := w.Tick()
	if !res.Grew {
		t.Fatal("expected growth on tick 2")
	}
	if got, want := w.Body(), []Position{pos(3, 5), pos(3, 4), pos(3, 3)}; !reflect.DeepEqual(got, want) {
		t.Errorf("after tick 2: body = %v, want %v", got, want)
	}
}

func TestUpdateGatesMovementAndFood(t *testing.T) {
	w := NewWorld(DefaultSettings(), 3)
	w.Steer(DirUp)

	if res := w.Update(199 * time.Millisecond); res.Moved {
		t.Fatal("moved before the interval elapsed")
	}
	if res := w.Update(time.Millisecond); !res.Moved {
		t.Fatal("did not move once the interval elapsed")
	}

	// 200ms so far; the food gate opens at 1s.
	spawnedAt := -1
	for i := 0; i < 4; i++ {
		if res := w.Update(200 * time.Millisecond); res.Spawned {
			spawnedAt = i
		}
	}
	if spawnedAt != 3 {
		t.Errorf("food spawned on update %d, want 3", spawnedAt)
	}
	if len(w.Food()) != 1 {
		t.Errorf("food count = %d, want 1", len(w.Food()))
	}
}

func TestFoodSpawnValidity(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		w := arrange(t, DefaultSettings(), DirNone, pos(3, 3), pos(3, 2), pos(2, 2), pos(1, 2))
		w.rng.Seed(seed)

		for i := 0; i < 50; i++ {
			p, ok := w.spawnFood()
			if !ok {
				t.Fatalf("seed %d: spawn failed", seed)
			}
			if !w.Grid().Contains(p) {
				t.Errorf("seed %d: food out of bounds at %v", seed, p)
			}
			for _, b := range w.Body() {
				if b == p {
					t.Errorf("seed %d: food on snake at %v", seed, p)
				}
			}
			for _, h := range w.arena.Handles(KindFood) {
				w.arena.Despawn(h)
			}
		}
	}
}

func TestFoodSpawnRespectsLimitAndSpace(t *testing.T) {
	w := NewWorld(DefaultSettings(), 1)
	if _, ok := w.spawnFood(); !ok {
		t.Fatal("first spawn failed")
	}
	if _, ok := w.spawnFood(); ok {
		t.Error("spawned beyond max food")
	}

	s := DefaultSettings()
	s.Grid = Grid{Width: 1, Height: 2}
	s.StartHead = pos(0, 1)
	s.StartTail = pos(0, 0)
	full := NewWorld(s, 1)
	if _, ok := full.spawnFood(); ok {
		t.Error("spawned food on a full arena")
	}
}

func TestPreventReversal(t *testing.T) {
	s := DefaultSettings()
	s.PreventReversal = true
	w := NewWorld(s, 1)

	w.Steer(DirDown)
	if w.Direction() != DirNone {
		t.Errorf("reversal accepted: direction = %v", w.Direction())
	}
	w.Steer(DirLeft)
	if w.Direction() != DirLeft {
		t.Errorf("direction = %v, want left", w.Direction())
	}

	loose := NewWorld(DefaultSettings(), 1)
	loose.Steer(DirDown)
	if loose.Direction() != DirDown {
		t.Errorf("without the guard direction = %v, want down", loose.Direction())
	}
}

func TestRestartKeepsRunCount(t *testing.T) {
	w := arrange(t, DefaultSettings(), DirUp, pos(3, 3), pos(3, 2))
	placeFood(w, pos(3, 4))
	w.Tick()

	w.Restart()
	assertFreshRun(t, w)
	if w.Runs() != 0 {
		t.Errorf("runs = %d, want 0", w.Runs())
	}
	if w.LastEnd() != nil {
		t.Error("restart recorded a termination")
	}
}

func TestEntitiesSizes(t *testing.T) {
	w := arrange(t, DefaultSettings(), DirUp, pos(3, 3), pos(3, 2), pos(3, 1))
	placeFood(w, pos(6, 6))

	want := []EntityView{
		{Kind: KindHead, Pos: pos(3, 3), Size: SizeFull},
		{Kind: KindSegment, Pos: pos(3, 2), Size: SizeSmall},
		{Kind: KindSegment, Pos: pos(3, 1), Size: SizeSmall},
		{Kind: KindFood, Pos: pos(6, 6), Size: SizeFull},
	}
	if got := w.Entities(); !reflect.DeepEqual(got, want) {
		t.Errorf("entities = %v, want %v", got, want)
	}
}

func assertFreshRun(t *testing.T, w *World) {
	t.Helper()
	if got, want := w.Body(), []Position{pos(3, 3), pos(3, 2)}; !reflect.DeepEqual(got, want) {
		t.Errorf("body after reset = %v, want %v", got, want)
	}
	if w.Direction() != DirNone {
		t.Errorf("direction after reset = %v, want none", w.Direction())
	}
	if w.FoodEaten() != 0 || w.Ticks() != 0 {
		t.Errorf("counters after reset: food %d ticks %d", w.FoodEaten(), w.Ticks())
	}
	if w.arena.Len() != w.Len()+len(w.Food()) {
		t.Errorf("arena holds %d records, want %d", w.arena.Len(), w.Len()+len(w.Food()))
	}
}
