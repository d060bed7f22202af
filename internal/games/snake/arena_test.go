package snake

import "testing"

func TestArenaZeroHandleNeverResolves(t *testing.T) {
	var a Arena
	a.Spawn(Entity{Kind: KindFood, Pos: Position{X: 1, Y: 1}})

	if _, ok := a.Get(Handle{}); ok {
		t.Error("zero handle resolved")
	}
	if a.Despawn(Handle{}) {
		t.Error("zero handle despawned a record")
	}
}

func TestArenaSpawnGetDespawn(t *testing.T) {
	var a Arena
	h := a.Spawn(Entity{Kind: KindHead, Pos: Position{X: 2, Y: 3}, Dir: DirUp})

	e, ok := a.Get(h)
	if !ok {
		t.Fatal("fresh handle did not resolve")
	}
	if e.Kind != KindHead || e.Pos != (Position{X: 2, Y: 3}) || e.Dir != DirUp {
		t.Errorf("unexpected entity %+v", *e)
	}

	e.Pos = Position{X: 4, Y: 4}
	if got, _ := a.Get(h); got.Pos != (Position{X: 4, Y: 4}) {
		t.Error("write through Get pointer was lost")
	}

	if !a.Despawn(h) {
		t.Fatal("Despawn of live handle failed")
	}
	if _, ok := a.Get(h); ok {
		t.Error("despawned handle still resolves")
	}
	if a.Despawn(h) {
		t.Error("double Despawn succeeded")
	}
	if a.Len() != 0 {
		t.Errorf("Len = %d, want 0", a.Len())
	}
}

func TestArenaReusedSlotInvalidatesStaleHandle(t *testing.T) {
	var a Arena
	old := a.Spawn(Entity{Kind: KindFood})
	a.Despawn(old)

	fresh := a.Spawn(Entity{Kind: KindSegment})
	if fresh.index != old.index {
		t.Fatalf("expected slot reuse, got index %d and %d", old.index, fresh.index)
	}
	if _, ok := a.Get(old); ok {
		t.Error("stale handle resolved to the reused slot")
	}
	if e, ok := a.Get(fresh); !ok || e.Kind != KindSegment {
		t.Error("fresh handle did not resolve to the new record")
	}
}

func TestArenaQueries(t *testing.T) {
	var a Arena
	a.Spawn(Entity{Kind: KindHead, Pos: Position{X: 0, Y: 0}})
	f1 := a.Spawn(Entity{Kind: KindFood, Pos: Position{X: 5, Y: 5}})
	a.Spawn(Entity{Kind: KindSegment, Pos: Position{X: 0, Y: 1}})
	f2 := a.Spawn(Entity{Kind: KindFood, Pos: Position{X: 6, Y: 6}})

	if got := a.Count(KindFood); got != 2 {
		t.Errorf("Count(food) = %d, want 2", got)
	}
	handles := a.Handles(KindFood)
	if len(handles) != 2 || handles[0] != f1 || handles[1] != f2 {
		t.Errorf("Handles(food) = %v, want [%v %v]", handles, f1, f2)
	}
	if !a.Occupied(Position{X: 0, Y: 1}) {
		t.Error("segment cell not reported occupied")
	}
	if a.Occupied(Position{X: 9, Y: 9}) {
		t.Error("empty cell reported occupied")
	}

	a.Despawn(f1)
	if a.Occupied(Position{X: 5, Y: 5}) {
		t.Error("despawned food cell still occupied")
	}
}
