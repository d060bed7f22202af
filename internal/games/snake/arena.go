package snake

// Kind identifies what an arena record represents.
type Kind uint8

const (
	KindHead Kind = iota + 1
	KindSegment
	KindFood
)

func (k Kind) String() string {
	switch k {
	case KindHead:
		return "head"
	case KindSegment:
		return "segment"
	case KindFood:
		return "food"
	default:
		return "unknown"
	}
}

// Handle is a generational reference to an arena record.
// The zero Handle never resolves.
type Handle struct {
	index uint32
	gen   uint32
}

// Entity is one arena record.
type Entity struct {
	Kind Kind
	Pos  Position
	Dir  Direction // Only meaningful for heads
}

type slot struct {
	gen   uint32
	alive bool
	ent   Entity
}

// Arena stores entities in reusable slots. Despawning a record bumps its
// slot generation, so handles to it stop resolving even after the slot is
// reused.
type Arena struct {
	slots []slot
	free  []uint32
	live  int
}

// Spawn stores e and returns its handle.
func (a *Arena) Spawn(e Entity) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot{gen: 1})
		idx = uint32(len(a.slots) - 1)
	}

	s := &a.slots[idx]
	s.alive = true
	s.ent = e
	a.live++
	return Handle{index: idx, gen: s.gen}
}

// Despawn removes the record behind h. It reports false for stale handles.
func (a *Arena) Despawn(h Handle) bool {
	s := a.slot(h)
	if s == nil {
		return false
	}
	s.alive = false
	s.gen++
	s.ent = Entity{}
	a.free = append(a.free, h.index)
	a.live--
	return true
}

// Get resolves h. The returned pointer is valid until the next Spawn.
func (a *Arena) Get(h Handle) (*Entity, bool) {
	s := a.slot(h)
	if s == nil {
		return nil, false
	}
	return &s.ent, true
}

// Len returns the number of live records.
func (a *Arena) Len() int {
	return a.live
}

// Count returns the number of live records of the given kind.
func (a *Arena) Count(kind Kind) int {
	n := 0
	for i := range a.slots {
		if a.slots[i].alive && a.slots[i].ent.Kind == kind {
			n++
		}
	}
	return n
}

// Handles returns handles to every live record of the given kind in slot order.
func (a *Arena) Handles(kind Kind) []Handle {
	var out []Handle
	for i := range a.slots {
		s := &a.slots[i]
		if s.alive && s.ent.Kind == kind {
			out = append(out, Handle{index: uint32(i), gen: s.gen})
		}
	}
	return out
}

// Occupied reports whether any live record sits at p.
func (a *Arena) Occupied(p Position) bool {
	for i := range a.slots {
		if a.slots[i].alive && a.slots[i].ent.Pos == p {
			return true
		}
	}
	return false
}

func (a *Arena) slot(h Handle) *slot {
	if int(h.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.index]
	if !s.alive || s.gen != h.gen {
		return nil
	}
	return s
}
