package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionUp) {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Has(ActionUp) should be true after Set")
	}
	if f.Has(ActionDown) {
		t.Error("Has(ActionDown) should be false")
	}

	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should report no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameLastOf(t *testing.T) {
	dirs := []Action{ActionUp, ActionDown, ActionLeft, ActionRight}

	tests := []struct {
		name    string
		pressed []Action
		want    Action
	}{
		{"nothing", nil, ActionNone},
		{"single", []Action{ActionLeft}, ActionLeft},
		{"latest wins", []Action{ActionUp, ActionRight}, ActionRight},
		{"ignores non candidates", []Action{ActionDown, ActionPause}, ActionDown},
		{"repeat counts", []Action{ActionUp, ActionLeft, ActionUp}, ActionUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.pressed {
				f.Set(a)
			}
			if got := f.LastOf(dirs...); got != tc.want {
				t.Errorf("LastOf() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" {
		t.Errorf("ActionLeft.String() = %q", ActionLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
