package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/core"
)

func TestViewportFlipsRows(t *testing.T) {
	grid := Grid{Width: 10, Height: 10}
	vp := newViewport(grid, 80, hudRows)

	tests := []struct {
		p        Position
		wantX    int
		wantY    int
		describe string
	}{
		{Position{0, 0}, 30, 12, "bottom-left"},
		{Position{9, 9}, 48, 3, "top-right"},
		{Position{3, 3}, 36, 9, "start head"},
	}
	for _, tc := range tests {
		x, y := vp.toScreen(tc.p)
		if x != tc.wantX || y != tc.wantY {
			t.Errorf("%s: toScreen(%v) = (%d,%d), want (%d,%d)", tc.describe, tc.p, x, y, tc.wantX, tc.wantY)
		}
	}
}

func TestRenderWorld(t *testing.T) {
	w := arrange(t, DefaultSettings(), DirNone, pos(3, 3), pos(3, 2))
	placeFood(w, pos(0, 0))
	dst := core.NewScreen(80, 24)

	RenderWorld(dst, w, false)

	if got := dst.GetCell(36, 9); got.Rune != glyphHead.left || got.Color != glyphHead.color {
		t.Errorf("head cell = %+v", got)
	}
	if got := dst.Get(36, 10); got != glyphSegment.left {
		t.Errorf("segment cell = %q", got)
	}
	if got := dst.Get(30, 12); got != glyphFood.left {
		t.Errorf("food cell = %q", got)
	}
	if got := dst.Get(29, 2); got != '┌' {
		t.Errorf("frame corner = %q", got)
	}
	if !strings.Contains(dst.Row(0), "Length: 2") {
		t.Errorf("HUD = %q", dst.Row(0))
	}
	if !strings.Contains(dst.Row(14), "Press an arrow key") {
		t.Errorf("idle hint missing, row 14 = %q", dst.Row(14))
	}
}

func TestRenderPausedAndTooSmall(t *testing.T) {
	w := NewWorld(DefaultSettings(), 1)

	dst := core.NewScreen(80, 24)
	RenderWorld(dst, w, true)
	if !strings.Contains(dst.String(), "Paused") {
		t.Error("paused overlay missing")
	}

	small := core.NewScreen(30, 8)
	RenderWorld(small, w, false)
	if !strings.Contains(small.String(), "Window too small") {
		t.Errorf("too-small message missing:\n%s", small.String())
	}
}
