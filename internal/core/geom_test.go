package core

import "testing"

func TestRectIntersects(t *testing.T) {
	platform := NewRect(100, 500, 100, 20)

	tests := []struct {
		name string
		box  Rect
		want bool
	}{
		{"apple inside platform", NewRect(140, 505, 20, 20), true},
		{"apple resting on top", NewRect(140, 480, 20, 20), false},
		{"apple just below", NewRect(140, 520, 20, 20), false},
		{"touching left edge", NewRect(80, 505, 20, 20), false},
		{"touching right edge", NewRect(200, 505, 20, 20), false},
		{"sub-unit overlap", NewRect(199.5, 519.5, 20, 20), true},
		{"player wider than platform", NewRect(50, 490, 200, 50), true},
		{"far above", NewRect(140, -100, 20, 20), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.box.Intersects(platform); got != tc.want {
				t.Errorf("Intersects() = %v, want %v", got, tc.want)
			}
			if got := platform.Intersects(tc.box); got != tc.want {
				t.Errorf("Intersects() reversed = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	player := NewRect(375, 530, 50, 50)

	if player.Right() != 425 {
		t.Errorf("Right() = %v, want 425", player.Right())
	}
	if player.Bottom() != 580 {
		t.Errorf("Bottom() = %v, want 580", player.Bottom())
	}
	if cx, cy := player.Center(); cx != 400 || cy != 555 {
		t.Errorf("Center() = (%v, %v), want (400, 555)", cx, cy)
	}
}

func TestRectSpansOverlap(t *testing.T) {
	ledge := NewRect(100, 0, 100, 20)

	tests := []struct {
		name string
		box  Rect
		want bool
	}{
		{"far below but same column", NewRect(150, 400, 50, 50), true},
		{"touching right edge", NewRect(200, 0, 50, 50), false},
		{"touching left edge", NewRect(50, 0, 50, 50), false},
		{"one unit in", NewRect(199, 0, 50, 50), true},
	}
	for _, tc := range tests {
		if got := ledge.SpansOverlap(tc.box); got != tc.want {
			t.Errorf("%s: SpansOverlap() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, want float64
	}{
		{5.5, 0, 750, 5.5},
		{-3, 0, 750, 0},
		{760, 0, 750, 750},
		{7, 3, 1, 3}, // inverted bounds resolve to lo
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}
