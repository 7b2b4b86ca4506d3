package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 5, 4, 3)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{10, 5, true},
		{13, 7, true},
		{14, 5, false}, // right edge is exclusive
		{10, 8, false}, // bottom edge is exclusive
		{9, 5, false},
		{10, 4, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 4)
	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 7 {
		t.Errorf("Bottom() = %d, expected 7", r.Bottom())
	}
}

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name           string
		w, h           int
		outerW, outerH int
		expected       Rect
	}{
		{"even fit", 20, 5, 80, 24, Rect{X: 30, Y: 9, W: 20, H: 5}},
		{"odd remainder rounds down", 21, 5, 80, 24, Rect{X: 29, Y: 9, W: 21, H: 5}},
		{"larger than area", 30, 5, 20, 3, Rect{X: -5, Y: -1, W: 30, H: 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CenteredRect(tc.w, tc.h, tc.outerW, tc.outerH)
			if got != tc.expected {
				t.Errorf("CenteredRect = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
