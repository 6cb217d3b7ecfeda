package core

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"edge touching horizontal", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), true},
		{"edge touching vertical", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), true},
		{"corner touching", NewRect(0, 0, 10, 10), NewRect(10, 10, 5, 5), true},
		{"one unit apart horizontal", NewRect(0, 0, 10, 10), NewRect(11, 0, 10, 10), false},
		{"one unit apart vertical", NewRect(0, 0, 10, 10), NewRect(0, 11, 10, 10), false},
		{"ball against paddle face", NewRect(120, 300, 16, 16), NewRect(90, 225, 20, 150), false},
		{"ball on paddle face", NewRect(110, 300, 16, 16), NewRect(90, 225, 20, 150), true},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := Overlaps(tc.b, tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectAt(t *testing.T) {
	r := RectAt(Vec2{X: 3, Y: 4}, Size{W: 20, H: 150})
	if r != NewRect(3, 4, 20, 150) {
		t.Errorf("RectAt() = %+v", r)
	}
	if got := (Size{W: 800, H: 600}).Center(); got != (Vec2{X: 400, Y: 300}) {
		t.Errorf("Size.Center() = %+v, expected (400, 300)", got)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	c := r.Center()
	if c.X != 15 || c.Y != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", c.X, c.Y)
	}
}
