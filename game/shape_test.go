package game

import "testing"

func TestRectRectOverlap(t *testing.T) {
	base := RectShape(10, 10, 20, 20)

	tests := []struct {
		name  string
		other Shape
		want  bool
	}{
		{"Identical", RectShape(10, 10, 20, 20), true},
		{"Partial overlap", RectShape(25, 25, 20, 20), true},
		{"Contained", RectShape(15, 15, 5, 5), true},
		{"Touching right edge", RectShape(30, 10, 20, 20), false},
		{"Touching bottom edge", RectShape(10, 30, 20, 20), false},
		{"Touching corner", RectShape(30, 30, 20, 20), false},
		{"Disjoint on x", RectShape(50, 10, 20, 20), false},
		{"Disjoint on y", RectShape(10, 50, 20, 20), false},
		{"Overlap x only", RectShape(15, 40, 20, 20), false},
		{"Overlap y only", RectShape(40, 15, 20, 20), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(base, tt.other); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", base, tt.other, got, tt.want)
			}
			// The test must be symmetric.
			if got := Intersects(tt.other, base); got != tt.want {
				t.Errorf("Intersects reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircleCircleOverlap(t *testing.T) {
	base := CircleShape(0, 0, 10)

	tests := []struct {
		name  string
		other Shape
		want  bool
	}{
		{"Concentric", CircleShape(0, 0, 5), true},
		{"Overlapping", CircleShape(12, 0, 5), true},
		{"Touching", CircleShape(15, 0, 5), false},
		{"Disjoint", CircleShape(30, 0, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(base, tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircleRectOverlap(t *testing.T) {
	rect := RectShape(10, 10, 20, 20)

	tests := []struct {
		name   string
		circle Shape
		want   bool
	}{
		{"Center inside", CircleShape(20, 20, 3), true},
		{"Overlapping edge", CircleShape(5, 20, 6), true},
		{"Touching edge", CircleShape(5, 20, 5), false},
		{"Near corner outside", CircleShape(4, 4, 5), false},
		{"Near corner inside", CircleShape(6, 6, 6), true},
		{"Far away", CircleShape(100, 100, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.circle, rect); got != tt.want {
				t.Errorf("circle-rect = %v, want %v", got, tt.want)
			}
			if got := Intersects(rect, tt.circle); got != tt.want {
				t.Errorf("rect-circle = %v, want %v", got, tt.want)
			}
		})
	}
}
