package geometry

import "testing"

func TestBoundsOf(t *testing.T) {
	points := []XY{{X: 1, Y: -2}, {X: -3, Y: 4}, {X: 0.5, Y: 0.5}}

	box, ok := BoundsOf(points)
	if !ok {
		t.Fatal("BoundsOf() ok = false, want true")
	}

	want := Box{Xmin: -3, Xmax: 1, Ymin: -2, Ymax: 4}
	if box != want {
		t.Errorf("BoundsOf() = %+v, want %+v", box, want)
	}

	for _, p := range points {
		if !box.Contains(p) {
			t.Errorf("box %+v does not contain %+v", box, p)
		}
	}
}

func TestBoundsOf_Empty(t *testing.T) {
	if _, ok := BoundsOf(nil); ok {
		t.Error("BoundsOf(nil) ok = true, want false")
	}
}

func TestBox_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		box  Box
		want bool
	}{
		{"square", Box{Xmin: 0, Xmax: 1, Ymin: 0, Ymax: 1}, false},
		{"zero width", Box{Xmin: 2, Xmax: 2, Ymin: 0, Ymax: 1}, true},
		{"zero height", Box{Xmin: 0, Xmax: 1, Ymin: 3, Ymax: 3}, true},
		{"single point", Box{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.Degenerate(); got != tt.want {
				t.Errorf("Degenerate() = %v, want %v", got, tt.want)
			}
		})
	}
}
