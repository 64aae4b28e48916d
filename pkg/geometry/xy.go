package geometry

import "math"

// XY is a point in fractal space.
type XY struct {
	X, Y float64
}

// Box is an axis-aligned bounding box.
type Box struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// BoundsOf returns the smallest Box containing every point.
// The second return is false if points is empty.
func BoundsOf(points []XY) (Box, bool) {
	if len(points) == 0 {
		return Box{}, false
	}

	box := Box{
		Xmin: math.Inf(1),
		Xmax: math.Inf(-1),
		Ymin: math.Inf(1),
		Ymax: math.Inf(-1),
	}
	for _, p := range points {
		box.Xmin = math.Min(box.Xmin, p.X)
		box.Xmax = math.Max(box.Xmax, p.X)
		box.Ymin = math.Min(box.Ymin, p.Y)
		box.Ymax = math.Max(box.Ymax, p.Y)
	}

	return box, true
}

func (b Box) Width() float64 {
	return b.Xmax - b.Xmin
}

func (b Box) Height() float64 {
	return b.Ymax - b.Ymin
}

// Degenerate is true if the box has no extent along either axis, in which case
// it cannot be scaled onto a canvas.
func (b Box) Degenerate() bool {
	return !(b.Width() > 0) || !(b.Height() > 0)
}

func (b Box) Contains(p XY) bool {
	return b.Xmin <= p.X && p.X <= b.Xmax && b.Ymin <= p.Y && p.Y <= b.Ymax
}
