package transforms

import (
	"math"

	"github.com/willbeason/ifs-fractal/pkg/geometry"
)

// Affine is the map (x, y) -> (A*x + B*y + E, C*x + D*y + F).
type Affine struct {
	A, B, C, D, E, F float64
}

func (l Affine) Next(xy geometry.XY) geometry.XY {
	return geometry.XY{
		X: l.A*xy.X + l.B*xy.Y + l.E,
		Y: l.C*xy.X + l.D*xy.Y + l.F,
	}
}

func (l Affine) finite() bool {
	for _, v := range [...]float64{l.A, l.B, l.C, l.D, l.E, l.F} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

var _ Transform = Affine{}
