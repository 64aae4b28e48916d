package transforms

import (
	"math"

	"github.com/willbeason/ifs-fractal/pkg/errors"
	"github.com/willbeason/ifs-fractal/pkg/geometry"
)

// probabilityTolerance is how far the probabilities of a set may sum away from 1.
const probabilityTolerance = 1e-6

// A Transform iterates a passed point.
type Transform interface {
	Next(geometry.XY) geometry.XY
}

type TransformProbability struct {
	Affine
	Probability float64
}

// ProbabilisticTransform is an immutable, ordered set of affine maps each chosen
// with a fixed probability.
//
// The cumulative table has one more entry than there are transforms. Entry i is
// the summed probability of transforms [0, i), so transform i owns the interval
// [cumulative[i], cumulative[i+1]).
type ProbabilisticTransform struct {
	transforms []TransformProbability
	cumulative []float64
}

// NewSet validates transforms and builds their cumulative probability table.
func NewSet(transforms ...TransformProbability) (*ProbabilisticTransform, error) {
	if len(transforms) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidTransformSet, "no transforms")
	}

	cumulative := make([]float64, len(transforms)+1)
	for i, tp := range transforms {
		if !(tp.Probability > 0 && tp.Probability <= 1) {
			return nil, errors.New(errors.ErrCodeInvalidTransformSet,
				"transform %d: probability %v outside (0, 1]", i, tp.Probability)
		}
		if !tp.finite() {
			return nil, errors.New(errors.ErrCodeInvalidTransformSet,
				"transform %d: non-finite coefficient in %+v", i, tp.Affine)
		}
		cumulative[i+1] = cumulative[i] + tp.Probability
	}

	if total := cumulative[len(transforms)]; math.Abs(total-1.0) > probabilityTolerance {
		return nil, errors.New(errors.ErrCodeInvalidTransformSet,
			"probabilities sum to %v, want 1", total)
	}

	return &ProbabilisticTransform{
		transforms: append([]TransformProbability(nil), transforms...),
		cumulative: cumulative,
	}, nil
}

// NewSetFromColumns builds a set from one column per coefficient, the way IFS
// tables are usually published. All columns must have the same length.
func NewSetFromColumns(probabilities, a, b, c, d, e, f []float64) (*ProbabilisticTransform, error) {
	n := len(probabilities)
	for i, col := range [][]float64{a, b, c, d, e, f} {
		if len(col) != n {
			return nil, errors.New(errors.ErrCodeInvalidTransformSet,
				"column %c has %d entries, want %d", 'a'+i, len(col), n)
		}
	}

	transforms := make([]TransformProbability, n)
	for i := range transforms {
		transforms[i] = TransformProbability{
			Affine:      Affine{A: a[i], B: b[i], C: c[i], D: d[i], E: e[i], F: f[i]},
			Probability: probabilities[i],
		}
	}

	return NewSet(transforms...)
}

func (pt *ProbabilisticTransform) Len() int {
	return len(pt.transforms)
}

// Transform returns the i-th transform of the set.
func (pt *ProbabilisticTransform) Transform(i int) TransformProbability {
	return pt.transforms[i]
}

// Cumulative returns a copy of the cumulative probability table.
func (pt *ProbabilisticTransform) Cumulative() []float64 {
	return append([]float64(nil), pt.cumulative...)
}

// Select returns the index of the transform whose interval contains r, which
// should be uniform on [0, 1).
//
// Intervals are scanned in order and the first match wins, so a draw exactly
// equal to cumulative[i] selects transform i. Draws at or above the final
// table entry, possible when rounding leaves it just below 1, select the last
// transform.
func (pt *ProbabilisticTransform) Select(r float64) int {
	for i := range pt.transforms {
		if pt.cumulative[i] <= r && r < pt.cumulative[i+1] {
			return i
		}
	}

	return len(pt.transforms) - 1
}

// Next applies a transform chosen by r to xy.
func (pt *ProbabilisticTransform) Next(xy geometry.XY, r float64) (geometry.XY, int) {
	i := pt.Select(r)
	return pt.transforms[i].Next(xy), i
}
