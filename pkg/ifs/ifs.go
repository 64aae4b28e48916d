// Package ifs generates the point cloud of an iterated function system.
//
// Generation is a Markov chain: each point is the image of the previous one
// under a transform picked at random, so points are produced strictly in
// order. The chain is expressed as a fold over State with Step; Generate runs
// the fold n times and records every visited point.
package ifs

import (
	"math/rand"

	"github.com/willbeason/ifs-fractal/pkg/errors"
	"github.com/willbeason/ifs-fractal/pkg/geometry"
	"github.com/willbeason/ifs-fractal/pkg/transforms"
)

// Source draws uniform values on [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSeeded returns a deterministic Source.
func NewSeeded(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// State is everything carried from one point to the next.
type State struct {
	Current geometry.XY

	// Transform is the index of the transform that produced Current, or -1 for
	// the starting state.
	Transform int
}

// Start returns the state a run begins from.
func Start(xy geometry.XY) State {
	return State{Current: xy, Transform: -1}
}

// Step draws once from src, applies the selected transform of set to s.Current
// and returns the resulting state.
func Step(set *transforms.ProbabilisticTransform, s State, src Source) State {
	next, i := set.Next(s.Current, src.Float64())
	return State{Current: next, Transform: i}
}

// Cloud is the output of a generation run.
type Cloud struct {
	// Points in generation order.
	Points []geometry.XY

	// Bounds contains every point in Points.
	Bounds geometry.Box

	// Counts[i] is how many points transform i produced.
	Counts []int
}

type Option func(*options)

type options struct {
	start geometry.XY
}

// WithStart sets the point the chain starts from. The default is the origin.
func WithStart(xy geometry.XY) Option {
	return func(o *options) { o.start = xy }
}

// Generate produces n points of set's attractor, drawing one value from src per
// point, and computes their bounding box once all points exist.
func Generate(set *transforms.ProbabilisticTransform, n int, src Source, opts ...Option) (*Cloud, error) {
	if n <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidPointCount, "point count %d, want at least 1", n)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	cloud := &Cloud{
		Points: make([]geometry.XY, 0, n),
		Counts: make([]int, set.Len()),
	}

	s := Start(o.start)
	for p := 0; p < n; p++ {
		s = Step(set, s, src)
		cloud.Points = append(cloud.Points, s.Current)
		cloud.Counts[s.Transform]++
	}

	cloud.Bounds, _ = geometry.BoundsOf(cloud.Points)

	return cloud, nil
}
