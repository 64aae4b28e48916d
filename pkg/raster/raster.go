// Package raster maps a fractal point cloud onto a fixed-size RGB canvas.
//
// The cloud's bounding box is scaled uniformly to fill 90% of the canvas along
// its tighter axis and centred along both. Fractal +y points up the canvas.
// Each point paints its pixel green on a white background; there is no
// blending, so overlapping points leave the pixel green.
package raster

import (
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/willbeason/ifs-fractal/pkg/errors"
	"github.com/willbeason/ifs-fractal/pkg/geometry"
	"github.com/willbeason/ifs-fractal/pkg/ifs"
)

// Fill is the fraction of the canvas the fractal may occupy along its tighter
// axis.
const Fill = 0.9

// Mapping converts fractal coordinates to pixel coordinates.
type Mapping struct {
	Box           geometry.Box
	Width, Height int

	// Scale is pixels per fractal unit.
	Scale float64

	// OffsetX and OffsetY are the margins, in whole pixels, left of and
	// below the scaled bounding box.
	OffsetX, OffsetY int
}

// NewMapping fits box onto a width×height canvas.
func NewMapping(box geometry.Box, width, height int) (Mapping, error) {
	if width <= 0 || height <= 0 {
		return Mapping{}, errors.New(errors.ErrCodeInvalidCanvas, "canvas %dx%d, want positive dimensions", width, height)
	}
	if box.Degenerate() {
		return Mapping{}, errors.New(errors.ErrCodeDegenerateFractal,
			"bounding box %gx%g has no area", box.Width(), box.Height())
	}

	scale := math.Min(float64(height)/box.Height(), float64(width)/box.Width()) * Fill
	if !(scale > 0) || math.IsInf(scale, 0) {
		return Mapping{}, errors.New(errors.ErrCodeDegenerateFractal,
			"bounding box %+v cannot be scaled onto the canvas", box)
	}

	return Mapping{
		Box:     box,
		Width:   width,
		Height:  height,
		Scale:   scale,
		OffsetX: int(math.Floor((float64(width) - box.Width()*scale) / 2)),
		OffsetY: int(math.Floor((float64(height) - box.Height()*scale) / 2)),
	}, nil
}

// Pixel returns the column and row xy lands on. Rows count down from the top
// of the canvas. Points that land outside the canvas return
// ErrCodePointOutOfCanvas.
func (m Mapping) Pixel(xy geometry.XY) (col, row int, err error) {
	fx := math.Floor((xy.X - m.Box.Xmin) * m.Scale)
	fy := math.Floor((xy.Y - m.Box.Ymin) * m.Scale)

	if math.IsNaN(fx) || math.IsNaN(fy) || math.Abs(fx) > math.MaxInt32 || math.Abs(fy) > math.MaxInt32 {
		return 0, 0, errors.New(errors.ErrCodePointOutOfCanvas, "point %+v cannot be mapped", xy)
	}

	col = int(fx) + m.OffsetX
	row = m.Height - int(fy) - m.OffsetY

	if col < 0 || col >= m.Width || row < 0 || row >= m.Height {
		return col, row, errors.New(errors.ErrCodePointOutOfCanvas,
			"point %+v maps to (%d, %d) outside %dx%d", xy, col, row, m.Width, m.Height)
	}

	return col, row, nil
}

// Stats describes a finished rasterization.
type Stats struct {
	// Plotted is the number of points written to the buffer.
	Plotted int

	// Skipped is the number of points that mapped outside the canvas.
	Skipped int
}

type Option func(*options)

type options struct {
	workers int
}

// WithWorkers maps points to pixels on n goroutines. Painting stays
// sequential. Values below 2 map on the calling goroutine.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// Rasterize paints every point of cloud onto a new width×height buffer,
// skipping points that fall outside it.
func Rasterize(cloud *ifs.Cloud, width, height int, opts ...Option) (*Buffer, Stats, error) {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	m, err := NewMapping(cloud.Bounds, width, height)
	if err != nil {
		return nil, Stats{}, err
	}

	buf, err := NewBuffer(width, height)
	if err != nil {
		return nil, Stats{}, err
	}

	offsets := make([]int, len(cloud.Points))
	if err := mapPoints(m, buf, cloud.Points, offsets, o.workers); err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{}
	for _, off := range offsets {
		if off < 0 {
			stats.Skipped++
			continue
		}
		copy(buf.Pix[off:off+channels], foreground[:])
		stats.Plotted++
	}

	return buf, stats, nil
}

// mapPoints fills offsets[i] with the buffer offset of points[i], or -1 if it is
// off the canvas. Each worker owns a contiguous range of offsets.
func mapPoints(m Mapping, buf *Buffer, points []geometry.XY, offsets []int, workers int) error {
	if workers < 2 {
		mapRange(m, buf, points, offsets)
		return nil
	}

	chunk := (len(points) + workers - 1) / workers
	g := errgroup.Group{}
	for lo := 0; lo < len(points); lo += chunk {
		lo, hi := lo, min(lo+chunk, len(points))
		g.Go(func() error {
			mapRange(m, buf, points[lo:hi], offsets[lo:hi])
			return nil
		})
	}

	return g.Wait()
}

func mapRange(m Mapping, buf *Buffer, points []geometry.XY, offsets []int) {
	for i, xy := range points {
		col, row, err := m.Pixel(xy)
		if err != nil {
			offsets[i] = -1
			continue
		}
		offsets[i] = buf.offset(col, row)
	}
}
