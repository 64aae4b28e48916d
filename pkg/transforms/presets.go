package transforms

import (
	"fmt"
	"strings"

	"github.com/willbeason/ifs-fractal/pkg/errors"
)

// Preset is one of the built-in transform sets.
type Preset int

const (
	Fern Preset = iota
	Tree
	Sierpinsky
	Custom
)

var presetNames = [...]string{
	Fern:       "fern",
	Tree:       "tree",
	Sierpinsky: "sierpinsky",
	Custom:     "custom",
}

// columns is an IFS table in published form: one slice per coefficient.
type columns struct {
	p, a, b, c, d, e, f []float64
}

var presetTables = [...]columns{
	// Barnsley's fern.
	Fern: {
		p: []float64{0.01, 0.85, 0.07, 0.07},
		a: []float64{0, 0.85, 0.20, -0.15},
		b: []float64{0, 0.04, -0.26, 0.28},
		c: []float64{0, -0.04, 0.23, 0.26},
		d: []float64{0.16, 0.85, 0.22, 0.24},
		e: []float64{0, 0, 0, 0},
		f: []float64{0, 1.6, 1.6, 0.44},
	},
	Tree: {
		p: []float64{0.05, 0.4, 0.4, 0.15},
		a: []float64{0, 0.42, 0.42, 0.1},
		b: []float64{0, -0.42, 0.42, 0},
		c: []float64{0, 0.42, -0.42, 0},
		d: []float64{0.5, 0.42, 0.42, 0.1},
		e: []float64{0, 0, 0, 0},
		f: []float64{0, 0.2, 0.2, 0.2},
	},
	Sierpinsky: {
		p: []float64{0.33, 0.33, 0.34},
		a: []float64{0.5, 0.5, 0.5},
		b: []float64{0, 0, 0},
		c: []float64{0, 0, 0},
		d: []float64{0.5, 0.5, 0.5},
		e: []float64{1, 1, 50},
		f: []float64{1, 50, 50},
	},
	// A thinner fern variant.
	Custom: {
		p: []float64{0.04, 0.8, 0.08, 0.08},
		a: []float64{0, 0.7, 0.20, -0.2},
		b: []float64{0, 0.035, -0.29, 0.28},
		c: []float64{0, -0.04, 0.23, 0.26},
		d: []float64{0.16, 0.8, 0.22, 0.25},
		e: []float64{0, 0, 0, 0},
		f: []float64{0, 1.6, 1.6, 0.44},
	},
}

// Presets returns every built-in preset in declaration order.
func Presets() []Preset {
	return []Preset{Fern, Tree, Sierpinsky, Custom}
}

// ParsePreset maps a preset name, case-insensitively, to its Preset.
func ParsePreset(name string) (Preset, error) {
	for _, p := range Presets() {
		if strings.EqualFold(name, presetNames[p]) {
			return p, nil
		}
	}

	return 0, errors.New(errors.ErrCodeUnknownPreset,
		"unknown preset %q (valid: %s)", name, strings.Join(presetNames[:], ", "))
}

func (p Preset) String() string {
	if p < 0 || int(p) >= len(presetNames) {
		return fmt.Sprintf("Preset(%d)", int(p))
	}
	return presetNames[p]
}

// Set builds the transform set for p.
func (p Preset) Set() (*ProbabilisticTransform, error) {
	if p < 0 || int(p) >= len(presetTables) {
		return nil, errors.New(errors.ErrCodeUnknownPreset, "unknown preset %d", int(p))
	}

	t := presetTables[p]
	return NewSetFromColumns(t.p, t.a, t.b, t.c, t.d, t.e, t.f)
}
