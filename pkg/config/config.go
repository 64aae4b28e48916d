// Package config loads fractal run settings from TOML.
//
// A config file names a preset or lists its own transforms:
//
//	preset = "tree"
//	points = 200000
//	width = 800
//	height = 600
//	seed = 42
//	output = "tree.png"
//
//	[[transform]]
//	probability = 0.5
//	coefficients = [0.5, 0, 0, 0.5, 0, 0] # a b c d e f
//
// When any [[transform]] table is present it replaces the preset.
package config

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/willbeason/ifs-fractal/pkg/errors"
	"github.com/willbeason/ifs-fractal/pkg/transforms"
)

const (
	DefaultPreset = "fern"
	DefaultPoints = 100000
	DefaultWidth  = 500
	DefaultHeight = 500
)

// Config holds the settings of a single render.
type Config struct {
	Preset  string `toml:"preset"`
	Points  int    `toml:"points"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Workers int    `toml:"workers"`
	Output  string `toml:"output"`

	// Seed makes runs reproducible. Nil means seed from the clock.
	Seed *int64 `toml:"seed"`

	Transforms []Transform `toml:"transform"`
}

// Transform is one row of an explicit IFS table.
type Transform struct {
	Probability float64 `toml:"probability"`

	// Coefficients are a, b, c, d, e, f in that order.
	Coefficients []float64 `toml:"coefficients"`
}

// Default returns the settings used when nothing is configured: 100000 fern
// points on a 500×500 canvas.
func Default() Config {
	return Config{
		Preset:  DefaultPreset,
		Points:  DefaultPoints,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Workers: 1,
	}
}

// Load reads path over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reading %s", path)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig,
			"%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Name labels the transform set the config selects.
func (c Config) Name() string {
	if len(c.Transforms) > 0 {
		return "table"
	}
	return strings.ToLower(c.Preset)
}

// TransformSet builds the configured transform set.
func (c Config) TransformSet() (*transforms.ProbabilisticTransform, error) {
	if len(c.Transforms) == 0 {
		preset, err := transforms.ParsePreset(c.Preset)
		if err != nil {
			return nil, err
		}
		return preset.Set()
	}

	set := make([]transforms.TransformProbability, len(c.Transforms))
	for i, t := range c.Transforms {
		if len(t.Coefficients) != 6 {
			return nil, errors.New(errors.ErrCodeInvalidTransformSet,
				"transform %d has %d coefficients, want 6", i, len(t.Coefficients))
		}
		k := t.Coefficients
		set[i] = transforms.TransformProbability{
			Affine: transforms.Affine{
				A: k[0], B: k[1], C: k[2], D: k[3], E: k[4], F: k[5],
			},
			Probability: t.Probability,
		}
	}

	return transforms.NewSet(set...)
}
