package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/ifs-fractal/pkg/config"
	"github.com/willbeason/ifs-fractal/pkg/ifs"
	"github.com/willbeason/ifs-fractal/pkg/raster"
	"github.com/willbeason/ifs-fractal/pkg/sink"
)

// renderOpts holds the render command's flags. Flags left unset fall back to
// the config file, then to config.Default.
type renderOpts struct {
	configPath string
	preset     string
	points     int
	width      int
	height     int
	seed       int64
	workers    int
	output     string
}

func (c *CLI) renderCommand() *cobra.Command {
	def := config.Default()
	opts := renderOpts{
		preset:  def.Preset,
		points:  def.Points,
		width:   def.Width,
		height:  def.Height,
		workers: def.Workers,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Generate a fractal and save it as an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, &opts)
			if err != nil {
				return err
			}
			return c.runRender(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", opts.preset, "transform set: fern, tree, sierpinsky, custom")
	cmd.Flags().IntVarP(&opts.points, "points", "n", opts.points, "number of points to generate")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "image width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "image height in pixels")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (default: seeded from the clock)")
	cmd.Flags().IntVar(&opts.workers, "workers", opts.workers, "goroutines used to map points to pixels")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output image (.png, .bmp, .tif); default <preset>.png")

	return cmd
}

// resolveConfig layers explicitly set flags over the config file.
func resolveConfig(cmd *cobra.Command, opts *renderOpts) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("preset") {
		cfg.Preset = opts.preset
		cfg.Transforms = nil
	}
	if flags.Changed("points") {
		cfg.Points = opts.points
	}
	if flags.Changed("width") {
		cfg.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Height = opts.height
	}
	if flags.Changed("seed") {
		seed := opts.seed
		cfg.Seed = &seed
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}

	return cfg, nil
}

func (c *CLI) runRender(out io.Writer, cfg config.Config) error {
	logger := c.Logger

	set, err := cfg.TransformSet()
	if err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	logger.Debug("transform set", "name", cfg.Name(), "transforms", set.Len(), "seed", seed)

	p := newProgress(logger)
	cloud, err := ifs.Generate(set, cfg.Points, ifs.NewSeeded(seed))
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Generated %d points", len(cloud.Points)))

	b := cloud.Bounds
	logger.Debug("bounding box", "xmin", b.Xmin, "xmax", b.Xmax, "ymin", b.Ymin, "ymax", b.Ymax)
	for i, n := range cloud.Counts {
		logger.Debug("transform usage", "transform", i, "points", n)
	}

	p = newProgress(logger)
	buf, stats, err := raster.Rasterize(cloud, cfg.Width, cfg.Height, raster.WithWorkers(cfg.Workers))
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rasterized %dx%d", cfg.Width, cfg.Height))

	if stats.Skipped > 0 {
		logger.Warn("points outside canvas skipped", "skipped", stats.Skipped)
	}

	output := cfg.Output
	if output == "" {
		output = cfg.Name() + ".png"
	}
	if err := sink.Save(output, buf); err != nil {
		return err
	}

	printSuccess(out, "Wrote %s", styleHighlight.Render(output))
	printDetail(out, "%s, %d points, seed %d", cfg.Name(), stats.Plotted, seed)
	if stats.Skipped > 0 {
		printWarning(out, "%d points fell outside the canvas", stats.Skipped)
	}

	return nil
}
