// Package cli implements the ifs command-line interface.
//
// The render command generates an IFS point cloud from a preset or a TOML
// transform table, rasterizes it and writes the image. The presets command
// lists the built-in transform sets. All commands accept --verbose (-v) for
// debug logging through charmbracelet/log.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/willbeason/ifs-fractal/pkg/buildinfo"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "ifs",
		Short:        "ifs draws iterated function system fractals",
		Long:         `ifs generates the attractor of an iterated function system, such as Barnsley's fern, by the chaos game and saves it as an image.`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.presetsCommand())

	return root
}
