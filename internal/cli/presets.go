package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/willbeason/ifs-fractal/pkg/transforms"
)

func (c *CLI) presetsCommand() *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in transform sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			rows, err := presetRows(detailed)
			if err != nil {
				return err
			}

			headers := []string{"Preset", "Transforms", "Probabilities"}
			if detailed {
				headers = []string{"Preset", "#", "p", "a", "b", "c", "d", "e", "f"}
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(styleDim).
				Headers(headers...).
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return styleHeader
					}
					if col == 0 {
						return styleHighlight
					}
					return lipgloss.NewStyle()
				})

			_, err = fmt.Fprintln(out, t)
			return err
		},
	}

	cmd.Flags().BoolVar(&detailed, "detailed", false, "show every coefficient")

	return cmd
}

func presetRows(detailed bool) ([][]string, error) {
	var rows [][]string

	for _, p := range transforms.Presets() {
		set, err := p.Set()
		if err != nil {
			return nil, err
		}

		if !detailed {
			probs := ""
			for i := 0; i < set.Len(); i++ {
				if i > 0 {
					probs += " "
				}
				probs += formatFloat(set.Transform(i).Probability)
			}
			rows = append(rows, []string{p.String(), strconv.Itoa(set.Len()), probs})
			continue
		}

		for i := 0; i < set.Len(); i++ {
			tp := set.Transform(i)
			rows = append(rows, []string{
				p.String(), strconv.Itoa(i), formatFloat(tp.Probability),
				formatFloat(tp.A), formatFloat(tp.B), formatFloat(tp.C),
				formatFloat(tp.D), formatFloat(tp.E), formatFloat(tp.F),
			})
		}
	}

	return rows, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
