package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/f3rmion/agedash/internal/dashboard"
	"github.com/f3rmion/agedash/internal/dataset"
	"github.com/f3rmion/agedash/internal/filter"
	"github.com/f3rmion/agedash/internal/layout"
	"github.com/f3rmion/agedash/internal/people"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the filtered table and chart summary",
	Long: `Print the rows matching the selected countries and genders, sorted by
country and gender, followed by the bars the chart would draw.

Example:
  agedash show
  agedash show --country US --country FR --gender F`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	addSelectionFlags(showCmd)
}

// addSelectionFlags registers the --country and --gender filters.
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("country", nil, "country to include (repeatable, default all)")
	cmd.Flags().StringSlice("gender", nil, "gender to include: M or F (repeatable, default both)")
}

// selectionFromFlags reads the filter flags of cmd.
func selectionFromFlags(cmd *cobra.Command, tbl people.Table) filter.Selection {
	countries, _ := cmd.Flags().GetStringSlice("country")
	genders, _ := cmd.Flags().GetStringSlice("gender")
	return buildSelection(tbl, countries, genders)
}

// buildSelection turns flag values into a selection. Empty lists select
// everything, matching the dashboard's initial state.
func buildSelection(tbl people.Table, countries, genders []string) filter.Selection {
	sel := dashboard.DefaultSelection(tbl)

	if len(countries) > 0 {
		sel.Countries = make([]string, 0, len(countries))
		for _, c := range countries {
			sel.Countries = append(sel.Countries, strings.TrimSpace(c))
		}
	}
	if len(genders) > 0 {
		sel.Genders = make([]people.Gender, 0, len(genders))
		for _, g := range genders {
			sel.Genders = append(sel.Genders, people.Gender(strings.ToUpper(strings.TrimSpace(g))))
		}
	}

	return sel
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	tbl, err := loadTable(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	res := dashboard.Render(tbl, selectionFromFlags(cmd, tbl))
	return writeSummary(cmd.OutOrStdout(), res)
}

// writeSummary prints the filtered table and the chart's bars.
func writeSummary(w io.Writer, res dashboard.Result) error {
	c := res.Chart

	fmt.Fprintf(w, "%s\n\n", c.Title)
	fmt.Fprintf(w, "Rows: %d\n", res.View.Len())
	fmt.Fprintln(w, dataset.FormatTable(res.View.Rows))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Bars (%s):\n", c.YLabel)
	if len(c.Bars) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, bar := range c.Bars {
		label := strings.ReplaceAll(layout.TickLabel(bar.Record), "\n", " ")
		color := string(bar.Color)
		if color == "" {
			color = "-"
		}
		fmt.Fprintf(w, "  %4g  %-24s %8s  %s\n", bar.X, label, bar.Record.AgeString(), color)
	}
	fmt.Fprintln(w)

	parts := make([]string, len(c.Legend))
	for i, e := range c.Legend {
		parts[i] = fmt.Sprintf("%s=%s", e.Color, e.Label)
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", c.LegendTitle, strings.Join(parts, ", "))
	return err
}
