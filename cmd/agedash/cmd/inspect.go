package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/f3rmion/agedash/internal/people"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize the data file",
	Long: `Print the cleaned columns, the number of rows, each country with its
row count, and the gender codes found in the data file.`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	tbl, err := loadTable(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "File: %s\n", cfg.DataFile)
	return writeInspect(cmd.OutOrStdout(), tbl)
}

// writeInspect prints a summary of tbl.
func writeInspect(w io.Writer, tbl people.Table) error {
	fmt.Fprintf(w, "Columns: %s\n", strings.Join(tbl.Columns(), ", "))
	fmt.Fprintf(w, "Rows: %d\n", tbl.Len())

	byCountry := tbl.CountByCountry()
	fmt.Fprintf(w, "\nCountries (%d):\n", len(byCountry))
	for _, c := range tbl.Countries() {
		fmt.Fprintf(w, "  %-20s %d\n", c, byCountry[c])
	}

	byGender := tbl.CountByGender()
	genders := make([]string, 0, len(byGender))
	for g := range byGender {
		genders = append(genders, string(g))
	}
	sort.Strings(genders)

	fmt.Fprintf(w, "\nGenders (%d):\n", len(genders))
	for _, g := range genders {
		note := ""
		if _, ok := people.ColorFor(people.Gender(g)); !ok {
			note = "  (no color)"
		}
		label := g
		if label == "" {
			label = `""`
		}
		fmt.Fprintf(w, "  %-20s %d%s\n", label, byGender[people.Gender(g)], note)
	}

	return nil
}
