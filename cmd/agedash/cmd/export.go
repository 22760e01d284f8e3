package cmd

import (
	"fmt"

	"github.com/f3rmion/agedash/internal/config"
	"github.com/f3rmion/agedash/internal/dashboard"
	"github.com/f3rmion/agedash/internal/plot"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the chart to a PNG or SVG file",
	Long: `Render the chart for the selected countries and genders to an image.

The format follows the output file's extension unless --format is given.
Size and font default to the export section of config.yaml.

Example:
  agedash export --output ages.svg
  agedash export --country US --gender M --width 800 --height 400`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addSelectionFlags(exportCmd)
	exportCmd.Flags().StringP("output", "o", "", "output file (default from config)")
	exportCmd.Flags().String("format", "", "image format: png or svg (default from extension)")
	exportCmd.Flags().Int("width", 0, "image width in pixels")
	exportCmd.Flags().Int("height", 0, "image height in pixels")
	exportCmd.Flags().String("font", "", "TrueType font file")
}

// exportOptions merges export flags over the configured export settings.
func exportOptions(cmd *cobra.Command, cfg config.ExportConfig) (string, plot.Options, error) {
	path, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	fontPath, _ := cmd.Flags().GetString("font")

	if path == "" {
		path = cfg.Path
	}
	if width <= 0 {
		width = cfg.Width
	}
	if height <= 0 {
		height = cfg.Height
	}
	if fontPath == "" {
		fontPath = cfg.Font
	}

	opts := plot.Options{Width: width, Height: height}

	var err error
	if format != "" {
		opts.Format, err = plot.ParseFormat(format)
	} else {
		opts.Format, err = plot.FormatFromPath(path)
	}
	if err != nil {
		return "", plot.Options{}, err
	}

	if fontPath != "" {
		opts.Font, err = plot.LoadFont(fontPath)
		if err != nil {
			return "", plot.Options{}, err
		}
	}

	return path, opts, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	path, opts, err := exportOptions(cmd, cfg.Export)
	if err != nil {
		return err
	}

	tbl, err := loadTable(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	res := dashboard.Render(tbl, selectionFromFlags(cmd, tbl))
	if err := plot.WriteFile(path, res.Chart, opts); err != nil {
		return fmt.Errorf("exporting chart: %w", err)
	}

	logrus.WithFields(logrus.Fields{"path": path, "bars": len(res.Chart.Bars)}).Info("chart exported")
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bars to %s\n", len(res.Chart.Bars), path)
	return nil
}
