package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/agedash/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize agedash configuration",
	Long: `Write a default config.yaml to your config directory.

The file sets the data file, the SQLite table, export size and font, and
logging. Flags and AGEDASH_* environment variables override it.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.FileName)

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.EnsureDir(configDir); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit data_file to point at your data")
	fmt.Fprintln(out, "  2. Run 'agedash inspect' to check it loads")
	fmt.Fprintln(out, "  3. Run 'agedash' to open the dashboard")

	return nil
}
