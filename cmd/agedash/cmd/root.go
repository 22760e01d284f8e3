// Package cmd contains all CLI commands for agedash.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/agedash/internal/config"
	"github.com/f3rmion/agedash/internal/dataset"
	"github.com/f3rmion/agedash/internal/logging"
	"github.com/f3rmion/agedash/internal/people"
	"github.com/f3rmion/agedash/internal/tui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// closeLog releases the log file opened by setupLogging.
var closeLog = func() {}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "agedash",
	Short: "Explore individual ages by country and gender",
	Long: `agedash loads a table of people (Country, Gender, Age) and charts each
person's age as a bar, grouped by country and colored by gender.

Data is read from country_data.csv in the working directory unless --file
points elsewhere. SQLite (.db, .sqlite) and JSON lines (.jsonl) files are
read as well.

Running 'agedash' without arguments launches the interactive dashboard.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runDashboard,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	defer func() { closeLog() }()

	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/agedash)")
	rootCmd.PersistentFlags().String("file", "", "data file (default is "+dataset.DefaultFile+")")
	rootCmd.PersistentFlags().String("table", "", "SQLite table name (default is "+dataset.DefaultTable+")")
	rootCmd.PersistentFlags().String("log-file", "", "write diagnostic logs to this file")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	viper.BindPFlag("file", rootCmd.PersistentFlags().Lookup("file"))
	viper.BindPFlag("table", rootCmd.PersistentFlags().Lookup("table"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in ENV variables and resolves the config directory.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		configDir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", configDir)
	}

	viper.SetEnvPrefix("AGEDASH")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadSettings reads config.yaml and applies flag and environment
// overrides on top of it.
func loadSettings() (*config.Config, error) {
	cfg, err := config.LoadDir(getConfigDir())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if v := viper.GetString("file"); v != "" {
		cfg.DataFile = v
	}
	if v := viper.GetString("table"); v != "" {
		cfg.Table = v
	}
	if v := viper.GetString("log_file"); v != "" {
		cfg.Log.File = v
	}
	if v := viper.GetString("log_level"); v != "" {
		cfg.Log.Level = v
	}
	if viper.GetBool("verbose") {
		cfg.Log.Level = "debug"
	}

	return cfg, nil
}

func setupLogging(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	cleanup, err := logging.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	closeLog = cleanup

	logrus.WithField("command", cmd.Name()).Debug("starting")
	return nil
}

// missingFileError reports an absent data file to the user.
type missingFileError struct {
	path string
	err  error
}

func (e *missingFileError) Error() string {
	return fmt.Sprintf("File '%s' not found in the working directory.", e.path)
}

func (e *missingFileError) Unwrap() error {
	return e.err
}

// printError writes err for the user. A missing data file gets its own
// message without the usual prefix.
func printError(w io.Writer, err error) {
	var missing *missingFileError
	if errors.As(err, &missing) {
		fmt.Fprintln(w, missing.Error())
		return
	}
	fmt.Fprintln(w, "Error:", err)
}

// loadTable reads the configured data file.
func loadTable(ctx context.Context, cfg *config.Config) (people.Table, error) {
	src := dataset.Source{Path: cfg.DataFile, Table: cfg.Table}
	if src.Path == "" {
		src.Path = dataset.DefaultFile
	}

	tbl, err := dataset.Load(ctx, src)
	if err != nil {
		if dataset.IsMissingInput(err) {
			logrus.WithField("path", src.Path).Error("data file not found")
			return people.Table{}, &missingFileError{path: src.Path, err: err}
		}
		return people.Table{}, fmt.Errorf("loading %s: %w", src.Path, err)
	}
	return tbl, nil
}

// runDashboard launches the interactive dashboard.
func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	tbl, err := loadTable(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		tui.NewApp(tbl, cfg),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
