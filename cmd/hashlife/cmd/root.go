package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/noctilu/hashlife/pkg/config"
	"github.com/noctilu/hashlife/pkg/hllog"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	// Populated by PersistentPreRunE, read by subcommands via GetConfig/GetLogger.
	cfg    *config.Config
	logger hllog.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "hashlife",
	Short: "A hashed-quadtree cellular automaton engine",
	Long: `hashlife drives a Hashlife-memoized cellular automaton universe: load a
pattern, advance it by exponentially large generation steps, and inspect
its population, bounds, and rendering without ever touching a cell more
than once per distinct quadtree subtree.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		logLevel := hllog.ParseLevel(cfg.Log.Level)
		if verbose {
			logLevel = hllog.LevelDebug
		}
		l := hllog.New(logLevel, os.Stdout)
		logger = l
		hllog.SetGlobal(l)

		return nil
	},
}

// Execute runs the root command, exiting the process with a non-zero
// status on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a hashlife config file (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug-level logging")

	rootCmd.Example = `  # Advance a glider by 1000 ticks of 2^4 = 16 generations each
  hashlife run --pattern glider.cells --generations 1000 --step 4

  # Inspect a pattern's tight bounding box without advancing it
  hashlife bounds --pattern glider.cells

  # Render a pattern as ASCII art
  hashlife draw --pattern glider.cells --cell-size 32`
}

// GetLogger returns the logger configured by the root command's
// PersistentPreRunE.
func GetLogger() hllog.Logger {
	return logger
}

// GetConfig returns the configuration loaded by the root command's
// PersistentPreRunE.
func GetConfig() *config.Config {
	return cfg
}
