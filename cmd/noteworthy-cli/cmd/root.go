package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"noteworthy/internal/adapters/sqlite"
	"noteworthy/internal/config"
	"noteworthy/internal/logging"
)

var (
	settings = config.Load()
	logLevel string
	logger   = zap.NewNop()
	index    *sqlite.Index
)

var rootCmd = &cobra.Command{
	Use:   "noteworthy-cli",
	Short: "Inspect local files and a tablet's document tree",
	Long: `noteworthy-cli lists the same two trees the noteworthy TUI shows side by side:
a local directory and the device's documents, reconstructed from the
descriptor files copied off the device.

The device tree is rebuilt from the descriptor directory on every run.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		log, err := logging.New(logging.Config{
			Level:      logLevel,
			Format:     "console",
			OutputPath: settings.LogPath,
		})
		if err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		logger = log
		index = sqlite.NewIndex(sqlite.WithLogger(logger))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if index != nil {
			index.Close()
		}
		logger.Sync()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&settings.DescriptorDir, "descriptors", "d", settings.DescriptorDir, "directory holding the device's descriptor files")
	flags.BoolVar(&settings.ShowHiddenFiles, "hidden", settings.ShowHiddenFiles, "include hidden files in local listings")
	flags.StringVar(&settings.LogPath, "log", settings.LogPath, "write logs to this file")
	flags.StringVar(&logLevel, "log-level", settings.LogLevel, "log level (debug, info, warn, error)")
}

// GetIndex returns the index for the current invocation
func GetIndex() *sqlite.Index {
	return index
}
