package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"noteworthy/internal/adapters/transport"
	"noteworthy/internal/application/commands"
	"noteworthy/internal/config"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Copy descriptor files from the device and rebuild the index",
	Long: fmt.Sprintf(`Run the sync command configured in %s, then rebuild the index
from the descriptor directory.

Example:
  %s="rsync -a tablet:.local/share/remarkable/xochitl/ ./raw-files" noteworthy-cli sync`,
		config.EnvSyncCommand, config.EnvSyncCommand),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		syncer := transport.NewCommandSyncer(settings.SyncCommand, transport.WithLogger(logger))

		synced, err := commands.NewSyncCommand(syncer, descriptorScanner, settings.DescriptorDir).Execute(cmd.Context())
		if err != nil {
			return err
		}

		stats, err := GetIndex().Rebuild(synced.Paths)
		if err != nil {
			return err
		}

		fmt.Printf("Synced in %s\n", synced.Duration)
		fmt.Println(commands.FormatStats(stats))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settings.SyncCommand, "sync-cmd", settings.SyncCommand, "command that copies descriptor files from the device")
	rootCmd.AddCommand(syncCmd)
}
