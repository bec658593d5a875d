package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"noteworthy/internal/adapters/filesystem"
	"noteworthy/internal/adapters/remote"
	"noteworthy/internal/application/commands"
	"noteworthy/internal/application/navigation"
	"noteworthy/internal/domain"
	"noteworthy/internal/ports"
)

var lsCmd = &cobra.Command{
	Use:   "ls [local|remote] [ref]",
	Short: "List one level of a tree",
	Long: `List one directory or collection the way a pane shows it.

Examples:
  noteworthy-cli ls local ~/Documents
  noteworthy-cli ls remote
  noteworthy-cli ls remote 0b3c2f7e-4a5d-4d2e-9c61-2f1a5e0b7d11`,
}

var lsLocalCmd = &cobra.Command{
	Use:   "local [path]",
	Short: "List a local directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref := settings.LocalRoot
		if len(args) == 1 {
			ref = args[0]
		}
		source := filesystem.NewSource(filesystem.WithHiddenFiles(settings.ShowHiddenFiles))
		return printListing(cmd.Context(), source, ref)
	},
}

var lsRemoteCmd = &cobra.Command{
	Use:   "remote [id]",
	Short: "List a collection on the device",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := buildIndex(cmd.Context()); err != nil {
			return err
		}

		ref := ""
		if len(args) == 1 {
			ref = args[0]
		}
		return printListing(cmd.Context(), remote.NewSource(GetIndex()), ref)
	},
}

func printListing(ctx context.Context, source ports.TreeSource, ref string) error {
	nodes, err := commands.NewListChildrenCommand(source, ref).Execute(ctx)
	if err != nil {
		return err
	}

	for _, n := range nodes {
		label, ok := navigation.Label(n)
		if !ok {
			continue
		}
		if n.Kind == domain.KindParentLink {
			fmt.Printf("%-4s %s\n", label, n.ID)
			continue
		}
		fmt.Printf("%-4s %s\n", kindMarker(n.Kind), label)
	}
	return nil
}

func kindMarker(k domain.Kind) string {
	if k == domain.KindCollection {
		return "d"
	}
	return "-"
}

// buildIndex fills the index from the descriptor directory
func buildIndex(ctx context.Context) (*commands.BuildIndexResult, error) {
	return commands.NewBuildIndexCommand(GetIndex(), descriptorScanner, settings.DescriptorDir).Execute(ctx)
}

func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.AddCommand(lsLocalCmd)
	lsCmd.AddCommand(lsRemoteCmd)
}
