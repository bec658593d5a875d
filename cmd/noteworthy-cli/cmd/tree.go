package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"noteworthy/internal/application/commands"
	"noteworthy/internal/application/navigation"
	"noteworthy/internal/domain"
)

var treeDepth int

var treeCmd = &cobra.Command{
	Use:   "tree [id]",
	Short: "Display the device's document tree",
	Long: `Display the device's document tree, collections before documents.

Examples:
  noteworthy-cli tree
  noteworthy-cli tree --depth 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := buildIndex(cmd.Context()); err != nil {
			return err
		}

		rootID := ""
		if len(args) == 1 {
			rootID = args[0]
		}

		root, err := commands.NewBuildTreeCommand(GetIndex(), rootID, treeDepth).Execute(cmd.Context())
		if err != nil {
			return err
		}

		printTree(root)
		return nil
	},
}

func printTree(node *domain.TreeNode) {
	if node.Row.ID == domain.RootID {
		fmt.Println("/")
	} else {
		label, _ := navigation.Label(node.Row.Node())
		fmt.Printf("%s%s\n", strings.Repeat("  ", node.Depth), label)
	}

	for _, child := range node.Children {
		printTree(child)
	}
}

func init() {
	treeCmd.Flags().IntVar(&treeDepth, "depth", commands.DefaultTreeDepth, "maximum depth to descend")
	rootCmd.AddCommand(treeCmd)
}
