package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"noteworthy/internal/adapters/descriptor"
)

var descriptorScanner = descriptor.Scanner{}

var showErrors bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the device index and report statistics",
	Long: `Parse every descriptor file and report what was indexed.

With --errors, descriptors whose type is not recognized are listed as well.

Example:
  noteworthy-cli index --errors`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := buildIndex(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		fmt.Printf("Built in %s\n", result.Stats.Duration)

		if !showErrors {
			return nil
		}

		rows, err := GetIndex().ErrorRows()
		if err != nil {
			return err
		}
		for _, r := range rows {
			fmt.Printf("  %s  %s  modified %s\n", r.ID, r.Name, r.Modified())
		}
		return nil
	},
}

func init() {
	indexCmd.Flags().BoolVar(&showErrors, "errors", false, "list descriptors with an unrecognized type")
	rootCmd.AddCommand(indexCmd)
}
