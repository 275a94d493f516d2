package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the reconciled record schema",
	Long: `Loads the configured sources and prints the ordered field names of
the reconciled records, one per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newArticlesService()
		if err != nil {
			return err
		}

		schema, err := svc.Schema()
		if err != nil {
			return fmt.Errorf("failed to read schema: %w", err)
		}

		for _, field := range schema {
			fmt.Println(field)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(schemaCmd)
}
