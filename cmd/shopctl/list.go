// List command dumps every row of a table.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/storefront/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list <table>",
	Short: "List every row in a table",
	Long: `List dumps all rows of the named table as JSON.

Valid table names: categories, products, users, orders

Example:
  shopctl list products
  shopctl list categories`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tableName := args[0]

		svc, err := openServices()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}
		defer svc.Close()

		rows, err := svc.store.GetAll(tableName)
		if err != nil {
			if errors.Is(err, types.ErrTableUnknown) {
				fmt.Fprintf(os.Stderr, "unknown table %q (valid: %s)\n", tableName, validTableNamesStr)
				os.Exit(exitUserError)
			}
			exitOnError("list", err)
		}

		output, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal rows: %w", err)
		}
		fmt.Println(string(output))
		return nil
	},
}
