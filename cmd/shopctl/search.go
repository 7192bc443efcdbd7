// Search command matches products by name or category.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/storefront/internal/shop"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search products by name or category",
	Long: `Search matches the query against product names and category names,
case-insensitive. An empty query lists every product.

Example:
  shopctl search macbook
  shopctl search Laptop`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		svc, err := openServices()
		if err != nil {
			fmt.Fprintln(os.Stderr, "search:", err)
			os.Exit(exitSysError)
		}
		defer svc.Close()

		products, err := shop.NewCatalog(svc.store).Search(query)
		if err != nil {
			exitOnError("search", err)
		}

		return printResult(products, func() {
			for _, p := range products {
				fmt.Printf("%d\t%s\t%.0f\n", p.ID, p.Name, p.Price)
			}
		})
	},
}
