// Products command lists the catalog, optionally one category.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/storefront/internal/shop"
)

var flagProductsCategory int64

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List products, all or by category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices()
		if err != nil {
			fmt.Fprintln(os.Stderr, "products:", err)
			os.Exit(exitSysError)
		}
		defer svc.Close()

		products, err := shop.NewCatalog(svc.store).Products(flagProductsCategory)
		if err != nil {
			exitOnError("products", err)
		}

		return printResult(products, func() {
			for _, p := range products {
				fmt.Printf("%d\t%s\t%.0f\tcategory:%d\n", p.ID, p.Name, p.Price, p.CategoryID)
			}
		})
	},
}

func init() {
	productsCmd.Flags().Int64Var(&flagProductsCategory, "category", 0, "only products in this category id")
}
