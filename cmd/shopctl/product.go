// Product admin commands for the shopctl CLI.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dukaforge/storefront/internal/shop"
	"github.com/dukaforge/storefront/pkg/types"
)

var (
	flagProductImage string
	flagProductYes   bool
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Administer the product catalog",
}

var productAddCmd = &cobra.Command{
	Use:   "add <name> <price> <category-id>",
	Short: "Add a product",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "product add: invalid price %q\n", args[1])
			os.Exit(exitUserError)
		}
		categoryID, err := parseID(args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, "product add:", err)
			os.Exit(exitUserError)
		}

		svc, err := openServices()
		if err != nil {
			fmt.Fprintln(os.Stderr, "product add:", err)
			os.Exit(exitSysError)
		}
		defer svc.Close()

		requireAdmin(svc)
		product := types.Product{
			Name:       args[0],
			Price:      price,
			Image:      flagProductImage,
			CategoryID: categoryID,
		}
		if err := shop.NewCatalog(svc.store).AddProduct(product); err != nil {
			exitOnError("product add", err)
		}

		fmt.Printf("Product %q added\n", args[0])
		return nil
	},
}

var productUpdateCmd = &cobra.Command{
	Use:   "update <id> <field=value>...",
	Short: "Patch a product's fields",
	Long: `Update applies field=value patches to a product.

Example:
  shopctl product update 3 price=27000000
  shopctl product update 3 name="iPad Pro 13" categoryId=3`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "product update:", err)
			os.Exit(exitUserError)
		}
		patches, err := parsePatches(args[1:])
		if err != nil {
			fmt.Fprintln(os.Stderr, "product update:", err)
			os.Exit(exitUserError)
		}

		svc, err := openServices()
		if err != nil {
			fmt.Fprintln(os.Stderr, "product update:", err)
			os.Exit(exitSysError)
		}
		defer svc.Close()

		requireAdmin(svc)
		if err := shop.NewCatalog(svc.store).UpdateProduct(id, patches); err != nil {
			exitOnError("product update", err)
		}

		fmt.Printf("Product %d updated\n", id)
		return nil
	},
}

var productDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Long: `Delete removes a product. What happens to orders referencing it
follows the configured delete_policy: block refuses, cascade deletes the
orders too, orphan leaves them in place.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "product delete:", err)
			os.Exit(exitUserError)
		}

		svc, err := openServices()
		if err != nil {
			fmt.Fprintln(os.Stderr, "product delete:", err)
			os.Exit(exitSysError)
		}
		defer svc.Close()

		requireAdmin(svc)
		if !confirm(fmt.Sprintf("Delete product %d?", id), flagProductYes) {
			fmt.Println("Aborted")
			return nil
		}
		if err := shop.NewCatalog(svc.store).DeleteProduct(id); err != nil {
			exitOnError("product delete", err)
		}

		fmt.Printf("Product %d deleted\n", id)
		return nil
	},
}

func init() {
	productAddCmd.Flags().StringVar(&flagProductImage, "image", "", "product image URI")
	productDeleteCmd.Flags().BoolVar(&flagProductYes, "yes", false, "skip the confirmation prompt")

	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productUpdateCmd)
	productCmd.AddCommand(productDeleteCmd)
}
