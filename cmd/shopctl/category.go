// Category admin commands for the shopctl CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/storefront/internal/shop"
	"github.com/dukaforge/storefront/pkg/types"
)

var flagCategoryYes bool

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Administer the category list",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices()
		if err != nil {
			fmt.Fprintln(os.Stderr, "category add:", err)
			os.Exit(exitSysError)
		}
		defer svc.Close()

		requireAdmin(svc)
		if err := shop.NewCatalog(svc.store).AddCategory(types.Category{Name: args[0]}); err != nil {
			exitOnError("category add", err)
		}

		fmt.Printf("Category %q added\n", args[0])
		return nil
	},
}

var categoryUpdateCmd = &cobra.Command{
	Use:   "update <id> <field=value>...",
	Short: "Patch a category's fields",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "category update:", err)
			os.Exit(exitUserError)
		}
		patches, err := parsePatches(args[1:])
		if err != nil {
			fmt.Fprintln(os.Stderr, "category update:", err)
			os.Exit(exitUserError)
		}

		svc, err := openServices()
		if err != nil {
			fmt.Fprintln(os.Stderr, "category update:", err)
			os.Exit(exitSysError)
		}
		defer svc.Close()

		requireAdmin(svc)
		if err := shop.NewCatalog(svc.store).UpdateCategory(id, patches); err != nil {
			exitOnError("category update", err)
		}

		fmt.Printf("Category %d updated\n", id)
		return nil
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category",
	Long: `Delete removes a category. What happens to its products follows the
configured delete_policy: block refuses, cascade deletes the products and
their orders too, orphan leaves them in place.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "category delete:", err)
			os.Exit(exitUserError)
		}

		svc, err := openServices()
		if err != nil {
			fmt.Fprintln(os.Stderr, "category delete:", err)
			os.Exit(exitSysError)
		}
		defer svc.Close()

		requireAdmin(svc)
		if !confirm(fmt.Sprintf("Delete category %d?", id), flagCategoryYes) {
			fmt.Println("Aborted")
			return nil
		}
		if err := shop.NewCatalog(svc.store).DeleteCategory(id); err != nil {
			exitOnError("category delete", err)
		}

		fmt.Printf("Category %d deleted\n", id)
		return nil
	},
}

func init() {
	categoryDeleteCmd.Flags().BoolVar(&flagCategoryYes, "yes", false, "skip the confirmation prompt")

	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryUpdateCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
}
