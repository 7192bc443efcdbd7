// Cart commands for the shopctl CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/storefront/internal/shop"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage the logged-in user's cart",
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id> [qty]",
	Short: "Put a product in the cart",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		productID, err := parseID(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "cart add:", err)
			os.Exit(exitUserError)
		}
		qty := int64(1)
		if len(args) == 2 {
			if qty, err = parseID(args[1]); err != nil {
				fmt.Fprintln(os.Stderr, "cart add: invalid quantity")
				os.Exit(exitUserError)
			}
		}

		svc, err := openServices()
		if err != nil {
			fmt.Fprintln(os.Stderr, "cart add:", err)
			os.Exit(exitSysError)
		}
		defer svc.Close()

		user := requireUser(svc)
		if err := shop.NewCart(svc.store).Add(user.ID, productID, qty); err != nil {
			exitOnError("cart add", err)
		}

		fmt.Printf("Added product %d (qty %d) to cart\n", productID, qty)
		return nil
	},
}

var cartListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the cart with a running total",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices()
		if err != nil {
			fmt.Fprintln(os.Stderr, "cart list:", err)
			os.Exit(exitSysError)
		}
		defer svc.Close()

		user := requireUser(svc)
		items, err := shop.NewCart(svc.store).Items(user.ID)
		if err != nil {
			exitOnError("cart list", err)
		}

		return printResult(items, func() {
			var total float64
			for _, item := range items {
				fmt.Printf("%d\t%s\tx%d\t%.0f\n", item.OrderID, item.ProductName, item.Qty, item.Subtotal())
				total += item.Subtotal()
			}
			fmt.Printf("total\t%.0f\n", total)
		})
	},
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update <order-id> <qty>",
	Short: "Change the quantity on a cart line",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, err := parseID(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "cart update:", err)
			os.Exit(exitUserError)
		}
		qty, err := parseID(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "cart update: invalid quantity")
			os.Exit(exitUserError)
		}

		svc, err := openServices()
		if err != nil {
			fmt.Fprintln(os.Stderr, "cart update:", err)
			os.Exit(exitSysError)
		}
		defer svc.Close()

		user := requireUser(svc)
		if err := shop.NewCart(svc.store).UpdateQty(user.ID, orderID, qty); err != nil {
			exitOnError("cart update", err)
		}

		fmt.Printf("Cart line %d set to qty %d\n", orderID, qty)
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <order-id>",
	Short: "Drop a line from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, err := parseID(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "cart remove:", err)
			os.Exit(exitUserError)
		}

		svc, err := openServices()
		if err != nil {
			fmt.Fprintln(os.Stderr, "cart remove:", err)
			os.Exit(exitSysError)
		}
		defer svc.Close()

		user := requireUser(svc)
		if err := shop.NewCart(svc.store).Remove(user.ID, orderID); err != nil {
			exitOnError("cart remove", err)
		}

		fmt.Printf("Removed cart line %d\n", orderID)
		return nil
	},
}

func init() {
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartListCmd)
	cartCmd.AddCommand(cartUpdateCmd)
	cartCmd.AddCommand(cartRemoveCmd)
}
