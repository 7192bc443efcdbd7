// Checkout command for the shopctl CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/storefront/internal/shop"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place every cart line as a pending order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices()
		if err != nil {
			fmt.Fprintln(os.Stderr, "checkout:", err)
			os.Exit(exitSysError)
		}
		defer svc.Close()

		user := requireUser(svc)
		placed, err := shop.NewOrders(svc.store).Checkout(user.ID)
		if err != nil {
			exitOnError("checkout", err)
		}

		fmt.Printf("Placed %d order(s)\n", placed)
		return nil
	},
}
