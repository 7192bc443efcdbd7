// Order commands for the shopctl CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/storefront/internal/shop"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Inspect and advance orders",
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the logged-in user's order history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices()
		if err != nil {
			fmt.Fprintln(os.Stderr, "order list:", err)
			os.Exit(exitSysError)
		}
		defer svc.Close()

		user := requireUser(svc)
		orders, err := shop.NewOrders(svc.store).History(user.ID)
		if err != nil {
			exitOnError("order list", err)
		}

		return printResult(orders, func() {
			for _, o := range orders {
				total := "-"
				if o.TotalPrice != nil {
					total = fmt.Sprintf("%.0f", *o.TotalPrice)
				}
				fmt.Printf("%d\t%s\tproduct:%d\tx%d\t%s\n", o.ID, o.Status, o.ProductID, o.Qty, total)
			}
		})
	},
}

var orderStatusCmd = &cobra.Command{
	Use:   "status <order-id> <status>",
	Short: "Move an order to the next status",
	Long: `Status advances an order along its lifecycle:
pending -> confirmed -> shipping -> completed, one step at a time.
Cancelled is reachable from any status except completed and cancelled.
Admin only.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		orderID, err := parseID(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "order status:", err)
			os.Exit(exitUserError)
		}

		svc, err := openServices()
		if err != nil {
			fmt.Fprintln(os.Stderr, "order status:", err)
			os.Exit(exitSysError)
		}
		defer svc.Close()

		requireAdmin(svc)
		if err := shop.NewOrders(svc.store).SetStatus(orderID, args[1]); err != nil {
			exitOnError("order status", err)
		}

		fmt.Printf("Order %d is now %s\n", orderID, args[1])
		return nil
	},
}

func init() {
	orderCmd.AddCommand(orderListCmd)
	orderCmd.AddCommand(orderStatusCmd)
}
