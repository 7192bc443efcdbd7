// Logout command for the shopctl CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices()
		if err != nil {
			fmt.Fprintln(os.Stderr, "logout:", err)
			os.Exit(exitSysError)
		}
		defer svc.Close()

		if err := svc.auth.LogOut(); err != nil {
			exitOnError("logout", err)
		}

		fmt.Println("Logged out")
		return nil
	},
}
