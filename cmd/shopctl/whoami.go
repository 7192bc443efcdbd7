// Whoami command for the shopctl CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices()
		if err != nil {
			fmt.Fprintln(os.Stderr, "whoami:", err)
			os.Exit(exitSysError)
		}
		defer svc.Close()

		user := requireUser(svc)
		return printResult(user, func() {
			fmt.Printf("%s (%s)\n", user.Username, user.Role)
		})
	},
}
