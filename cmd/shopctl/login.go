// Login and password commands for the shopctl CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <username> <password>",
	Short: "Log in and remember the session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices()
		if err != nil {
			fmt.Fprintln(os.Stderr, "login:", err)
			os.Exit(exitSysError)
		}
		defer svc.Close()

		sess, err := svc.auth.LogIn(args[0], args[1])
		if err != nil {
			exitOnError("login", err)
		}

		fmt.Printf("Logged in as %s (%s)\n", sess.User.Username, sess.User.Role)
		return nil
	},
}

var passwdCmd = &cobra.Command{
	Use:   "passwd <old-password> <new-password>",
	Short: "Change the logged-in user's password",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices()
		if err != nil {
			fmt.Fprintln(os.Stderr, "passwd:", err)
			os.Exit(exitSysError)
		}
		defer svc.Close()

		requireUser(svc)
		if err := svc.auth.ChangePassword(args[0], args[1]); err != nil {
			exitOnError("passwd", err)
		}

		fmt.Println("Password changed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(passwdCmd)
}
