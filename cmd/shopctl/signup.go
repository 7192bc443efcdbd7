// Signup command for the shopctl CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagSignupRole string

var signupCmd = &cobra.Command{
	Use:   "signup <username> <password>",
	Short: "Create an account",
	Long: `Signup creates a new account. Usernames are alphanumeric, at least 5
characters; passwords need at least 6 characters with an upper-case
letter, a lower-case letter, and a digit, and may not contain the
username.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices()
		if err != nil {
			fmt.Fprintln(os.Stderr, "signup:", err)
			os.Exit(exitSysError)
		}
		defer svc.Close()

		if err := svc.auth.SignUp(args[0], args[1], flagSignupRole); err != nil {
			exitOnError("signup", err)
		}

		fmt.Printf("Account %q created\n", args[0])
		return nil
	},
}

func init() {
	signupCmd.Flags().StringVar(&flagSignupRole, "role", "", "account role: admin or user (default user)")
}
