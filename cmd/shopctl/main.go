// Package main provides the shopctl CLI, a storefront over an embedded
// SQLite catalog: browse products, manage a cart, place orders, and
// administer the catalog.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
