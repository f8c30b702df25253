// Package main provides the navdata CLI, which converts FAA navigation data
// in ARINC 424 format to a SQLite database.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
