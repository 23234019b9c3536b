// Package main is the entry point for the backoffice CLI.
package main

import (
	"os"

	"github.com/shunichi-ikebuchi/property-backoffice/cmd/backoffice/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
