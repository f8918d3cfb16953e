// Package main is the entry point for the cassis CLI.
package main

import (
	"os"

	"github.com/cassis-lang/cassis/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
