// Package main is the entry point for the agedash CLI.
package main

import (
	"os"

	"github.com/f3rmion/agedash/cmd/agedash/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
