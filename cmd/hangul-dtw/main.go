// Package main is the entry point for the hangul-dtw CLI.
package main

import (
	"os"

	"github.com/dirhq88/hangul-dtw/cmd/hangul-dtw/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
