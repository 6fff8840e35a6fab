// Package main provides the openingtally CLI tool for building ranked
// opening-frequency summaries from PGN archives.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
