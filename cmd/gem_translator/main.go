// Package main provides the entry point for the GEM taxonomy translator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gem_translator",
	Short: "GEM taxonomy to EMS vulnerability class translator",
	Long: "gem_translator maps GEM v2.0 building taxonomy strings to EMS structural " +
		"types and vulnerability class distributions, with per-building confidence " +
		"and uncertainty scoring.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
