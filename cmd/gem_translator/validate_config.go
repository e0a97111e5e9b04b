package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/gem-translator/internal/config"
	"github.com/jonathan/gem-translator/internal/schemas"
)

var validateConfigCmd = &cobra.Command{
	Use:   "validate-config <path>",
	Short: "Validate a JSON config overlay without running a translation",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidateConfig,
}

func init() {
	rootCmd.AddCommand(validateConfigCmd)
}

func runValidateConfig(_ *cobra.Command, args []string) error {
	path := args[0]

	if err := schemas.ValidateConfigFile(path); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if _, err := config.Load(path); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s: OK\n", path)
	return nil
}
