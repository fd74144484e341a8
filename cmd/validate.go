// =============================================================================
// Roster Printer - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which loads the configuration
// and reports problems without touching the roster or the printer. Useful
// after editing the YAML before a real print run.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rosterprint/rosterprint/internal/config"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file without printing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		fmt.Printf("Configuration %s is valid\n", cfgFile)
		fmt.Printf("  Search dir:   %s\n", cfg.SearchDir)
		fmt.Printf("  Pattern:      %s\n", cfg.SpreadsheetPattern)
		fmt.Printf("  Class column: %s\n", cfg.ClassColumnName)
		fmt.Printf("  Print columns: %v\n", cfg.ColumnsToPrint)
		if len(cfg.ModifyColumns) > 0 {
			fmt.Printf("  Merge rules:  %d\n", len(cfg.ModifyColumns))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
