// =============================================================================
// Roster Printer - Print Command
// =============================================================================
//
// This file defines the 'print' command, the main batch operation: one
// invocation locates the newest roster, produces one PDF per session, sends
// each to the printer (or the viewer in debug mode) and exits.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rosterprint/rosterprint/internal/config"
	"github.com/rosterprint/rosterprint/internal/dispatch"
	"github.com/rosterprint/rosterprint/internal/pipeline"
)

// printCmd represents the 'print' command.
var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print one roster document per session",
	Long: `The print command locates the most recently modified spreadsheet matching
the configured pattern, applies the configured column merges, splits the
roster into sessions on the class column, and prints each session as a
formatted one-page PDF.

In debug mode (--debug or ROSTER_PRINTER_DEBUG=true) documents are opened in
the default viewer instead of printed, and are kept in a local .rosterprint
folder for inspection.

Any error aborts the whole run: sessions already handed to the printer stay
submitted, but nothing after the failure is produced.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runPrint()
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
}

// runPrint loads the configuration and executes one batch run.
func runPrint() error {
	log := newLogger()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	mode := dispatch.Production()
	if debugMode {
		mode = dispatch.Debug()
	}

	summary, err := pipeline.Run(cfg, mode, nil, log)
	if err != nil {
		return err
	}

	fmt.Printf("Printed %d session(s) from %s\n", summary.Sessions, summary.Source)
	return nil
}
