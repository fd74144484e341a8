// =============================================================================
// Roster Printer - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI and the global flags
// shared by every subcommand.
//
// COBRA CLI STRUCTURE:
//   rootCmd (rosterprint)
//   ├── printCmd    (rosterprint print)
//   ├── validateCmd (rosterprint validate)
//   └── versionCmd  (rosterprint version)
//
// ENVIRONMENT:
//   The configuration path and debug switch can also come from the
//   environment (CONFIG_FILE, ROSTER_PRINTER_DEBUG=true), so the tool can
//   run from a double-clickable shortcut with no arguments. Flags win over
//   the environment when both are set.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file.
var cfgFile string

// debugMode switches to preview-and-retain behavior with verbose logging.
var debugMode bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rosterprint",
	Short: "Roster Printer - print per-session rosters from a spreadsheet",
	Long: `Roster Printer finds the most recent roster spreadsheet in a directory,
reshapes its columns per the configuration, splits it into one table per
class session, and prints each session as a formatted one-page PDF.

Example Usage:
  rosterprint print                     # Print all sessions from the newest roster
  rosterprint print --config ./my.yaml  # Use a custom configuration file
  rosterprint print --debug             # Open PDFs in the viewer instead of printing
  rosterprint validate                  # Check the configuration without printing`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the console logger for a command invocation.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if debugMode {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		Level(level).
		With().Timestamp().Logger()
}

func init() {
	defaultConfig := os.Getenv("CONFIG_FILE")
	if defaultConfig == "" {
		defaultConfig = "config.yaml"
	}

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		defaultConfig,
		"Path to the configuration file (default from CONFIG_FILE, else config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVar(
		&debugMode,
		"debug",
		os.Getenv("ROSTER_PRINTER_DEBUG") == "true",
		"Preview documents instead of printing, keep them on disk, log verbosely",
	)
}
