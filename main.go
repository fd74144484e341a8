// =============================================================================
// Roster Printer - Main Entry Point
// =============================================================================
//
// USAGE:
//   rosterprint print      - Print one document per session from the newest roster
//   rosterprint validate   - Validate the configuration without printing
//   rosterprint version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : core logic (locator, reader, roster model, renderer,
//                  dispatcher, pipeline)
//
// =============================================================================

package main

import (
	"github.com/rosterprint/rosterprint/cmd"
)

func main() {
	cmd.Execute()
}
