// =============================================================================
// Roster Printer - Output Dispatcher
// =============================================================================
//
// This module delivers rendered documents to the printer or the viewer. For
// each batch it acquires a working directory, writes every document into it,
// submits each file, waits a grace delay so the spooler or viewer can finish
// reading, and then tears the directory down.
//
// RUN MODES:
//   The differing production/debug behaviors are carried as data in Mode, not
//   as branches scattered through the code:
//     - Production: documents are printed; the working directory is a
//       transient temp dir removed after a 10s grace delay.
//     - Debug: documents are opened in the viewer instead of printed; the
//       working directory is a fixed local folder kept for inspection, with
//       a 30s grace delay.
//
// SPOOLER SYNCHRONIZATION:
//   The fixed grace delay is a known race-prone heuristic, not a guarantee:
//   a slow spooler can still lose the file. Polling for handle release would
//   be more robust but changes the contract with the print mechanism.
//
// =============================================================================

package dispatch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/rosterprint/rosterprint/internal/render"
)

// =============================================================================
// RUN MODE
// =============================================================================

// Destination selects how a written document is consumed.
type Destination int

const (
	// Print submits the document to the default printing mechanism.
	Print Destination = iota

	// Preview opens the document with the default viewer.
	Preview
)

// Mode carries the behaviors that differ between production and debug runs.
type Mode struct {
	// Destination is where each document goes.
	Destination Destination

	// WorkDir is the working directory for rendered files. Empty means a
	// transient temp directory, removed after the batch; non-empty names a
	// directory that is created if needed and retained across runs.
	WorkDir string

	// GraceDelay is how long to wait after the batch before the working
	// directory may be torn down.
	GraceDelay time.Duration
}

// Production prints to the default printer from a transient directory.
func Production() Mode {
	return Mode{Destination: Print, GraceDelay: 10 * time.Second}
}

// Debug opens documents in the viewer and keeps them in a fixed local
// folder for inspection.
func Debug() Mode {
	return Mode{Destination: Preview, WorkDir: ".rosterprint", GraceDelay: 30 * time.Second}
}

// =============================================================================
// DISPATCHER
// =============================================================================

// Dispatcher writes and submits rendered documents.
type Dispatcher struct {
	mode     Mode
	launcher Launcher
	log      zerolog.Logger
}

// New creates a Dispatcher. A nil launcher uses the operating system's
// printer and viewer commands.
func New(mode Mode, launcher Launcher, log zerolog.Logger) *Dispatcher {
	if launcher == nil {
		launcher = &osLauncher{}
	}
	return &Dispatcher{mode: mode, launcher: launcher, log: log}
}

// DispatchAll writes every document into the working directory and submits
// each one. It returns the written file paths.
//
// The working directory is released on every exit path; a failure while
// dispatching session k leaves sessions 1..k-1 already submitted. The grace
// delay runs only after a fully dispatched batch.
func (d *Dispatcher) DispatchAll(docs []*render.Document) (paths []string, err error) {
	dir, transient, err := d.acquireWorkDir()
	if err != nil {
		return nil, err
	}
	if transient {
		defer func() {
			if rmErr := os.RemoveAll(dir); rmErr != nil && err == nil {
				err = fmt.Errorf("failed to remove working directory: %w", rmErr)
			}
		}()
	}

	for _, doc := range docs {
		path, err := d.dispatchOne(dir, doc)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	// Without this wait the files can be deleted (or the process exit)
	// before the spooler or viewer has read them.
	d.log.Info().Dur("delay", d.mode.GraceDelay).Msg("waiting for print spooler to receive files")
	time.Sleep(d.mode.GraceDelay)

	return paths, nil
}

// acquireWorkDir creates the batch's working directory and reports whether
// it is transient.
func (d *Dispatcher) acquireWorkDir() (string, bool, error) {
	if d.mode.WorkDir == "" {
		dir, err := os.MkdirTemp("", "rosterprint-")
		if err != nil {
			return "", false, fmt.Errorf("failed to create working directory: %w", err)
		}
		d.log.Debug().Str("dir", dir).Msg("created transient working directory")
		return dir, true, nil
	}

	if err := os.MkdirAll(d.mode.WorkDir, 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create working directory %s: %w", d.mode.WorkDir, err)
	}
	return d.mode.WorkDir, false, nil
}

// dispatchOne writes a single document and submits it.
func (d *Dispatcher) dispatchOne(dir string, doc *render.Document) (string, error) {
	path := filepath.Join(dir, doc.FileName())
	if err := os.WriteFile(path, doc.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	switch d.mode.Destination {
	case Print:
		d.log.Info().Str("file", doc.FileName()).Msg("printing")
		if err := d.launcher.Print(path); err != nil {
			return "", fmt.Errorf("failed to print %s: %w", path, err)
		}
	case Preview:
		d.log.Info().Str("file", doc.FileName()).Msg("opening")
		if err := d.launcher.Open(path); err != nil {
			return "", fmt.Errorf("failed to open %s: %w", path, err)
		}
	}

	return path, nil
}
