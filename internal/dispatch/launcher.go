// =============================================================================
// Roster Printer - Printer/Viewer Launcher
// =============================================================================

package dispatch

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Launcher hands a written file to the consuming process. The launcher does
// not wait for that process to finish with the file; the dispatcher's grace
// delay covers the hand-off.
type Launcher interface {
	// Print submits the file to the default printer.
	Print(path string) error

	// Open opens the file with the default viewer.
	Open(path string) error
}

// osLauncher shells out to the platform's print and open commands.
type osLauncher struct{}

func (osLauncher) Print(path string) error {
	switch runtime.GOOS {
	case "windows":
		return run("powershell", "-NoProfile", "Start-Process", "-FilePath", path, "-Verb", "Print")
	case "darwin", "linux":
		// lp returns as soon as the job is queued.
		return run("lp", path)
	default:
		return fmt.Errorf("printing is not supported on %s", runtime.GOOS)
	}
}

func (osLauncher) Open(path string) error {
	switch runtime.GOOS {
	case "windows":
		return run("cmd", "/C", "start", "", path)
	case "darwin":
		return run("open", path)
	default:
		return run("xdg-open", path)
	}
}

func run(name string, args ...string) error {
	if err := exec.Command(name, args...).Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
