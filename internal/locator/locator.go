// =============================================================================
// Roster Printer - Source Locator
// =============================================================================
//
// This module finds the roster spreadsheet to print: the most recently
// modified file in the search directory whose name contains the configured
// pattern. The scan is non-recursive and read-only.
//
// =============================================================================

package locator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// NotFoundError is returned when no file in the directory matches the
// pattern. Callers treat this as a fatal "no roster found" condition.
type NotFoundError struct {
	// Dir is the directory that was scanned.
	Dir string

	// Pattern is the substring that matched nothing.
	Pattern string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no file matching %q found in %s", e.Pattern, e.Dir)
}

// FindLatest returns the path of the newest file in dir whose base name
// contains pattern. Matching is exact and case-sensitive. Directories are
// skipped. Ties on modification time keep the earlier directory-listing
// entry, which is deterministic for a given listing.
func FindLatest(dir, pattern string, log zerolog.Logger) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	var newest string
	var newestMod int64
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.Contains(entry.Name(), pattern) {
			log.Debug().Str("file", entry.Name()).Msg("name does not contain pattern, skipping")
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", entry.Name(), err)
		}

		if newest == "" || info.ModTime().UnixNano() > newestMod {
			newest = filepath.Join(dir, entry.Name())
			newestMod = info.ModTime().UnixNano()
			log.Debug().Str("file", newest).Time("mtime", info.ModTime()).Msg("new latest candidate")
		}
	}

	if newest == "" {
		return "", &NotFoundError{Dir: dir, Pattern: pattern}
	}

	log.Debug().Str("file", newest).Msg("selected roster spreadsheet")
	return newest, nil
}
