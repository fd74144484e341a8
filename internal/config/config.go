// =============================================================================
// Roster Printer - Configuration Module
// =============================================================================
//
// This module loads and validates the run configuration. The configuration is
// a single YAML file describing where to find the roster spreadsheet, how to
// reshape its columns, how to split it into sessions, and how each session
// document should look.
//
// KEY ALIASES:
//   Several keys have historically been written with either dashes or
//   underscores ("class-column-name" vs "class_column_name") and
//   "columns-to-print" has the short form "columns". Both spellings are
//   accepted; the dashed form wins when both are present.
//
// VALIDATION:
//   Required keys are checked at load time and reported together in a single
//   ConfigError, before any roster file is touched.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rosterprint/rosterprint/internal/roster"
)

// =============================================================================
// ERRORS
// =============================================================================

// ConfigError describes an invalid or incomplete configuration.
type ConfigError struct {
	// Path is the configuration file that failed.
	Path string

	// Reason describes what is wrong, naming the offending key(s).
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration %s: %s", e.Path, e.Reason)
}

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds everything a single run needs. It is constructed once by Load
// and passed explicitly to every component that needs it; nothing reads it as
// ambient state.
type Config struct {
	// SearchDir is the directory scanned for roster spreadsheets.
	// Required.
	SearchDir string

	// SpreadsheetPattern is the substring identifying candidate files in
	// SearchDir. Matching is exact and case-sensitive. Required.
	SpreadsheetPattern string

	// ColumnsToPrint is the projection applied to each session before
	// rendering, in print order. Required.
	ColumnsToPrint []string

	// ClassColumnName is the column whose distinct values split the roster
	// into sessions. Required.
	ClassColumnName string

	// TitleSuffix is appended to each session key to form the document
	// title, e.g. key "A" + suffix "Roster" -> "A Roster".
	TitleSuffix string

	// ModifyColumns are the column merge rules, applied in order before
	// partitioning.
	ModifyColumns []roster.MergeRule

	// DateColumn names a source column holding a free-text session date.
	// When set, the first non-empty value is parsed and rendered under the
	// title. Empty disables the date line.
	DateColumn string

	// DateFormat is the Go reference-time layout for the session date
	// label. Defaults to "01/02/2006".
	DateFormat string

	// ShowPrintDate includes the print timestamp in the document footer.
	ShowPrintDate bool

	// ShowModifiedTime includes the source file's modification timestamp
	// in the document footer.
	ShowModifiedTime bool

	// Orientation is the page orientation: "portrait" (default) or
	// "landscape".
	Orientation string

	// UseExtraRow lists columns rendered as full-width spanning rows
	// beneath their parent row instead of as normal cells.
	UseExtraRow []string
}

// =============================================================================
// LOADING
// =============================================================================

// requiredKeys maps each required setting to its accepted spellings.
// Absence of all spellings for any entry is a fatal ConfigError.
var requiredKeys = [][]string{
	{"search-dir"},
	{"spreadsheet-pattern"},
	{"columns-to-print", "columns"},
	{"class-column-name", "class_column_name"},
}

// Load reads and validates the configuration file at path.
//
// RETURNS:
//   - The validated Config.
//   - A ConfigError if the file is unreadable, unparseable, is missing
//     required keys, or contains an invalid value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Reason: fmt.Sprintf("cannot read file: %v", err)}
	}

	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ConfigError{Path: path, Reason: fmt.Sprintf("cannot parse YAML: %v", err)}
	}

	if missing := missingRequired(raw); len(missing) > 0 {
		return nil, &ConfigError{
			Path:   path,
			Reason: "missing required keys: " + strings.Join(missing, ", "),
		}
	}

	cfg := &Config{}
	fields := []struct {
		target any
		keys   []string
	}{
		{&cfg.SearchDir, []string{"search-dir"}},
		{&cfg.SpreadsheetPattern, []string{"spreadsheet-pattern"}},
		{&cfg.ColumnsToPrint, []string{"columns-to-print", "columns"}},
		{&cfg.ClassColumnName, []string{"class-column-name", "class_column_name"}},
		{&cfg.TitleSuffix, []string{"title-suffix", "title_suffix"}},
		{&cfg.ModifyColumns, []string{"modify-columns"}},
		{&cfg.DateColumn, []string{"date-column"}},
		{&cfg.DateFormat, []string{"date-format"}},
		{&cfg.ShowPrintDate, []string{"show-print-date"}},
		{&cfg.ShowModifiedTime, []string{"show-modified-time"}},
		{&cfg.Orientation, []string{"orientation"}},
		{&cfg.UseExtraRow, []string{"use-extra-row"}},
	}

	for _, f := range fields {
		node, key, ok := lookup(raw, f.keys)
		if !ok {
			continue
		}
		if err := node.Decode(f.target); err != nil {
			return nil, &ConfigError{Path: path, Reason: fmt.Sprintf("invalid value for %q: %v", key, err)}
		}
	}

	applyDefaults(cfg)

	if cerr := validate(cfg); cerr != nil {
		cerr.Path = path
		return nil, cerr
	}

	return cfg, nil
}

// lookup returns the node for the first present spelling of a key.
func lookup(raw map[string]yaml.Node, keys []string) (*yaml.Node, string, bool) {
	for _, key := range keys {
		if node, ok := raw[key]; ok {
			return &node, key, true
		}
	}
	return nil, "", false
}

// missingRequired returns the primary spellings of all absent required keys.
func missingRequired(raw map[string]yaml.Node) []string {
	var missing []string
	for _, spellings := range requiredKeys {
		if _, _, ok := lookup(raw, spellings); !ok {
			missing = append(missing, spellings[0])
		}
	}
	return missing
}

// applyDefaults sets default values for any unset options.
func applyDefaults(cfg *Config) {
	if cfg.Orientation == "" {
		cfg.Orientation = "portrait"
	}
	if cfg.DateFormat == "" {
		cfg.DateFormat = "01/02/2006"
	}
}

// validate checks value-level constraints after decoding.
func validate(cfg *Config) *ConfigError {
	if cfg.Orientation != "portrait" && cfg.Orientation != "landscape" {
		return &ConfigError{Reason: fmt.Sprintf("invalid value for \"orientation\": %q (want portrait or landscape)", cfg.Orientation)}
	}
	if len(cfg.ColumnsToPrint) == 0 {
		return &ConfigError{Reason: "\"columns-to-print\" must list at least one column"}
	}
	for i, rule := range cfg.ModifyColumns {
		if rule.NewName == "" {
			return &ConfigError{Reason: fmt.Sprintf("\"modify-columns\" entry %d is missing \"new-name\"", i+1)}
		}
		if len(rule.OldColumns) == 0 {
			return &ConfigError{Reason: fmt.Sprintf("\"modify-columns\" entry %d is missing \"old-columns\"", i+1)}
		}
	}
	return nil
}
