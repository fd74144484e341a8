package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
search-dir: ./rosters
spreadsheet-pattern: roster
columns-to-print: [Name, Phone]
class-column-name: Class
`

func TestLoadMinimalConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "./rosters", cfg.SearchDir)
	assert.Equal(t, "roster", cfg.SpreadsheetPattern)
	assert.Equal(t, []string{"Name", "Phone"}, cfg.ColumnsToPrint)
	assert.Equal(t, "Class", cfg.ClassColumnName)

	// Defaults.
	assert.Equal(t, "portrait", cfg.Orientation)
	assert.Equal(t, "01/02/2006", cfg.DateFormat)
	assert.False(t, cfg.ShowPrintDate)
}

func TestLoadMissingRequiredKeys(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing string
	}{
		{
			name:    "empty file",
			content: "{}",
			missing: "search-dir, spreadsheet-pattern, columns-to-print, class-column-name",
		},
		{
			name: "no pattern",
			content: `
search-dir: ./rosters
columns-to-print: [Name]
class-column-name: Class
`,
			missing: "spreadsheet-pattern",
		},
		{
			name: "no class column",
			content: `
search-dir: ./rosters
spreadsheet-pattern: roster
columns-to-print: [Name]
`,
			missing: "class-column-name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Contains(t, cerr.Reason, tt.missing)
		})
	}
}

func TestLoadAcceptsAliasKeys(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
search-dir: ./rosters
spreadsheet-pattern: roster
columns: [Name]
class_column_name: Session
title_suffix: Attendance
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Name"}, cfg.ColumnsToPrint)
	assert.Equal(t, "Session", cfg.ClassColumnName)
	assert.Equal(t, "Attendance", cfg.TitleSuffix)
}

func TestLoadFullConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
search-dir: ./rosters
spreadsheet-pattern: roster
columns-to-print: [Name, Phone, Notes]
class-column-name: Class
title-suffix: Roster
orientation: landscape
date-column: Start Date
date-format: "Monday, January 2"
show-print-date: true
show-modified-time: true
use-extra-row: [Notes]
modify-columns:
  - new-name: Name
    old-columns: [First, Last]
  - new-name: Contact
    old-columns: [Phone, Email]
    separator: " / "
`))
	require.NoError(t, err)

	assert.Equal(t, "landscape", cfg.Orientation)
	assert.Equal(t, "Start Date", cfg.DateColumn)
	assert.True(t, cfg.ShowPrintDate)
	assert.True(t, cfg.ShowModifiedTime)
	assert.Equal(t, []string{"Notes"}, cfg.UseExtraRow)

	require.Len(t, cfg.ModifyColumns, 2)
	assert.Equal(t, "Name", cfg.ModifyColumns[0].NewName)
	assert.Equal(t, []string{"First", "Last"}, cfg.ModifyColumns[0].OldColumns)
	assert.Equal(t, "", cfg.ModifyColumns[0].Separator)
	assert.Equal(t, " / ", cfg.ModifyColumns[1].Separator)
}

func TestLoadInvalidOrientation(t *testing.T) {
	_, err := Load(writeConfig(t, minimalConfig+"orientation: diagonal\n"))
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Reason, "orientation")
}

func TestLoadMergeRuleWithoutSources(t *testing.T) {
	_, err := Load(writeConfig(t, minimalConfig+`
modify-columns:
  - new-name: Name
`))
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Reason, "old-columns")
}

func TestLoadUnreadableFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Reason, "cannot read file")
}
