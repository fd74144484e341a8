package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterprint/rosterprint/internal/config"
	"github.com/rosterprint/rosterprint/internal/dispatch"
	"github.com/rosterprint/rosterprint/internal/locator"
	"github.com/rosterprint/rosterprint/internal/roster"
)

// fakeLauncher records submissions instead of shelling out.
type fakeLauncher struct {
	printed []string
	opened  []string
}

func (f *fakeLauncher) Print(path string) error {
	f.printed = append(f.printed, path)
	return nil
}

func (f *fakeLauncher) Open(path string) error {
	f.opened = append(f.opened, path)
	return nil
}

// setup writes a roster CSV and a matching configuration, returning the
// loaded config and a retained working directory for the dispatcher.
func setup(t *testing.T, csvContent, extraConfig string) (*config.Config, dispatch.Mode) {
	t.Helper()
	searchDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(searchDir, "weekly_roster.csv"), []byte(csvContent), 0o644))

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
search-dir: ` + searchDir + `
spreadsheet-pattern: roster
columns-to-print: [Name, Phone]
class-column-name: Class
title-suffix: Roster
` + extraConfig
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cfg, err := config.Load(configPath)
	require.NoError(t, err)

	return cfg, dispatch.Mode{Destination: dispatch.Preview, WorkDir: t.TempDir()}
}

func TestRunProducesOneDocumentPerSession(t *testing.T) {
	cfg, mode := setup(t, "Name,Phone,Class\nAnn,555-0100,A\nBob,555-0101,A\nCal,555-0102,B\n", "")
	launcher := &fakeLauncher{}

	summary, err := Run(cfg, mode, launcher, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Sessions)
	require.Len(t, summary.Paths, 2)
	assert.Equal(t, "A Roster.pdf", filepath.Base(summary.Paths[0]))
	assert.Equal(t, "B Roster.pdf", filepath.Base(summary.Paths[1]))
	assert.Equal(t, summary.Paths, launcher.opened)
	assert.Empty(t, launcher.printed)

	for _, path := range summary.Paths {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "%PDF", string(data[:4]))
	}
}

func TestRunAppliesMergeRulesAndDateColumn(t *testing.T) {
	cfg, mode := setup(t,
		"First,Last,Phone,Class,Start Date\nAnn,Lee,555-0100,A,2026-03-14\nBob,Ray,555-0101,B,2026-03-14\n",
		`
modify-columns:
  - new-name: Name
    old-columns: [First, Last]
date-column: Start Date
date-format: "January 2, 2006"
show-print-date: true
`)
	launcher := &fakeLauncher{}

	summary, err := Run(cfg, mode, launcher, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Sessions)
}

func TestRunFailsWhenNoRosterMatches(t *testing.T) {
	cfg, mode := setup(t, "Name,Phone,Class\nAnn,555-0100,A\n", "")
	cfg.SpreadsheetPattern = "attendance"

	_, err := Run(cfg, mode, &fakeLauncher{}, zerolog.Nop())
	var notFound *locator.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestRunFailsOnMissingClassColumn(t *testing.T) {
	cfg, mode := setup(t, "Name,Phone,Session\nAnn,555-0100,A\n", "")

	_, err := Run(cfg, mode, &fakeLauncher{}, zerolog.Nop())
	var missing *roster.MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Class", missing.Column)
}

func TestRunFailsOnDuplicateMergeTarget(t *testing.T) {
	cfg, mode := setup(t, "Name,Phone,Class\nAnn,555-0100,A\n", `
modify-columns:
  - new-name: Name
    old-columns: [Phone]
`)

	_, err := Run(cfg, mode, &fakeLauncher{}, zerolog.Nop())
	var dup *roster.DuplicateColumnError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Name", dup.Column)
}

func TestRunFailsOnUnparseableDate(t *testing.T) {
	cfg, mode := setup(t, "Name,Phone,Class,When\nAnn,555-0100,A,whenever works\n", "date-column: When\n")

	_, err := Run(cfg, mode, &fakeLauncher{}, zerolog.Nop())
	require.ErrorContains(t, err, "cannot parse session date")
}

func TestSessionTitle(t *testing.T) {
	assert.Equal(t, "A Roster", sessionTitle("A", "Roster"))
	assert.Equal(t, "A", sessionTitle("A", ""))
}
