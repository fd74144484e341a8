// =============================================================================
// Roster Printer - Run Pipeline
// =============================================================================
//
// This module orchestrates one batch run end to end:
//
//   1. Locate the newest roster spreadsheet in the search directory.
//   2. Parse it into a table and record its modification time.
//   3. Apply the configured column merges.
//   4. Split the table into sessions and project the print columns.
//   5. Render every session into a PDF.
//   6. Dispatch the whole batch to the printer or viewer.
//
// Everything is sequential; any failure aborts the run. Sessions already
// handed to the dispatcher before a dispatch failure stay submitted - that
// inconsistency is accepted rather than rolled back.
//
// =============================================================================

package pipeline

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rosterprint/rosterprint/internal/config"
	"github.com/rosterprint/rosterprint/internal/dispatch"
	"github.com/rosterprint/rosterprint/internal/locator"
	"github.com/rosterprint/rosterprint/internal/reader"
	"github.com/rosterprint/rosterprint/internal/render"
	"github.com/rosterprint/rosterprint/internal/roster"
)

// Summary reports what a completed run produced.
type Summary struct {
	// Source is the spreadsheet that was printed.
	Source string

	// Sessions is the number of documents produced.
	Sessions int

	// Paths are the written document paths, in session order. Paths under
	// a transient working directory no longer exist once the run returns.
	Paths []string
}

// Run executes one batch run. A nil launcher uses the operating system's
// printer and viewer.
func Run(cfg *config.Config, mode dispatch.Mode, launcher dispatch.Launcher, log zerolog.Logger) (*Summary, error) {
	log = log.With().Str("run", uuid.NewString()).Logger()

	source, err := locator.FindLatest(cfg.SearchDir, cfg.SpreadsheetPattern, log)
	if err != nil {
		return nil, err
	}
	log.Info().Str("file", source).Msg("found roster spreadsheet")

	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", source, err)
	}

	table, err := reader.Read(source, log)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("rows", table.RowCount()).Strs("columns", table.Columns).Msg("parsed roster")

	table, err = roster.Transform(table, cfg.ModifyColumns)
	if err != nil {
		return nil, err
	}

	dateLabel, err := sessionDateLabel(table, cfg)
	if err != nil {
		return nil, err
	}

	sessions, err := roster.Partition(table, cfg.ClassColumnName, cfg.ColumnsToPrint)
	if err != nil {
		return nil, err
	}
	log.Info().Int("sessions", len(sessions)).Msg("partitioned roster")

	renderer := render.New(render.Options{
		Landscape:       cfg.Orientation == "landscape",
		ExtraRowColumns: cfg.UseExtraRow,
	}, render.Footer(render.FooterSegments{
		ShowPrintDate:    cfg.ShowPrintDate,
		ShowModifiedTime: cfg.ShowModifiedTime,
	}))

	// Metadata is computed once and shared; only the title varies per
	// session.
	meta := render.Metadata{
		SessionDateLabel: dateLabel,
		PrintTime:        time.Now(),
		DataModified:     info.ModTime(),
	}

	docs := make([]*render.Document, 0, len(sessions))
	for _, session := range sessions {
		meta.Title = sessionTitle(session.Key, cfg.TitleSuffix)
		log.Debug().Str("session", session.Key).Int("rows", session.Table.RowCount()).Msg("rendering session")

		doc, err := renderer.Render(session.Table, meta)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	paths, err := dispatch.New(mode, launcher, log).DispatchAll(docs)
	if err != nil {
		return nil, err
	}

	return &Summary{Source: source, Sessions: len(docs), Paths: paths}, nil
}

// sessionTitle joins the session key and the configured suffix.
func sessionTitle(key, suffix string) string {
	if suffix == "" {
		return key
	}
	return key + " " + suffix
}

// sessionDateLabel parses the first non-empty value of the configured date
// column and formats it with the configured layout. Returns "" when no date
// column is configured.
func sessionDateLabel(table *roster.Table, cfg *config.Config) (string, error) {
	if cfg.DateColumn == "" {
		return "", nil
	}

	values, err := table.Column(cfg.DateColumn)
	if err != nil {
		return "", err
	}

	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			continue
		}
		parsed, err := dateparse.ParseAny(value)
		if err != nil {
			return "", fmt.Errorf("cannot parse session date %q from column %q: %w", value, cfg.DateColumn, err)
		}
		return parsed.Format(cfg.DateFormat), nil
	}

	return "", nil
}
