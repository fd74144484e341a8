// =============================================================================
// Roster Printer - Table Reader
// =============================================================================
//
// This module parses the located spreadsheet into a roster table. The format
// is selected by file extension:
//   - ".csv"                              : delimited text via encoding/csv
//   - ".xlsx", ".xlsm", ".xltx", ".xltm"  : workbook formats via excelize
//
// Any other extension is an UnsupportedFormatError. For workbooks, only the
// first sheet is read.
//
// The first row is the header row. Headers are trimmed and empty headers are
// given positional names; fully empty data rows are skipped; short rows are
// padded with empty cells so every row has one cell per column.
//
// =============================================================================

package reader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/rosterprint/rosterprint/internal/roster"
)

// UnsupportedFormatError is returned when the located file's extension is not
// a recognized spreadsheet format.
type UnsupportedFormatError struct {
	// Path is the offending file.
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("file type not supported: %s", e.Path)
}

// workbookExtensions are the extensions routed to excelize.
var workbookExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

// Read parses the file at path into a roster table, dispatching on the file
// extension.
func Read(path string, log zerolog.Logger) (*roster.Table, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch {
	case ext == ".csv":
		log.Debug().Str("file", path).Msg("reading roster as CSV")
		return readCSV(path)
	case workbookExtensions[ext]:
		log.Debug().Str("file", path).Msg("reading roster as workbook")
		return readWorkbook(path)
	default:
		return nil, &UnsupportedFormatError{Path: path}
	}
}

// =============================================================================
// CSV READING
// =============================================================================

// readCSV reads a delimited text roster.
func readCSV(path string) (*roster.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Rosters exported by hand are often ragged; tolerate uneven rows and
	// loose quoting rather than rejecting the file.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	return buildTable(path, rows)
}

// =============================================================================
// WORKBOOK READING
// =============================================================================

// readWorkbook reads the first sheet of an Excel workbook.
func readWorkbook(path string) (*roster.Table, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return buildTable(path, rows)
}

// =============================================================================
// TABLE CONSTRUCTION
// =============================================================================

// buildTable turns raw rows into a roster table: first row becomes the
// headers, remaining non-empty rows become data.
func buildTable(path string, rows [][]string) (*roster.Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("roster file %s is empty", path)
	}

	table := roster.New(cleanHeaders(rows[0]))
	for _, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}
		for i, cell := range row {
			row[i] = strings.TrimSpace(cell)
		}
		if len(row) > len(table.Columns) {
			row = row[:len(table.Columns)]
		}
		table.AppendRow(row)
	}

	return table, nil
}

// cleanHeaders trims headers and names empty ones by position.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = header
	}
	return cleaned
}

// isRowEmpty reports whether a row contains only blank cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
