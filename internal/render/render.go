// =============================================================================
// Roster Printer - Document Renderer
// =============================================================================
//
// This module turns one session table plus run metadata into a formatted PDF
// document. The layout is the user-visible contract of the whole tool:
//
//   - Letter-sized pages, portrait or landscape.
//   - Centered title, then an optional centered session-date line, then a
//     fixed gap before the table.
//   - Header row in bold with a fill; data rows banded (alternating shading)
//     for readability.
//   - Extended mode: configured "extra row" columns are pulled out of the
//     normal row and rendered as one full-width row beneath it, emitted only
//     when at least one extra value is present. The spanning row takes its
//     parent row's band shade, so banding is computed per logical row, not
//     per emitted row.
//   - Optional footer, right-aligned in small italics, composed by a
//     caller-supplied FooterFunc.
//
// A session that would produce a blank document (no rows, or no printable
// columns) is rejected rather than printed.
//
// =============================================================================

package render

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/rosterprint/rosterprint/internal/roster"
)

// =============================================================================
// ERRORS
// =============================================================================

// ErrNoRows is returned for a session with no data rows. Printing a blank
// roster is never desired, so this aborts the run.
var ErrNoRows = errors.New("session has no rows")

// ErrNoColumns is returned when no normal (non-spanning) columns remain to
// render, either because the projection is empty or because every column was
// configured as an extra-row column.
var ErrNoColumns = errors.New("session has no printable columns")

// =============================================================================
// METADATA AND OPTIONS
// =============================================================================

// TimestampFormat is the layout for footer timestamps.
const TimestampFormat = "01/02/06, 15:04:05"

// Metadata carries the per-run values rendered into every session document.
// It is computed once per run and reused for each session.
type Metadata struct {
	// Title is the document title, shown centered at the top and used
	// (sanitized) for the output file name.
	Title string

	// SessionDateLabel is the formatted session date shown under the
	// title. Empty omits the line.
	SessionDateLabel string

	// PrintTime is when this run started.
	PrintTime time.Time

	// DataModified is the source spreadsheet's modification time.
	DataModified time.Time
}

// FooterFunc produces the footer text for a document. Returning an empty
// string omits the footer entirely.
type FooterFunc func(Metadata) string

// Options control the page and table layout shared by all sessions in a run.
type Options struct {
	// Landscape selects landscape orientation; portrait otherwise.
	Landscape bool

	// ExtraRowColumns are rendered as spanning rows instead of cells.
	ExtraRowColumns []string
}

// =============================================================================
// DOCUMENT
// =============================================================================

// Document is a rendered session ready for dispatch.
type Document struct {
	// Title is the unsanitized document title.
	Title string

	data []byte
}

// Bytes returns the PDF content.
func (d *Document) Bytes() []byte {
	return d.data
}

// FileName returns the sanitized file name for this document.
func (d *Document) FileName() string {
	return SafeFileName(d.Title) + ".pdf"
}

// =============================================================================
// RENDERER
// =============================================================================

// Layout constants, in points.
const (
	titleSize   = 24
	dateSize    = 14
	tableSize   = 12
	footerSize  = 8
	lineHeight  = 18
	titleGap    = 20
	footerSpace = 30
)

// Renderer renders session tables into documents.
type Renderer struct {
	opts   Options
	footer FooterFunc
}

// New creates a Renderer. The footer provider may be nil for no footer.
func New(opts Options, footer FooterFunc) *Renderer {
	if footer == nil {
		footer = func(Metadata) string { return "" }
	}
	return &Renderer{opts: opts, footer: footer}
}

// Render produces the PDF for one session.
func (r *Renderer) Render(session *roster.Table, meta Metadata) (*Document, error) {
	if len(session.Columns) == 0 {
		return nil, fmt.Errorf("rendering %q: %w", meta.Title, ErrNoColumns)
	}
	if session.RowCount() == 0 {
		return nil, fmt.Errorf("rendering %q: %w", meta.Title, ErrNoRows)
	}

	normal, extra := splitColumns(session.Columns, r.opts.ExtraRowColumns)
	if len(normal) == 0 {
		return nil, fmt.Errorf("rendering %q: every column is an extra-row column: %w", meta.Title, ErrNoColumns)
	}

	orientation := "P"
	if r.opts.Landscape {
		orientation = "L"
	}
	pdf := fpdf.New(orientation, "pt", "Letter", "")
	pdf.SetTitle(meta.Title, true)
	pdf.SetAutoPageBreak(true, footerSpace+lineHeight)

	if text := r.footer(meta); text != "" {
		pdf.SetFooterFunc(func() {
			pdf.SetY(-footerSpace)
			pdf.SetFont("Helvetica", "I", footerSize)
			pdf.CellFormat(0, footerSize+2, text, "", 0, "R", false, 0, "")
		})
	}

	pdf.AddPage()

	// Header block: title, optional date line, gap.
	pdf.SetFont("Helvetica", "", titleSize)
	pdf.CellFormat(0, titleSize+4, meta.Title, "", 1, "C", false, 0, "")
	if meta.SessionDateLabel != "" {
		pdf.SetFont("Helvetica", "", dateSize)
		pdf.CellFormat(0, dateSize+4, meta.SessionDateLabel, "", 1, "C", false, 0, "")
	}
	pdf.Ln(titleGap)

	r.renderTable(pdf, session, normal, extra)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering %q: %w", meta.Title, err)
	}
	return &Document{Title: meta.Title, data: buf.Bytes()}, nil
}

// renderTable draws the banded session table.
func (r *Renderer) renderTable(pdf *fpdf.Fpdf, session *roster.Table, normal, extra []int) {
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right
	colWidth := usable / float64(len(normal))

	pdf.SetFillColor(200, 200, 200)

	// Header row: bold, filled.
	pdf.SetFont("Helvetica", "B", tableSize)
	for _, idx := range normal {
		pdf.CellFormat(colWidth, lineHeight, session.Columns[idx], "", 0, "C", true, 0, "")
	}
	pdf.Ln(lineHeight)

	pdf.SetFont("Helvetica", "", tableSize)
	for rowIdx, row := range session.Rows {
		// Band shade follows the logical row index so a spanning row
		// matches its parent's shade.
		fill := rowIdx%2 == 1

		for _, idx := range normal {
			pdf.CellFormat(colWidth, lineHeight, row[idx], "", 0, "C", fill, 0, "")
		}
		pdf.Ln(lineHeight)

		if text := extraRowText(session, row, extra); text != "" {
			pdf.MultiCell(usable, lineHeight-4, text, "", "L", fill)
		}
	}
}

// splitColumns partitions the session's column indices into normal cells and
// extra-row columns, both in table order.
func splitColumns(columns []string, extraNames []string) (normal, extra []int) {
	isExtra := make(map[string]bool, len(extraNames))
	for _, name := range extraNames {
		isExtra[name] = true
	}
	for i, name := range columns {
		if isExtra[name] {
			extra = append(extra, i)
		} else {
			normal = append(normal, i)
		}
	}
	return normal, extra
}

// extraRowText builds the spanning-row content for one data row. Returns ""
// when every extra value is missing, in which case no spanning row is
// emitted.
func extraRowText(session *roster.Table, row []string, extra []int) string {
	var parts []string
	for _, idx := range extra {
		if row[idx] != "" {
			parts = append(parts, session.Columns[idx]+": "+row[idx])
		}
	}
	return strings.Join(parts, "; ")
}
