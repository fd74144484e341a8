package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterprint/rosterprint/internal/roster"
)

func sessionTable() *roster.Table {
	t := roster.New([]string{"Name", "Phone", "Notes"})
	t.AppendRow([]string{"Ann", "555-0100", "vegetarian"})
	t.AppendRow([]string{"Bob", "555-0101", ""})
	t.AppendRow([]string{"Cal", "", "needs ride"})
	return t
}

func metadata() Metadata {
	return Metadata{
		Title:        "A Roster",
		PrintTime:    time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local),
		DataModified: time.Date(2026, 3, 13, 17, 0, 0, 0, time.Local),
	}
}

func TestRenderSimpleMode(t *testing.T) {
	r := New(Options{}, nil)

	doc, err := r.Render(sessionTable(), metadata())
	require.NoError(t, err)

	assert.Equal(t, "A Roster", doc.Title)
	assert.Equal(t, "A Roster.pdf", doc.FileName())
	require.NotEmpty(t, doc.Bytes())
	assert.Equal(t, "%PDF", string(doc.Bytes()[:4]))
}

func TestRenderWithDateLineAndFooter(t *testing.T) {
	r := New(Options{Landscape: true}, Footer(FooterSegments{ShowPrintDate: true}))

	meta := metadata()
	meta.SessionDateLabel = "Saturday, March 14"

	doc, err := r.Render(sessionTable(), meta)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(doc.Bytes()[:4]))
}

func TestRenderExtendedMode(t *testing.T) {
	r := New(Options{ExtraRowColumns: []string{"Notes"}}, nil)

	doc, err := r.Render(sessionTable(), metadata())
	require.NoError(t, err)
	require.NotEmpty(t, doc.Bytes())
}

func TestRenderZeroRowsFails(t *testing.T) {
	r := New(Options{}, nil)

	_, err := r.Render(roster.New([]string{"Name"}), metadata())
	require.ErrorIs(t, err, ErrNoRows)
}

func TestRenderNoColumnsFails(t *testing.T) {
	r := New(Options{}, nil)

	empty := roster.New(nil)
	empty.Rows = [][]string{{}}
	_, err := r.Render(empty, metadata())
	require.ErrorIs(t, err, ErrNoColumns)
}

func TestRenderAllColumnsExtraFails(t *testing.T) {
	r := New(Options{ExtraRowColumns: []string{"Name", "Phone", "Notes"}}, nil)

	_, err := r.Render(sessionTable(), metadata())
	require.ErrorIs(t, err, ErrNoColumns)
}

func TestSplitColumns(t *testing.T) {
	normal, extra := splitColumns([]string{"Name", "Phone", "Notes"}, []string{"Notes"})
	assert.Equal(t, []int{0, 1}, normal)
	assert.Equal(t, []int{2}, extra)

	normal, extra = splitColumns([]string{"Name"}, nil)
	assert.Equal(t, []int{0}, normal)
	assert.Empty(t, extra)
}

func TestExtraRowText(t *testing.T) {
	table := sessionTable()
	_, extra := splitColumns(table.Columns, []string{"Notes"})

	// Non-missing extra value produces a spanning row.
	assert.Equal(t, "Notes: vegetarian", extraRowText(table, table.Rows[0], extra))
	// Missing extra value produces no spanning row.
	assert.Equal(t, "", extraRowText(table, table.Rows[1], extra))
}

func TestFooterSegments(t *testing.T) {
	meta := metadata()

	tests := []struct {
		name     string
		segments FooterSegments
		expected string
	}{
		{
			name:     "none enabled omits footer",
			segments: FooterSegments{},
			expected: "",
		},
		{
			name:     "print date only",
			segments: FooterSegments{ShowPrintDate: true},
			expected: "printed 03/14/26, 09:26:53",
		},
		{
			name:     "modified time only",
			segments: FooterSegments{ShowModifiedTime: true},
			expected: "data modified 03/13/26, 17:00:00",
		},
		{
			name:     "both joined with comma",
			segments: FooterSegments{ShowPrintDate: true, ShowModifiedTime: true},
			expected: "printed 03/14/26, 09:26:53, data modified 03/13/26, 17:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Footer(tt.segments)(meta))
		})
	}
}

func TestSafeFileName(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"plain", "A Roster", "A Roster"},
		{"slash", "A/B Roster", "A_B Roster"},
		{"windows reserved", `Mon: 9*? "AM"`, "Mon_ 9__ _AM_"},
		{"trailing dot", "Roster.", "Roster"},
		{"empty", "", "roster"},
		{"backslashes", `a\b`, "a_b"},
		{"only dots and spaces", " . ", "roster"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SafeFileName(tt.title))
		})
	}
}
