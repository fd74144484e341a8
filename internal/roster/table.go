// =============================================================================
// Roster Printer - Table Model
// =============================================================================
//
// This package contains the in-memory roster model shared by the reader,
// transformer, partitioner and renderer. A Table is an ordered sequence of
// named columns; every column holds one cell per row. Cells are strings, with
// the empty string standing in for a missing value.
//
// The Table is never mutated in place once built. Operations that reshape it
// (column merges, projections, partitioning) return new Tables.
//
// =============================================================================

package roster

import "fmt"

// =============================================================================
// ERRORS
// =============================================================================

// MissingColumnError is returned when an operation references a column that
// does not exist in the table.
type MissingColumnError struct {
	// Column is the name of the column that was not found.
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found in roster", e.Column)
}

// DuplicateColumnError is returned when a merge rule would create a column
// whose name already exists in the table.
type DuplicateColumnError struct {
	// Column is the name of the colliding column.
	Column string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("column %q already exists in roster", e.Column)
}

// =============================================================================
// TABLE STRUCTURE
// =============================================================================

// Table is an ordered collection of named columns with equal row counts.
type Table struct {
	// Columns holds the column names in presentation order.
	Columns []string

	// Rows holds the data rows. Each row has exactly one cell per column,
	// in column order. An empty string is a missing value.
	Rows [][]string
}

// New creates an empty table with the given columns.
func New(columns []string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// AppendRow adds a row to the table. The row must have one cell per column;
// short rows are padded with empty cells so the equal-row-count invariant
// holds even for ragged input.
func (t *Table) AppendRow(row []string) {
	cells := make([]string, len(t.Columns))
	copy(cells, row)
	t.Rows = append(t.Rows, cells)
}

// Cell returns the value at the given row for the named column.
// Returns an empty string if the column does not exist.
func (t *Table) Cell(row int, column string) string {
	idx := t.ColumnIndex(column)
	if idx < 0 || row < 0 || row >= len(t.Rows) {
		return ""
	}
	return t.Rows[row][idx]
}

// Column returns all values of the named column in row order.
func (t *Table) Column(name string) ([]string, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, &MissingColumnError{Column: name}
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values, nil
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	clone := New(t.Columns)
	clone.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		clone.Rows[i] = append([]string(nil), row...)
	}
	return clone
}

// Select returns a new table containing only the named columns, in the
// requested order. Row order is preserved. Returns MissingColumnError if any
// requested column is absent.
func (t *Table) Select(columns []string) (*Table, error) {
	indices := make([]int, len(columns))
	for i, name := range columns {
		idx := t.ColumnIndex(name)
		if idx < 0 {
			return nil, &MissingColumnError{Column: name}
		}
		indices[i] = idx
	}

	result := New(columns)
	result.Rows = make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		cells := make([]string, len(indices))
		for i, idx := range indices {
			cells[i] = row[idx]
		}
		result.Rows[r] = cells
	}
	return result, nil
}
