// =============================================================================
// Roster Printer - Session Partitioning
// =============================================================================
//
// This module splits a roster table into per-session groups. Rows are grouped
// by exact equality of the value in the class column; each distinct value
// becomes one session, in first-seen order, with the original row order
// preserved inside the group.
//
// =============================================================================

package roster

// Session is one partition of the roster: all rows sharing a single value of
// the class column.
type Session struct {
	// Key is the class column value shared by every row in the group.
	Key string

	// Table holds the session's rows, projected to the requested columns.
	Table *Table
}

// Partition splits the table into sessions on the class column.
//
// When columns is non-empty, each session table is projected to exactly
// those columns; otherwise it carries the full column set. Fails with
// MissingColumnError if the class column or any projected column is absent.
func Partition(t *Table, classColumn string, columns []string) ([]Session, error) {
	keys, err := t.Column(classColumn)
	if err != nil {
		return nil, err
	}

	projected := t
	if len(columns) > 0 {
		projected, err = t.Select(columns)
		if err != nil {
			return nil, err
		}
	}

	index := make(map[string]int)
	var sessions []Session
	for r, key := range keys {
		i, ok := index[key]
		if !ok {
			i = len(sessions)
			index[key] = i
			sessions = append(sessions, Session{Key: key, Table: New(projected.Columns)})
		}
		sessions[i].Table.AppendRow(projected.Rows[r])
	}

	return sessions, nil
}
