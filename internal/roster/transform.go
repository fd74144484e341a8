// =============================================================================
// Roster Printer - Column Transformation
// =============================================================================
//
// This module applies the configured column merge rules to a roster table.
// A rule joins the values of one or more source columns into a single new
// column and drops the sources; a rule with a single source column is a
// rename. Rules are applied in order against the table as modified by the
// rules before them, so a later rule may reference a column created by an
// earlier one.
//
// =============================================================================

package roster

import "strings"

// =============================================================================
// MERGE RULE STRUCTURE
// =============================================================================

// MergeRule describes one column merge.
type MergeRule struct {
	// NewName is the name of the column to create. It must not already
	// exist in the table when the rule is applied.
	NewName string `yaml:"new-name"`

	// OldColumns are the source columns, joined in this order. A single
	// entry makes the rule a plain rename.
	OldColumns []string `yaml:"old-columns"`

	// Separator is placed between joined values. Defaults to a single
	// space when empty. Missing source values are skipped, so a row with
	// one present value carries no dangling separator.
	Separator string `yaml:"separator"`
}

// =============================================================================
// TRANSFORMATION
// =============================================================================

// Transform applies the merge rules to the table in order and returns the
// reshaped table. The input table is not modified. An empty rule list
// returns a copy equal to the input.
//
// Each rule:
//  1. Fails with DuplicateColumnError if NewName already exists.
//  2. Fails with MissingColumnError if any source column is absent.
//  3. Computes the merged value row-wise, joining non-empty source values
//     with the separator. A row with all sources missing yields "".
//  4. Drops the rule's source columns and appends the new column.
func Transform(t *Table, rules []MergeRule) (*Table, error) {
	result := t.Clone()

	for _, rule := range rules {
		if result.HasColumn(rule.NewName) {
			return nil, &DuplicateColumnError{Column: rule.NewName}
		}

		sources := make([]int, len(rule.OldColumns))
		for i, name := range rule.OldColumns {
			idx := result.ColumnIndex(name)
			if idx < 0 {
				return nil, &MissingColumnError{Column: name}
			}
			sources[i] = idx
		}

		sep := rule.Separator
		if sep == "" {
			sep = " "
		}

		merged := make([]string, len(result.Rows))
		for r, row := range result.Rows {
			var parts []string
			for _, idx := range sources {
				if row[idx] != "" {
					parts = append(parts, row[idx])
				}
			}
			merged[r] = strings.Join(parts, sep)
		}

		result = dropAndAppend(result, rule.OldColumns, rule.NewName, merged)
	}

	return result, nil
}

// dropAndAppend builds a new table without the dropped columns and with one
// extra column appended at the end.
func dropAndAppend(t *Table, drop []string, name string, values []string) *Table {
	dropped := make(map[string]bool, len(drop))
	for _, d := range drop {
		dropped[d] = true
	}

	var keep []int
	var columns []string
	for i, c := range t.Columns {
		if !dropped[c] {
			keep = append(keep, i)
			columns = append(columns, c)
		}
	}
	columns = append(columns, name)

	result := New(columns)
	result.Rows = make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		cells := make([]string, 0, len(keep)+1)
		for _, idx := range keep {
			cells = append(cells, row[idx])
		}
		cells = append(cells, values[r])
		result.Rows[r] = cells
	}
	return result
}
