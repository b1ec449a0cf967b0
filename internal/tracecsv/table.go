package tracecsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
)

// Table is the flattened record collection plus its column registry. The first
// appended record defines the columns, in its own key order; later records may
// be missing columns (empty cell on emit) or carry extra keys (dropped on
// emit, since no column exists for them).
type Table struct {
	cols []string
	rows []*Record
}

// Append adds a flattened record to the table, capturing the column registry
// from the first record that has any keys.
func (t *Table) Append(rec *Record) {
	if len(t.cols) == 0 {
		t.cols = append(t.cols, rec.Keys()...)
	}
	t.rows = append(t.rows, rec)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Columns returns a copy of the column registry in capture order, including
// any derived rank columns.
func (t *Table) Columns() []string {
	return append([]string(nil), t.cols...)
}

// WriteCSV emits the table: a header row with all columns in lexicographic
// order, then one row per record in the table's current row order. A table
// with no rows produces no output at all, not even a header.
func (t *Table) WriteCSV(w io.Writer) error {
	if len(t.rows) == 0 {
		return nil
	}

	header := append([]string(nil), t.cols...)
	sort.Strings(header)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	cells := make([]string, len(header))
	for _, row := range t.rows {
		for i, col := range header {
			if v, ok := row.Get(col); ok {
				cells[i] = cellString(v)
			} else {
				cells[i] = ""
			}
		}
		if err := cw.Write(cells); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return nil
}
