// Package tracecsv extracts the JSON-records section of a sampler trace log,
// flattens each record's nested State object, derives rank columns from
// -Error and -Convergence fields, and emits the result as CSV.
package tracecsv

import (
	"fmt"
	"io"
)

// ReadTable scans the marker-delimited section of r, parses and flattens every
// record line, and returns the assembled table. Any malformed record aborts
// the read; there is no partial recovery.
func ReadTable(r io.Reader, opts Options) (*Table, error) {
	t := &Table{}
	err := ScanSection(r, opts, func(line string) error {
		rec, err := ParseRecord(line)
		if err != nil {
			return fmt.Errorf("malformed record %s: %w", snippet(line), err)
		}
		if err := rec.flattenState(); err != nil {
			return fmt.Errorf("record %s: %w", snippet(line), err)
		}
		t.Append(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Convert runs the full pipeline: read the section from r, derive rank
// columns, and write the CSV to w. notify is forwarded to DeriveRanks.
func Convert(r io.Reader, w io.Writer, opts Options, notify func(Derivation)) error {
	t, err := ReadTable(r, opts)
	if err != nil {
		return err
	}
	if err := t.DeriveRanks(notify); err != nil {
		return err
	}
	return t.WriteCSV(w)
}

// snippet quotes a record line for error messages, truncating long ones.
func snippet(line string) string {
	const max = 80
	if len(line) > max {
		return fmt.Sprintf("%q...", line[:max])
	}
	return fmt.Sprintf("%q", line)
}
