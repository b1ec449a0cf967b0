package tracecsv

import (
	"fmt"
	"sort"
	"strings"
)

const (
	errorSuffix       = "-Error"
	convergenceSuffix = "-Convergence"
	rankSuffix        = "-RANK"
)

// Derivation describes one rank column about to be computed.
type Derivation struct {
	// Column is the derived rank column name.
	Column string
	// Source is the column whose numeric value drives the sort.
	Source string
	// TieBreak is the companion error column used as the secondary sort key
	// for -Convergence sources; empty otherwise.
	TieBreak string
}

// DeriveRanks appends a 1-based rank column for every -Error and -Convergence
// column in the registry. Each pass re-sorts the whole row collection by its
// own key, so the table's final row order is whatever the last sort produced;
// only the rank values captured during each pass are stable.
//
// notify, when non-nil, receives each derivation before its sort runs.
func (t *Table) DeriveRanks(notify func(Derivation)) error {
	// Index walk: rank columns appended mid-loop are visited too, but a
	// -RANK name never matches either suffix.
	for i := 0; i < len(t.cols); i++ {
		col := t.cols[i]

		var d Derivation
		switch {
		case strings.HasSuffix(col, errorSuffix):
			d = Derivation{Column: col + rankSuffix, Source: col}
		case strings.HasSuffix(col, convergenceSuffix):
			d = Derivation{
				Column:   col + rankSuffix,
				Source:   col,
				TieBreak: strings.ReplaceAll(col, convergenceSuffix, errorSuffix),
			}
		default:
			continue
		}

		if notify != nil {
			notify(d)
		}
		if err := t.sortForRank(d); err != nil {
			return err
		}

		t.cols = append(t.cols, d.Column)
		for pos, row := range t.rows {
			row.Set(d.Column, pos+1)
		}
	}
	return nil
}

// sortForRank stable-sorts the rows ascending by the derivation's key. All
// values are parsed before sorting so a non-numeric field fails cleanly
// instead of mid-sort.
func (t *Table) sortForRank(d Derivation) error {
	type keyed struct {
		row       *Record
		primary   float64
		secondary float64
	}

	keys := make([]keyed, len(t.rows))
	for i, row := range t.rows {
		p, err := row.floatField(d.Source)
		if err != nil {
			return fmt.Errorf("computing %s: %w", d.Column, err)
		}
		keys[i] = keyed{row: row, primary: p}
		if d.TieBreak != "" {
			s, err := row.floatField(d.TieBreak)
			if err != nil {
				return fmt.Errorf("computing %s: %w", d.Column, err)
			}
			keys[i].secondary = s
		}
	}

	sort.SliceStable(keys, func(a, b int) bool {
		if keys[a].primary != keys[b].primary {
			return keys[a].primary < keys[b].primary
		}
		if d.TieBreak == "" {
			return false
		}
		return keys[a].secondary < keys[b].secondary
	})

	for i := range keys {
		t.rows[i] = keys[i].row
	}
	return nil
}
