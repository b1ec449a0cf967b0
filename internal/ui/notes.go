// Package ui renders the filters' human-facing stderr output: rank-derivation
// notes and phase timings, styled when attached to a terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Notes writes one line per derived rank column. Plain mode emits exactly
// "NEW <= SRC" (plus the tie-break column for composite keys), which is the
// format downstream tooling greps for; styled mode colors the column names
// without changing the words.
type Notes struct {
	w       io.Writer
	colored bool
	derived lipgloss.Style
	source  lipgloss.Style
	op      lipgloss.Style
}

// NewNotes returns a Notes writer targeting w.
func NewNotes(w io.Writer, colored bool) *Notes {
	return &Notes{
		w:       w,
		colored: colored,
		derived: lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		source:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		op:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Derivation writes the note for one rank column. tieBreak may be empty.
func (n *Notes) Derivation(column, source, tieBreak string) {
	if !n.colored {
		if tieBreak != "" {
			fmt.Fprintf(n.w, "%s <= %s %s\n", column, source, tieBreak)
		} else {
			fmt.Fprintf(n.w, "%s <= %s\n", column, source)
		}
		return
	}

	out := n.derived.Render(column) + " " + n.op.Render("<=") + " " + n.source.Render(source)
	if tieBreak != "" {
		out += " " + n.source.Render(tieBreak)
	}
	fmt.Fprintln(n.w, out)
}
