package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"sift/internal/observ"
)

// Timings renders a phase-timing report, one aligned line per phase plus a
// total. Does nothing for an empty report.
func Timings(w io.Writer, report observ.Report, colored bool) {
	if len(report.Phases) == 0 {
		return
	}

	header := "timings:"
	if colored {
		header = lipgloss.NewStyle().Bold(true).Render(header)
	}
	fmt.Fprintln(w, header)

	width := runewidth.StringWidth("total")
	for _, p := range report.Phases {
		if pw := runewidth.StringWidth(p.Name); pw > width {
			width = pw
		}
	}

	for _, p := range report.Phases {
		line := fmt.Sprintf("  %s %7.2f ms", runewidth.FillRight(p.Name, width), p.DurationMS)
		if p.Note != "" {
			line += "  // " + p.Note
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "  %s %7.2f ms\n", runewidth.FillRight("total", width), report.TotalMS)
}
