package ui

import (
	"strings"
	"testing"

	"sift/internal/observ"
)

func TestTimingsRendersAllPhases(t *testing.T) {
	report := observ.Report{
		TotalMS: 3.5,
		Phases: []observ.PhaseReport{
			{Name: "scan", DurationMS: 2.0, Note: "10 records"},
			{Name: "rank", DurationMS: 1.0},
			{Name: "emit", DurationMS: 0.5},
		},
	}

	var out strings.Builder
	Timings(&out, report, false)

	got := out.String()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header + 3 phases + total, got %q", got)
	}
	if lines[0] != "timings:" {
		t.Fatalf("header = %q", lines[0])
	}
	for _, want := range []string{"scan", "rank", "emit", "total", "// 10 records"} {
		if !strings.Contains(got, want) {
			t.Fatalf("timings output %q missing %q", got, want)
		}
	}
}

func TestTimingsEmptyReport(t *testing.T) {
	var out strings.Builder
	Timings(&out, observ.Report{}, false)
	if out.Len() != 0 {
		t.Fatalf("empty report rendered %q", out.String())
	}
}
