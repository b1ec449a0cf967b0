package ui

import (
	"strings"
	"testing"
)

func TestNotesPlainFormat(t *testing.T) {
	var out strings.Builder
	n := NewNotes(&out, false)

	n.Derivation("A-Error-RANK", "A-Error", "")
	n.Derivation("B-Convergence-RANK", "B-Convergence", "B-Error")

	want := "A-Error-RANK <= A-Error\nB-Convergence-RANK <= B-Convergence B-Error\n"
	if out.String() != want {
		t.Fatalf("plain notes = %q, want %q", out.String(), want)
	}
}

func TestNotesColoredKeepsColumnNames(t *testing.T) {
	var out strings.Builder
	n := NewNotes(&out, true)

	n.Derivation("A-Error-RANK", "A-Error", "")

	got := out.String()
	for _, part := range []string{"A-Error-RANK", "<=", "A-Error"} {
		if !strings.Contains(got, part) {
			t.Fatalf("colored note %q lost %q", got, part)
		}
	}
	if !strings.HasSuffix(got, "\n") {
		t.Fatalf("note not newline-terminated: %q", got)
	}
}
