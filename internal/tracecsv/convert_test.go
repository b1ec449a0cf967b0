package tracecsv

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConvertEndToEnd(t *testing.T) {
	input := strings.Join([]string{
		"sampler starting up",
		"// VARS (ESTIMATED)",
		`{"State": {"x": 1}, "A-Error": "2.0"}`,
		`{"State": {"x": 2}, "A-Error": "1.0"}`,
		"// OPERATING PARAMS",
		`{"State": {"x": 3}, "A-Error": "0.0"}`,
	}, "\n")

	var out strings.Builder
	var notes []Derivation
	err := Convert(strings.NewReader(input), &out, Options{}, func(d Derivation) {
		notes = append(notes, d)
	})
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	want := strings.Join([]string{
		"A-Error,A-Error-RANK,x",
		"1.0,1,2",
		"2.0,2,1",
		"",
	}, "\n")
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("CSV mismatch (-want +got):\n%s", diff)
	}

	wantNotes := []Derivation{{Column: "A-Error-RANK", Source: "A-Error"}}
	if diff := cmp.Diff(wantNotes, notes); diff != "" {
		t.Fatalf("notes mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertHeaderIsSorted(t *testing.T) {
	input := strings.Join([]string{
		"// VARS (ESTIMATED)",
		`{"zeta": 1, "State": {"beta": 2}, "alpha": 3}`,
	}, "\n")

	var out strings.Builder
	if err := Convert(strings.NewReader(input), &out, Options{}, nil); err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %q", out.String())
	}
	if lines[0] != "alpha,beta,zeta" {
		t.Fatalf("header = %q, want alpha,beta,zeta", lines[0])
	}
}

func TestConvertEmptyInputEmitsNothing(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty stream", ""},
		{"no start marker", `{"State": {"x": 1}}`},
		{"marker with no records", "// VARS (ESTIMATED)\n// ENTIRE MODEL\n"},
	}
	for _, tc := range cases {
		var out strings.Builder
		if err := Convert(strings.NewReader(tc.input), &out, Options{}, nil); err != nil {
			t.Fatalf("%s: Convert returned error: %v", tc.name, err)
		}
		if out.Len() != 0 {
			t.Fatalf("%s: Convert wrote %q, want no output", tc.name, out.String())
		}
	}
}

func TestConvertMalformedRecordIsFatal(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"invalid JSON", "// VARS (ESTIMATED)\nnot json\n"},
		{"missing State", "// VARS (ESTIMATED)\n{\"a\": 1}\n"},
		{"State not an object", "// VARS (ESTIMATED)\n{\"State\": 3}\n"},
	}
	for _, tc := range cases {
		var out strings.Builder
		if err := Convert(strings.NewReader(tc.input), &out, Options{}, nil); err == nil {
			t.Fatalf("%s: Convert succeeded, want error", tc.name)
		}
	}
}

func TestConvertMissingCellsAreEmptyAndExtrasDropped(t *testing.T) {
	input := strings.Join([]string{
		"// VARS (ESTIMATED)",
		`{"State": {}, "a": "1", "b": "2"}`,
		`{"State": {}, "a": "3", "extra": "dropped"}`,
	}, "\n")

	var out strings.Builder
	if err := Convert(strings.NewReader(input), &out, Options{}, nil); err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	want := "a,b\n1,2\n3,\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("CSV mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertQuotesEmbeddedSpecials(t *testing.T) {
	input := strings.Join([]string{
		"// VARS (ESTIMATED)",
		`{"State": {}, "msg": "a,b \"quoted\""}`,
	}, "\n")

	var out strings.Builder
	if err := Convert(strings.NewReader(input), &out, Options{}, nil); err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	want := "msg\n\"a,b \"\"quoted\"\"\"\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("CSV mismatch (-want +got):\n%s", diff)
	}
}
