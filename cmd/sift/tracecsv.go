package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sift/internal/observ"
	"sift/internal/tracecsv"
	"sift/internal/ui"
)

var traceCSVCmd = &cobra.Command{
	Use:   "tracecsv",
	Short: "Convert the estimated-vars section of a trace log to CSV",
	Long: `Reads a sampler trace log from stdin, extracts the JSON records between the
section markers, flattens each record's State object, derives rank columns
from -Error and -Convergence fields, and writes the table as CSV to stdout`,
	Args: cobra.NoArgs,
	RunE: runTraceCSV,
}

func init() {
	traceCSVCmd.Flags().String("start-marker", tracecsv.DefaultStartMarker, "line prefix opening the JSON records section")
	traceCSVCmd.Flags().StringArray("end-marker", []string{tracecsv.DefaultEndMarker}, "line prefix closing the section (repeatable)")
	traceCSVCmd.Flags().Int("max-record-size", tracecsv.DefaultMaxRecordSize, "maximum size of one record line in bytes")
}

// runTraceCSV executes the "tracecsv" command. CSV goes to stdout; one
// derivation note per rank column goes to stderr before that column's sort.
// Any malformed record aborts the run with a non-zero exit.
func runTraceCSV(cmd *cobra.Command, args []string) error {
	startMarker, err := cmd.Flags().GetString("start-marker")
	if err != nil {
		return fmt.Errorf("failed to get start-marker flag: %w", err)
	}
	endMarkers, err := cmd.Flags().GetStringArray("end-marker")
	if err != nil {
		return fmt.Errorf("failed to get end-marker flag: %w", err)
	}
	maxRecordSize, err := cmd.Flags().GetInt("max-record-size")
	if err != nil {
		return fmt.Errorf("failed to get max-record-size flag: %w", err)
	}
	timings, err := showTimings(cmd)
	if err != nil {
		return err
	}
	stderrColor, err := colorEnabled(cmd, os.Stderr)
	if err != nil {
		return err
	}

	opts := tracecsv.Options{
		StartMarker:   startMarker,
		EndMarkers:    endMarkers,
		MaxRecordSize: maxRecordSize,
	}
	notes := ui.NewNotes(os.Stderr, stderrColor)
	timer := observ.NewTimer()

	phase := timer.Begin("scan")
	table, err := tracecsv.ReadTable(os.Stdin, opts)
	if err != nil {
		return err
	}
	timer.End(phase, fmt.Sprintf("%d records", table.Len()))

	phase = timer.Begin("rank")
	err = table.DeriveRanks(func(d tracecsv.Derivation) {
		notes.Derivation(d.Column, d.Source, d.TieBreak)
	})
	timer.End(phase, "")
	if err != nil {
		return err
	}

	phase = timer.Begin("emit")
	err = table.WriteCSV(os.Stdout)
	timer.End(phase, "")
	if err != nil {
		return err
	}

	if timings {
		ui.Timings(os.Stderr, timer.Report(), stderrColor)
	}
	return nil
}
