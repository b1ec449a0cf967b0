package tracecsv

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Default section markers for sampler trace logs. The producer closes the
// estimated-vars section with another "// "-prefixed header ("// OPERATING
// PARAMS", "// ENTIRE MODEL", ...), so a bare comment prefix is the default
// terminator and subsumes all of them.
const (
	DefaultStartMarker   = "// VARS (ESTIMATED)"
	DefaultEndMarker     = "// "
	DefaultMaxRecordSize = 1 << 20
)

// Options configures the section scan.
type Options struct {
	// StartMarker is the line prefix that opens the record region.
	StartMarker string
	// EndMarkers are line prefixes that close the region; the first match
	// stops the scan immediately.
	EndMarkers []string
	// MaxRecordSize caps the scanner buffer for a single record line.
	MaxRecordSize int
}

func (o Options) withDefaults() Options {
	if o.StartMarker == "" {
		o.StartMarker = DefaultStartMarker
	}
	if len(o.EndMarkers) == 0 {
		o.EndMarkers = []string{DefaultEndMarker}
	}
	if o.MaxRecordSize <= 0 {
		o.MaxRecordSize = DefaultMaxRecordSize
	}
	return o
}

// ScanSection streams r and calls fn for every non-blank line between the
// start marker and the first end marker. Lines before the start marker are
// discarded; once an end marker is seen the scan stops and the rest of the
// input is left unread. An error from fn aborts the scan.
func ScanSection(r io.Reader, opts Options, fn func(line string) error) error {
	opts = opts.withDefaults()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), opts.MaxRecordSize)

	started := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if !started {
			if strings.HasPrefix(line, opts.StartMarker) {
				started = true
			}
			continue
		}

		if matchesAny(line, opts.EndMarkers) {
			return nil
		}

		if err := fn(line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func matchesAny(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
