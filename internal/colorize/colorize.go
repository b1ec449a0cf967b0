// Package colorize rewrites compiler diagnostic lines (path:line:col: message)
// with terminal colors. Lines that do not look like diagnostics pass through
// untouched, so the filter is safe to keep in a pipeline unconditionally.
package colorize

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// minFields is the minimum number of colon-delimited fields for a line to be
// treated as a diagnostic: path, line, column, and at least one message segment.
const minFields = 4

// maxLineSize caps the scanner buffer for a single input line.
const maxLineSize = 1 << 20

// Line recolors one diagnostic line and returns it. The line is trimmed of
// surrounding whitespace first; anything with fewer than minFields colon-delimited
// fields is returned as-is. Field values are never validated, so a line number
// that is not numeric still gets the number style.
func (s *Styler) Line(line string) string {
	line = strings.TrimSpace(line)

	flds := strings.Split(line, ":")
	if len(flds) < minFields {
		return line
	}

	styled := make([]string, len(flds))
	styled[0] = s.path.Sprint(flds[0])
	styled[1] = s.num.Sprint(flds[1])
	styled[2] = s.num.Sprint(flds[2])
	// Trailing fields are the message; a message may itself contain colons,
	// so everything past the column field is carried over untouched.
	copy(styled[3:], flds[3:])

	return strings.Join(styled, s.delim.Sprint(":"))
}

// Run streams r through the styler line by line, writing each result to w with
// a single trailing newline regardless of the input's line-ending style.
// It returns the number of lines processed.
func Run(r io.Reader, w io.Writer, s *Styler) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	bw := bufio.NewWriter(w)
	lines := 0
	for sc.Scan() {
		if _, err := bw.WriteString(s.Line(sc.Text())); err != nil {
			return lines, fmt.Errorf("writing output: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return lines, fmt.Errorf("writing output: %w", err)
		}
		lines++
	}
	if err := sc.Err(); err != nil {
		return lines, fmt.Errorf("reading input: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return lines, fmt.Errorf("writing output: %w", err)
	}
	return lines, nil
}
