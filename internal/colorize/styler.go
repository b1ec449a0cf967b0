package colorize

import "github.com/fatih/color"

// Styler holds the configured styles for the parts of a diagnostic line.
// Construct one with NewStyler and pass it around explicitly; the package-global
// color.NoColor switch is never touched.
type Styler struct {
	path  *color.Color
	num   *color.Color
	delim *color.Color
}

// NewStyler builds a Styler with the fixed diagnostic palette: cyan underlined
// file path, green line/column numbers, bold colon delimiters. enabled decides
// once whether escape codes are emitted at all, so the same Styler works for
// terminals and for redirected output.
func NewStyler(enabled bool) *Styler {
	s := &Styler{
		path:  color.New(color.FgCyan, color.Underline),
		num:   color.New(color.FgGreen),
		delim: color.New(color.Bold),
	}
	for _, c := range []*color.Color{s.path, s.num, s.delim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}
