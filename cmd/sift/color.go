package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sift/internal/colorize"
	"sift/internal/observ"
	"sift/internal/ui"
)

var colorCmd = &cobra.Command{
	Use:   "color",
	Short: "Recolor compiler diagnostic lines from stdin",
	Long: `Reads build output from stdin and rewrites path:line:col: diagnostic lines
with terminal colors; anything else passes through unchanged`,
	Args: cobra.NoArgs,
	RunE: runColor,
}

// runColor executes the "color" command: it builds a Styler from the --color
// flag and streams stdin to stdout line by line. Unrecognized lines are never
// an error; only an I/O failure produces a non-zero exit.
func runColor(cmd *cobra.Command, args []string) error {
	useColor, err := colorEnabled(cmd, os.Stdout)
	if err != nil {
		return err
	}
	timings, err := showTimings(cmd)
	if err != nil {
		return err
	}

	styler := colorize.NewStyler(useColor)

	// color.Output is the colorable stdout wrapper; it performs the ANSI
	// translation needed on Windows consoles.
	out := io.Writer(os.Stdout)
	if useColor {
		out = color.Output
	}

	timer := observ.NewTimer()
	phase := timer.Begin("stream")
	lines, err := colorize.Run(os.Stdin, out, styler)
	timer.End(phase, fmt.Sprintf("%d lines", lines))
	if err != nil {
		return err
	}

	if timings {
		stderrColor, err := colorEnabled(cmd, os.Stderr)
		if err != nil {
			return err
		}
		ui.Timings(os.Stderr, timer.Report(), stderrColor)
	}
	return nil
}
