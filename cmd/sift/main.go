package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sift/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sift",
	Short: "Filters for build and trace logs",
	Long:  `sift recolors compiler diagnostic lines and converts sampler trace logs to CSV`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(colorCmd)
	rootCmd.AddCommand(traceCSVCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// colorEnabled resolves the persistent --color flag against the stream the
// styled output will go to.
func colorEnabled(cmd *cobra.Command, f *os.File) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "auto", "on", "off":
	default:
		return false, fmt.Errorf("unknown color mode %q (must be auto, on, or off)", colorFlag)
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f)), nil
}

// showTimings resolves the persistent --timings flag.
func showTimings(cmd *cobra.Command) (bool, error) {
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return false, fmt.Errorf("failed to get timings flag: %w", err)
	}
	return timings, nil
}
