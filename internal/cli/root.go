package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dshills/trisieve/internal/config"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:          "trisieve",
	Short:        "Find triangular numbers with many divisors",
	Long:         "Trisieve finds the first triangular number whose divisor count exceeds a threshold, using a growable prime sieve.",
	SilenceUsage: true,
}

// Run executes the root command and returns an exit code.
func Run() int {
	exitCode = ExitSuccess
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return exitCodeFor(err)
	}

	return exitCode
}

// runtimeError marks a failure that is not the caller's fault, such as a
// config file that cannot be read or written.
type runtimeError struct {
	err error
}

func (e *runtimeError) Error() string { return e.err.Error() }
func (e *runtimeError) Unwrap() error { return e.err }

// exitCodeFor maps a command error to an exit code. Config file failures and
// errors wrapped in runtimeError are runtime errors; everything else (bad
// flags, arguments, or values) is a usage error.
func exitCodeFor(err error) int {
	var rtErr *runtimeError
	var fileErr *config.FileError
	if errors.As(err, &rtErr) || errors.As(err, &fileErr) {
		return ExitRuntimeError
	}
	return ExitUsageError
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print trisieve version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "trisieve version %s\n", version)
	},
}

// newLogger returns a text logger on w. Verbose runs log sieve growth at
// debug level.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log sieve growth to stderr")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(divisorsCmd)
	rootCmd.AddCommand(primesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
