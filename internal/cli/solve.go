package cli

import (
	"fmt"
	"strconv"

	"github.com/dshills/trisieve/internal/config"
	"github.com/dshills/trisieve/internal/output"
	"github.com/dshills/trisieve/internal/triangle"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Solve flags
var (
	flagTarget uint64
	flagFormat string
	flagOut    string
)

func addSolveFlags(fs *pflag.FlagSet) {
	fs.Uint64VarP(&flagTarget, "target", "t", 0, "Divisor count to exceed (default from config, 500)")
	fs.StringVar(&flagFormat, "format", "", "Output format (text, json)")
	fs.StringVarP(&flagOut, "out", "o", "", "Output file path (default: stdout)")
}

// buildOverrides collects explicitly set flags. A target of 0 is a valid
// request, so it is recorded whenever the flag was given.
func buildOverrides(fs *pflag.FlagSet) map[string]string {
	m := make(map[string]string)
	if f := fs.Lookup("target"); f != nil && f.Changed {
		m["target"] = strconv.FormatUint(flagTarget, 10)
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagVerbose {
		m["verbose"] = "true"
	}
	return m
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find the first triangular number with more than --target divisors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides(cmd.Flags()))
		if err != nil {
			return err
		}
		writer, err := output.GetWriter(cfg.Format)
		if err != nil {
			return err
		}
		runSolve(cmd, cfg, writer)
		return nil
	},
}

func runSolve(cmd *cobra.Command, cfg config.Config, writer output.Writer) {
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	var res triangle.Result
	if cfg.Verbose {
		res = triangle.Search(cfg.Target, logger)
	} else {
		res = triangle.Search(cfg.Target, nil)
	}

	var err error
	if flagOut != "" {
		err = output.WriteResult(&res, cfg.Format, flagOut)
	} else {
		err = writer.Write(cmd.OutOrStdout(), &res)
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
	}
}

func init() {
	addSolveFlags(solveCmd.Flags())
}
