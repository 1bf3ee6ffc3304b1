package cli

import (
	"bufio"
	"fmt"

	"github.com/dshills/trisieve/internal/config"
	"github.com/dshills/trisieve/internal/sieve"
	"github.com/spf13/cobra"
)

var flagCountOnly bool

var primesCmd = &cobra.Command{
	Use:   "primes <n>",
	Short: "List the primes up to n",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildVerboseOverride())
		if err != nil {
			return err
		}
		nums, err := parseNumbers(args)
		if err != nil {
			return err
		}
		n := nums[0]
		if n > cfg.MaxSieveLimit {
			return fmt.Errorf("%d is above maxSieveLimit %d", n, cfg.MaxSieveLimit)
		}

		cache := sieve.New(newLogger(cmd.ErrOrStderr(), cfg.Verbose))
		cache.EnsureCovers(n)

		if flagCountOnly {
			count := 0
			cache.Each(func(p uint64) bool {
				if p > n {
					return false
				}
				count++
				return true
			})
			fmt.Fprintln(cmd.OutOrStdout(), count)
			return nil
		}

		w := bufio.NewWriter(cmd.OutOrStdout())
		cache.Each(func(p uint64) bool {
			if p > n {
				return false
			}
			fmt.Fprintln(w, p)
			return true
		})
		if err := w.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
		}
		return nil
	},
}

func init() {
	primesCmd.Flags().BoolVarP(&flagCountOnly, "count", "c", false, "Print only the number of primes")
}
