package cli

import (
	"fmt"
	"strconv"

	"github.com/dshills/trisieve/internal/config"
	"github.com/dshills/trisieve/internal/divisors"
	"github.com/dshills/trisieve/internal/output"
	"github.com/dshills/trisieve/internal/sieve"
	"github.com/spf13/cobra"
)

var divisorsCmd = &cobra.Command{
	Use:   "divisors <n>...",
	Short: "Count the divisors of each argument",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildVerboseOverride())
		if err != nil {
			return err
		}
		nums, err := parseNumbers(args)
		if err != nil {
			return err
		}
		for _, n := range nums {
			if n == 0 {
				return fmt.Errorf("0 has infinitely many divisors")
			}
			if root := sieve.ISqrt(n); root > cfg.MaxSieveLimit {
				return fmt.Errorf("%d needs a sieve up to %d, above maxSieveLimit %d", n, root, cfg.MaxSieveLimit)
			}
		}

		cache := sieve.New(newLogger(cmd.ErrOrStderr(), cfg.Verbose))
		for _, n := range nums {
			factors := divisors.Factorize(n, cache)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: d = %s (%s)\n",
				output.Comma(n),
				output.Comma(divisors.FromFactors(factors)),
				divisors.Format(factors),
			)
		}
		return nil
	},
}

func buildVerboseOverride() map[string]string {
	if flagVerbose {
		return map[string]string{"verbose": "true"}
	}
	return nil
}

func parseNumbers(args []string) ([]uint64, error) {
	nums := make([]uint64, 0, len(args))
	for _, a := range args {
		n, err := strconv.ParseUint(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: must be a non-negative integer", a)
		}
		nums = append(nums, n)
	}
	return nums, nil
}
