package triangle

import (
	"log/slog"

	"github.com/dshills/trisieve/internal/divisors"
	"github.com/dshills/trisieve/internal/sieve"
)

// Result describes the outcome of a search.
type Result struct {
	Target     uint64 `json:"target"`
	K          uint64 `json:"k"`
	Value      uint64 `json:"value"`
	Divisors   uint64 `json:"divisors"`
	CacheLimit uint64 `json:"cacheLimit"`
	PrimeCount int    `json:"primeCount"`
	Extensions int    `json:"extensions"`
	CacheBytes uint64 `json:"cacheBytes"`
}

// Value returns T(k). It panics if the result overflows a uint64.
func Value(k uint64) uint64 {
	a, b := Parts(k)
	return sieve.CheckedMul(a, b)
}

// Parts splits T(k) into two coprime factors whose product is T(k).
func Parts(k uint64) (uint64, uint64) {
	if k%2 == 0 {
		return k / 2, k + 1
	}
	return k, (k + 1) / 2
}

// Solve returns the smallest triangular number with more than target divisors.
func Solve(target uint64) uint64 {
	return Search(target, nil).Value
}

// Search runs the solver with a fresh prime cache and reports the winning
// index along with the cache coverage it needed. A nil logger discards
// cache growth events.
func Search(target uint64, logger *slog.Logger) Result {
	cache := sieve.New(logger)
	for k := uint64(1); ; k++ {
		a, b := Parts(k)
		d := sieve.CheckedMul(divisors.Count(a, cache), divisors.Count(b, cache))
		if d <= target {
			continue
		}
		stats := cache.GetStats()
		res := Result{
			Target:     target,
			K:          k,
			Value:      sieve.CheckedMul(a, b),
			Divisors:   d,
			CacheLimit: stats.Limit,
			PrimeCount: stats.Primes,
			Extensions: stats.Extensions,
			CacheBytes: stats.Bytes,
		}
		if logger != nil {
			logger.Info("search complete",
				slog.Uint64("target", target),
				slog.Uint64("k", k),
				slog.Uint64("value", res.Value),
				slog.Uint64("divisors", d),
			)
		}
		return res
	}
}
