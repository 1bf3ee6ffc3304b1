package divisors

import (
	"fmt"
	"strings"

	"github.com/dshills/trisieve/internal/sieve"
)

// Factor is a prime raised to a positive exponent.
type Factor struct {
	Prime    uint64 `json:"prime"`
	Exponent uint64 `json:"exponent"`
}

func (f Factor) String() string {
	if f.Exponent == 1 {
		return fmt.Sprintf("%d", f.Prime)
	}
	return fmt.Sprintf("%d^%d", f.Prime, f.Exponent)
}

// Factorize returns the prime factorization of n in ascending order of
// primes, growing cache as needed. Factorize(0) and Factorize(1) return nil.
func Factorize(n uint64, cache *sieve.Cache) []Factor {
	if n < 2 {
		return nil
	}
	cache.EnsureCovers(sieve.ISqrt(n))

	var factors []Factor
	remaining := n
	cache.Each(func(p uint64) bool {
		// p*p > remaining, without overflowing for large p.
		if p > remaining/p {
			return false
		}
		if remaining%p != 0 {
			return true
		}
		var exp uint64
		for remaining%p == 0 {
			remaining /= p
			exp++
		}
		factors = append(factors, Factor{Prime: p, Exponent: exp})
		return remaining != 1
	})
	if remaining > 1 {
		factors = append(factors, Factor{Prime: remaining, Exponent: 1})
	}
	return factors
}

// Count returns the number of positive divisors of n. Count(1) is 1.
// It panics on n == 0, which has infinitely many divisors.
func Count(n uint64, cache *sieve.Cache) uint64 {
	if n == 0 {
		panic("divisors: Count(0) is undefined")
	}
	if n == 1 {
		return 1
	}
	return FromFactors(Factorize(n, cache))
}

// FromFactors returns the divisor count of the number with the given
// factorization, the product of (exponent+1) over all factors.
func FromFactors(factors []Factor) uint64 {
	total := uint64(1)
	for _, f := range factors {
		total = sieve.CheckedMul(total, f.Exponent+1)
	}
	return total
}

// Format renders a factorization as "2^2 * 7". An empty factorization
// renders as "1".
func Format(factors []Factor) string {
	if len(factors) == 0 {
		return "1"
	}
	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = f.String()
	}
	return strings.Join(parts, " * ")
}
