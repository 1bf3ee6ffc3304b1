// Trisieve finds the first triangular number whose divisor count exceeds a
// threshold.
//
// Triangular numbers are split into two coprime halves whose divisors are
// counted by trial division over a prime sieve that grows on demand.
//
// Usage:
//
//	trisieve solve                  # first triangular number with > 500 divisors
//	trisieve solve --target 5       # 28
//	trisieve solve --format json    # machine-readable result
//	trisieve divisors 28 360        # divisor counts with factorizations
//	trisieve primes 100 --count     # 25
//	trisieve config init            # write a default config file
package main
