// Package divisors counts the divisors of an integer by trial division over
// a [sieve.Cache].
//
// The cache is grown to cover floor(sqrt(n)) before factorizing n. Any prime
// factor above that bound can appear at most once and is whatever remains
// after dividing out the smaller primes.
package divisors
