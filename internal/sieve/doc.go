// Package sieve maintains a growable cache of primes backed by an
// incrementally extended sieve of Eratosthenes.
//
// A [Cache] starts empty (limit 1) and grows on demand through
// [Cache.EnsureCovers]. Growth doubles the covered limit at least, so a
// strictly increasing sequence of requests triggers a logarithmic number of
// extensions. Each extension only marks composites inside the newly added
// range, re-using every known odd prime up to the square root of the new
// limit. The cache never shrinks.
//
// A Cache is not safe for concurrent use. It is meant to be owned by a single
// caller and passed by pointer into the operations that need it.
package sieve
