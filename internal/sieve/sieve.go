package sieve

import (
	"fmt"
	"io"
	"log/slog"
	"math"
)

// Class is the primality classification of a single integer in the sieve.
type Class uint8

const (
	// Composite marks an integer ruled out as prime. 0 and 1 are always Composite.
	Composite Class = iota
	// Candidate marks an integer that survived sieving and is therefore prime.
	Candidate
)

func (c Class) String() string {
	switch c {
	case Composite:
		return "composite"
	case Candidate:
		return "candidate"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

// Cache is a growable prime cache. The zero value is not usable; call [New].
type Cache struct {
	limit      uint64
	class      []Class
	primes     []uint64
	extensions int
	logger     *slog.Logger
}

// Stats describes the current coverage of a Cache.
type Stats struct {
	Limit      uint64 `json:"limit"`
	Primes     int    `json:"primes"`
	Extensions int    `json:"extensions"`
	Bytes      uint64 `json:"bytes"`
}

// New creates an empty Cache covering nothing (limit 1). A nil logger
// discards growth events.
func New(logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Cache{
		limit:  1,
		class:  []Class{Composite, Composite},
		logger: logger,
	}
}

// EnsureCovers guarantees Limit() >= n. It is a no-op when n is already
// covered; otherwise the cache grows to max(n, 2*Limit()).
func (c *Cache) EnsureCovers(n uint64) {
	if n <= c.limit {
		return
	}
	doubled := uint64(math.MaxUint64)
	if c.limit <= math.MaxUint64/2 {
		doubled = c.limit * 2
	}
	c.extend(max(n, doubled))
}

// Limit returns the largest integer whose primality has been determined.
func (c *Cache) Limit() uint64 {
	return c.limit
}

// Primes returns a copy of every prime <= Limit(), ascending.
func (c *Cache) Primes() []uint64 {
	out := make([]uint64, len(c.primes))
	copy(out, c.primes)
	return out
}

// PrimeCount returns the number of primes <= Limit().
func (c *Cache) PrimeCount() int {
	return len(c.primes)
}

// Extensions returns how many times the sieve has been grown.
func (c *Cache) Extensions() int {
	return c.extensions
}

// IsPrime reports whether n is prime. It panics if n > Limit(); callers must
// grow the cache first.
func (c *Cache) IsPrime(n uint64) bool {
	if n > c.limit {
		panic(fmt.Sprintf("sieve: IsPrime(%d) beyond cache limit %d", n, c.limit))
	}
	return c.class[n] == Candidate
}

// Each calls fn for every cached prime in ascending order until fn returns
// false. fn must not grow the cache.
func (c *Cache) Each(fn func(p uint64) bool) {
	for _, p := range c.primes {
		if !fn(p) {
			return
		}
	}
}

// GetStats returns the current coverage of the cache.
func (c *Cache) GetStats() Stats {
	return Stats{
		Limit:      c.limit,
		Primes:     len(c.primes),
		Extensions: c.extensions,
		Bytes:      uint64(cap(c.class)) + uint64(cap(c.primes))*8,
	}
}

// Verify checks that the classification buffer and the prime list agree over
// [2, Limit()] and that the prime list is strictly ascending. It returns the
// first violation found.
func (c *Cache) Verify() error {
	if uint64(len(c.class)) != c.limit+1 {
		return fmt.Errorf("buffer length %d, want %d", len(c.class), c.limit+1)
	}
	if c.class[0] != Composite || c.class[1] != Composite {
		return fmt.Errorf("slots 0 and 1 must be composite")
	}
	next := 0
	for i := uint64(2); i <= c.limit; i++ {
		listed := next < len(c.primes) && c.primes[next] == i
		switch {
		case c.class[i] == Candidate && !listed:
			return fmt.Errorf("%d is a candidate but missing from the prime list", i)
		case c.class[i] == Composite && listed:
			return fmt.Errorf("%d is composite but listed as prime", i)
		}
		if listed {
			next++
		}
	}
	if next != len(c.primes) {
		return fmt.Errorf("prime list has %d entries beyond the limit or out of order", len(c.primes)-next)
	}
	return nil
}
