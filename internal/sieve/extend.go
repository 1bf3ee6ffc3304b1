package sieve

import "log/slog"

// extend grows the sieve from c.limit to newLimit. Only slots in
// (c.limit, newLimit] are touched; earlier classifications are never cleared.
func (c *Cache) extend(newLimit uint64) {
	old := c.limit
	first := old + 1

	grown := make([]Class, newLimit-old)
	for i := range grown {
		grown[i] = Candidate
	}
	c.class = append(c.class, grown...)
	c.class[0] = Composite
	c.class[1] = Composite

	// Even numbers above 2.
	e := max(first, 4)
	if e%2 == 1 {
		e++
	}
	for ; e <= newLimit; e += 2 {
		c.class[e] = Composite
	}

	// Every odd prime up to the root, including ones found in earlier
	// extensions, may still have multiples in the new range.
	root := ISqrt(newLimit)
	for p := uint64(3); p <= root; p += 2 {
		if c.class[p] != Candidate {
			continue
		}
		start := max(first, p*p)
		m := (start + p - 1) / p * p
		if m%2 == 0 {
			m += p
		}
		step := 2 * p
		for ; m <= newLimit; m += step {
			c.class[m] = Composite
		}
	}

	if first <= 2 && newLimit >= 2 {
		c.primes = append(c.primes, 2)
	}
	i := max(first, 3)
	if i%2 == 0 {
		i++
	}
	for ; i <= newLimit; i += 2 {
		if c.class[i] == Candidate {
			c.primes = append(c.primes, i)
		}
	}

	c.limit = newLimit
	c.extensions++
	c.logger.Debug("sieve extended",
		slog.Uint64("old_limit", old),
		slog.Uint64("new_limit", newLimit),
		slog.Int("primes", len(c.primes)),
		slog.Int("extensions", c.extensions),
	)
}
