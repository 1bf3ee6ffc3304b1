package sieve

import (
	"fmt"
	"math"
	"math/bits"
)

// ISqrt returns the largest r such that r*r <= n.
//
// The float estimate can be off by one near perfect squares (and by more for
// very large n), so it is corrected in both directions by integer comparison.
func ISqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}
	r := uint64(math.Sqrt(float64(n)))
	// 2^32 squared no longer fits in a uint64.
	if r > math.MaxUint32 {
		r = math.MaxUint32
	}
	for r*r > n {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// CheckedMul returns a*b and panics if the product overflows a uint64.
func CheckedMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		panic(fmt.Sprintf("sieve: uint64 overflow computing %d * %d", a, b))
	}
	return lo
}
