package divisors

import (
	"testing"

	"github.com/dshills/trisieve/internal/sieve"
)

func countBrute(n uint64) uint64 {
	var c uint64
	for d := uint64(1); d*d <= n; d++ {
		if n%d == 0 {
			c++
			if d*d != n {
				c++
			}
		}
	}
	return c
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func TestCount_KnownValues(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint64
	}{
		{1, 1},
		{2, 2},
		{13, 2},
		{28, 6},
		{36, 9},
		{97, 2},
		{100, 9},
		{1024, 11},
		{76576500, 576},
		{600851475143, 16},
	}
	cache := sieve.New(nil)
	for _, tt := range tests {
		if got := Count(tt.n, cache); got != tt.want {
			t.Errorf("Count(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestCount_MatchesBruteForce(t *testing.T) {
	cache := sieve.New(nil)
	for n := uint64(1); n <= 3000; n++ {
		if got, want := Count(n, cache), countBrute(n); got != want {
			t.Fatalf("Count(%d) = %d, want %d", n, got, want)
		}
	}
	if err := cache.Verify(); err != nil {
		t.Errorf("cache invariant broken: %v", err)
	}
}

func TestCount_Multiplicative(t *testing.T) {
	cache := sieve.New(nil)
	pairs := [][2]uint64{{4, 9}, {7, 8}, {25, 36}, {1, 97}, {125, 128}, {1001, 1024}}
	for _, p := range pairs {
		a, b := p[0], p[1]
		if gcd(a, b) != 1 {
			t.Fatalf("test pair %d, %d is not coprime", a, b)
		}
		if got, want := Count(a*b, cache), Count(a, cache)*Count(b, cache); got != want {
			t.Errorf("Count(%d*%d) = %d, want %d", a, b, got, want)
		}
	}
}

func TestCount_GrowsCacheToRoot(t *testing.T) {
	cache := sieve.New(nil)
	if got := Count(1, cache); got != 1 {
		t.Fatalf("Count(1) = %d", got)
	}
	if cache.Limit() != 1 {
		t.Errorf("Count(1) grew the cache to %d", cache.Limit())
	}

	Count(10000, cache)
	if cache.Limit() < 100 {
		t.Errorf("Limit() = %d after Count(10000), want >= 100", cache.Limit())
	}
}

func TestCount_LargeResidualPrime(t *testing.T) {
	cache := sieve.New(nil)
	// 2 * 1000003, the large prime is found as the leftover.
	if got := Count(2000006, cache); got != 4 {
		t.Errorf("Count(2000006) = %d, want 4", got)
	}
	// 1000003^2 needs the cache to reach the root exactly.
	if got := Count(1000003*1000003, cache); got != 3 {
		t.Errorf("Count(1000003^2) = %d, want 3", got)
	}
}

func TestCount_ZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Count(0) should panic")
		}
	}()
	Count(0, sieve.New(nil))
}

func TestFactorize(t *testing.T) {
	cache := sieve.New(nil)
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "1"},
		{1, "1"},
		{2, "2"},
		{28, "2^2 * 7"},
		{360, "2^3 * 3^2 * 5"},
		{76576500, "2^2 * 3^2 * 5^3 * 7 * 11 * 13 * 17"},
		{600851475143, "71 * 839 * 1471 * 6857"},
	}
	for _, tt := range tests {
		if got := Format(Factorize(tt.n, cache)); got != tt.want {
			t.Errorf("Factorize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFromFactors(t *testing.T) {
	if got := FromFactors(nil); got != 1 {
		t.Errorf("FromFactors(nil) = %d, want 1", got)
	}
	factors := []Factor{{Prime: 2, Exponent: 2}, {Prime: 7, Exponent: 1}}
	if got := FromFactors(factors); got != 6 {
		t.Errorf("FromFactors(2^2 * 7) = %d, want 6", got)
	}
}
