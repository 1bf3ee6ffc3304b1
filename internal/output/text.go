package output

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"

	"github.com/dshills/trisieve/internal/triangle"
	"github.com/dustin/go-humanize"
)

// TextWriter outputs a human-readable report.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, res *triangle.Result) error {
	ew := &errWriter{w: w}

	ew.printf("First triangular number with more than %s divisors\n", Comma(res.Target))
	ew.println(strings.Repeat("─", 60))
	ew.printf("Value:     %s\n", Comma(res.Value))
	ew.printf("Index:     k = %s\n", Comma(res.K))
	ew.printf("Divisors:  %s\n", Comma(res.Divisors))
	ew.println(strings.Repeat("─", 60))
	ew.printf("Sieve:     limit %s, %s primes, %d extensions (%s)\n",
		Comma(res.CacheLimit),
		humanize.Comma(int64(res.PrimeCount)),
		res.Extensions,
		humanize.Bytes(res.CacheBytes),
	)

	return ew.err
}

// Comma formats v with thousands separators.
func Comma(v uint64) string {
	if v <= math.MaxInt64 {
		return humanize.Comma(int64(v))
	}
	return humanize.BigComma(new(big.Int).SetUint64(v))
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
