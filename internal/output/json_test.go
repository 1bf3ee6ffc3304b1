package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dshills/trisieve/internal/triangle"
)

func sampleResult() *triangle.Result {
	return &triangle.Result{
		Target:     500,
		K:          12375,
		Value:      76576500,
		Divisors:   576,
		CacheLimit: 128,
		PrimeCount: 31,
		Extensions: 7,
		CacheBytes: 1400,
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONWriter{}
	if err := w.Write(&buf, sampleResult()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var parsed triangle.Result
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if parsed != *sampleResult() {
		t.Errorf("parsed = %+v, want %+v", parsed, *sampleResult())
	}

	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"target", "k", "value", "divisors", "cacheLimit", "primeCount", "extensions", "cacheBytes"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("JSON missing key %q", key)
		}
	}
}
