package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/trisieve/internal/triangle"
)

// JSONWriter outputs the result as JSON.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, res *triangle.Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
