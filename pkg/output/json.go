// Package output renders API envelopes for the terminal: a fixed-column
// table projection for humans, a pretty-printed JSON dump for scripts,
// and an optional expression filter over records.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// JSONFormatter pretty-prints a raw response body.
type JSONFormatter struct {
	indent string
}

// NewJSONFormatter creates a JSON formatter with two-space indentation.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{indent: "  "}
}

// Format writes the pretty-printed form of raw, which must be valid JSON.
// The document is re-indented in place, never decoded: key order and
// numeric literals come out exactly as the remote sent them.
func (f *JSONFormatter) Format(w io.Writer, raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", f.indent); err != nil {
		return fmt.Errorf("failed to indent response for JSON output: %w", err)
	}
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	return err
}
