package output

import (
	"bufio"
	"encoding/json"
	"io"
)

// JSONWriter writes pretty-printed JSON reports.
type JSONWriter struct {
	w *bufio.Writer
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w: bufio.NewWriter(w),
	}
}

// Write encodes a single report as indented JSON.
func (w *JSONWriter) Write(data any) error {
	enc := json.NewEncoder(w.w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// Flush writes any buffered data.
func (w *JSONWriter) Flush() error {
	return w.w.Flush()
}

// Close flushes the writer.
func (w *JSONWriter) Close() error {
	return w.Flush()
}
