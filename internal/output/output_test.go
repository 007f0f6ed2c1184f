package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type report struct {
	Content string `json:"content" yaml:"content"`
	Bytes   int    `json:"bytes" yaml:"bytes"`
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		format  Format
		wantErr bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{Format("xml"), true},
		{Format(""), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			_, err := NewWriter(&buf, tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewWriter(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	if err := w.Write(report{Content: "<p>x</p>", Bytes: 8}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if got.Content != "<p>x</p>" || got.Bytes != 8 {
		t.Errorf("unexpected round-trip: %+v", got)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Errorf("expected indented output, got %q", buf.String())
	}
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewYAMLWriter(&buf)

	if err := w.Write(report{Content: "<p>x</p>", Bytes: 8}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got report
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	if got.Content != "<p>x</p>" || got.Bytes != 8 {
		t.Errorf("unexpected round-trip: %+v", got)
	}
}

func TestWriterBuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)

	if err := w.Write(report{Content: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected data after flush")
	}
}
