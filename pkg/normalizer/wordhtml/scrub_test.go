package wordhtml

import (
	"strings"
	"testing"
)

func TestScrubAttributes(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		config   *Config
		contains []string
		excludes []string
	}{
		{
			name:     "removes style from text elements",
			html:     `<p style="color:red;font-size:12pt">Text</p>`,
			config:   PresetMinimal(),
			contains: []string{"<p>Text</p>"},
			excludes: []string{"style=", "color:red"},
		},
		{
			name:     "keeps layout styles on containers",
			html:     `<div style="margin:0;color:red"><p>Text</p></div>`,
			config:   PresetMinimal(),
			contains: []string{`<div style="margin:0">`},
			excludes: []string{"color:red"},
		},
		{
			name:     "keeps layout styles on table cells",
			html:     `<table style="border:1px solid"><tbody><tr><td style="padding:4px;color:blue">Cell</td></tr></tbody></table>`,
			config:   PresetMinimal(),
			contains: []string{`<table style="border:1px solid">`, `<td style="padding:4px">`},
			excludes: []string{"color:blue"},
		},
		{
			name:     "drops style attribute when nothing survives",
			html:     `<div style="color:red">Text</div>`,
			config:   PresetMinimal(),
			contains: []string{"<div>Text</div>"},
			excludes: []string{"style="},
		},
		{
			name:     "strict preset drops layout styles too",
			html:     `<div style="margin:0"><p>Text</p></div>`,
			config:   PresetStrict(),
			excludes: []string{"style=", "margin"},
		},
		{
			name:     "removes vendor classes",
			html:     `<p class="MsoNormal">Text</p>`,
			config:   PresetMinimal(),
			contains: []string{"<p>Text</p>"},
			excludes: []string{"class="},
		},
		{
			name:     "removes language and accessibility noise",
			html:     `<p id="p1" lang="en-US" dir="ltr" role="presentation" aria-level="1">Text</p>`,
			config:   PresetMinimal(),
			contains: []string{"<p>Text</p>"},
			excludes: []string{"id=", "lang=", "dir=", "role=", "aria-level"},
		},
		{
			name:     "keeps anchor attributes",
			html:     `<p><a href="https://example.com" title="Example">Link</a></p>`,
			config:   PresetMinimal(),
			contains: []string{`href="https://example.com"`, `title="Example"`},
		},
		{
			name:     "keeps regular classes",
			html:     `<p class="lede">Text</p>`,
			config:   PresetMinimal(),
			contains: []string{`class="lede"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New(tt.config)
			result, err := n.Clean(tt.html)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for _, s := range tt.contains {
				if !strings.Contains(result, s) {
					t.Errorf("expected output to contain %q, got: %s", s, result)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(result, s) {
					t.Errorf("expected output to not contain %q, got: %s", s, result)
				}
			}
		})
	}
}

func TestScrubCountsRemovals(t *testing.T) {
	n := New(PresetMinimal())
	result := n.CleanWithStats(`<p style="color:red" id="x" lang="en">Text</p>`)

	if result.Stats.AttributesRemoved != 3 {
		t.Errorf("expected 3 attributes removed, got %d", result.Stats.AttributesRemoved)
	}
}
