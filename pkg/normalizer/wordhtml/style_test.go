package wordhtml

import (
	"reflect"
	"testing"
)

func TestParseStyle(t *testing.T) {
	t.Run("parses declarations", func(t *testing.T) {
		decls := parseStyle("font-weight: 700; Color: Red")
		if len(decls) != 2 {
			t.Fatalf("expected 2 declarations, got %d", len(decls))
		}
		if decls[0].Property != "font-weight" || decls[0].Value != "700" {
			t.Errorf("unexpected first declaration: %+v", decls[0])
		}
		if decls[1].Property != "color" || decls[1].Value != "red" {
			t.Errorf("expected property and value lowercased: %+v", decls[1])
		}
	})

	t.Run("preserves raw fragments", func(t *testing.T) {
		decls := parseStyle("border: 1px Solid Black")
		if len(decls) != 1 {
			t.Fatalf("expected 1 declaration, got %d", len(decls))
		}
		if decls[0].Raw != "border: 1px Solid Black" {
			t.Errorf("expected raw fragment preserved verbatim, got %q", decls[0].Raw)
		}
	})

	t.Run("skips malformed fragments", func(t *testing.T) {
		decls := parseStyle("nonsense;;font-style:italic;")
		if len(decls) != 1 {
			t.Fatalf("expected malformed fragments skipped, got %d declarations", len(decls))
		}
		if decls[0].Property != "font-style" {
			t.Errorf("unexpected declaration: %+v", decls[0])
		}
	})

	t.Run("empty style yields nothing", func(t *testing.T) {
		if decls := parseStyle(""); decls != nil {
			t.Errorf("expected nil, got %v", decls)
		}
	})
}

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		name  string
		style string
		want  styleIntent
	}{
		{"numeric bold", "font-weight:700", styleIntent{Bold: true}},
		{"keyword bold", "font-weight: bold;", styleIntent{Bold: true}},
		{"normal weight is not bold", "font-weight:400", styleIntent{}},
		{"italic", "font-style:italic", styleIntent{Italic: true}},
		{"oblique counts as italic", "font-style:oblique", styleIntent{Italic: true}},
		{"bold and italic", "font-weight:bold;font-style:italic", styleIntent{Bold: true, Italic: true}},
		{"superscript", "vertical-align:super", styleIntent{Vertical: "sup"}},
		{"subscript", "vertical-align:sub", styleIntent{Vertical: "sub"}},
		{"baseline is not vertical intent", "vertical-align:baseline", styleIntent{}},
		{"unrelated styles carry no intent", "color:red;font-size:12pt", styleIntent{}},
		{"messy spacing and casing", " FONT-WEIGHT : Bold ; ", styleIntent{Bold: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectIntent(tt.style)
			if got != tt.want {
				t.Errorf("detectIntent(%q) = %+v, want %+v", tt.style, got, tt.want)
			}
		})
	}
}

func TestSemanticTags(t *testing.T) {
	tests := []struct {
		name   string
		intent styleIntent
		want   []string
	}{
		{"bold", styleIntent{Bold: true}, []string{"strong"}},
		{"italic", styleIntent{Italic: true}, []string{"em"}},
		{"bold italic nests strong outside em", styleIntent{Bold: true, Italic: true}, []string{"strong", "em"}},
		{"vertical wins over bold", styleIntent{Bold: true, Vertical: "sup"}, []string{"sup"}},
		{"no intent", styleIntent{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.intent.semanticTags()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("semanticTags() = %v, want %v", got, tt.want)
			}
		})
	}
}
