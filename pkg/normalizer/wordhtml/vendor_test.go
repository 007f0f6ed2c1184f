package wordhtml

import (
	"strings"
	"testing"
)

func TestStripVendorMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "removes conditional comments with content",
			input:    `<!--[if gte mso 9]><xml><w:WordDocument><w:View>Normal</w:View></w:WordDocument></xml><![endif]--><p>Keep</p>`,
			contains: []string{"<p>Keep</p>"},
			excludes: []string{"WordDocument", "<xml>", "[if"},
		},
		{
			name:     "removes comment-pair conditionals",
			input:    `<p><!--[if !supportLists]--><span>&middot; </span><!--[endif]-->Item</p>`,
			contains: []string{"<p>", "Item"},
			excludes: []string{"supportLists", "&middot;", "[endif]"},
		},
		{
			name:     "removes vendor class tokens",
			input:    `<p class="MsoNormal MsoListParagraph">Text</p>`,
			contains: []string{"Text"},
			excludes: []string{"MsoNormal", "MsoListParagraph"},
		},
		{
			name:     "removes vendor style declarations only",
			input:    `<p style="mso-fareast-font-family:Calibri;color:red">Text</p>`,
			contains: []string{"color:red", "Text"},
			excludes: []string{"mso-fareast"},
		},
		{
			name:     "removes empty paragraph-end markers",
			input:    `<p>Text<o:p></o:p></p>`,
			contains: []string{"<p>Text</p>"},
			excludes: []string{"o:p"},
		},
		{
			name:     "converts non-empty paragraph-end markers to nbsp",
			input:    `<p><o:p>&nbsp;</o:p></p>`,
			contains: []string{"<p>&nbsp;</p>"},
			excludes: []string{"o:p"},
		},
		{
			name:     "removes vendor namespaced tags keeping content",
			input:    `<w:sdt><p>Inside</p></w:sdt><v:shape>drawing</v:shape>`,
			contains: []string{"<p>Inside</p>", "drawing"},
			excludes: []string{"w:sdt", "v:shape"},
		},
		{
			name:     "removes xml namespace attributes",
			input:    `<html xmlns:o="urn:schemas-microsoft-com:office:office" xmlns="http://www.w3.org/TR/REC-html40"><body><p>Hi</p></body></html>`,
			contains: []string{"<p>Hi</p>"},
			excludes: []string{"xmlns", "schemas-microsoft-com"},
		},
		{
			name:     "leaves clean html untouched",
			input:    `<p>Plain <strong>content</strong> stays.</p>`,
			contains: []string{`<p>Plain <strong>content</strong> stays.</p>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := stripVendorMarkup(tt.input)

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
