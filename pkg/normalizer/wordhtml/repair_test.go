package wordhtml

import (
	"strings"
	"testing"
)

func TestReabsorbSourceCitations(t *testing.T) {
	t.Run("regroups ejected citations into list items", func(t *testing.T) {
		input := `<p>Sources</p>` +
			`<ul><li><a href="https://a.example">First</a></li></ul>` +
			`<a href="https://b.example">Second</a><br>` +
			`<a href="https://c.example">Third</a>`

		n := New(nil)
		result, err := n.Clean(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if count := strings.Count(result, "<li>"); count != 3 {
			t.Errorf("expected 3 list items, got %d: %s", count, result)
		}
		if !strings.Contains(result, `<li><a href="https://b.example">Second</a></li>`) {
			t.Errorf("expected second citation reabsorbed: %s", result)
		}
		if !strings.Contains(result, `<li><a href="https://c.example">Third</a></li>`) {
			t.Errorf("expected third citation reabsorbed: %s", result)
		}
	})

	t.Run("stops at the next block element", func(t *testing.T) {
		input := `<p>Sources</p>` +
			`<ul><li><a href="https://a.example">First</a></li></ul>` +
			`<a href="https://b.example">Second</a>` +
			`<p>Unrelated paragraph</p>`

		n := New(nil)
		result, err := n.Clean(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if count := strings.Count(result, "<li>"); count != 2 {
			t.Errorf("expected 2 list items, got %d: %s", count, result)
		}
		if !strings.Contains(result, "<p>Unrelated paragraph</p>") {
			t.Errorf("expected following paragraph untouched: %s", result)
		}
	})

	t.Run("ignores lists without a sources label", func(t *testing.T) {
		input := `<p>Reading list</p>` +
			`<ul><li>First</li></ul>` +
			`<a href="https://b.example">Not a citation</a>`

		n := New(nil)
		result, err := n.Clean(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if count := strings.Count(result, "<li>"); count != 1 {
			t.Errorf("expected 1 list item, got %d: %s", count, result)
		}
	})

	t.Run("matches label despite punctuation and casing", func(t *testing.T) {
		input := `<p>SOURCES:</p>` +
			`<ul><li>First</li></ul>` +
			`<a href="https://b.example">Second</a>`

		n := New(nil)
		result, err := n.Clean(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if count := strings.Count(result, "<li>"); count != 2 {
			t.Errorf("expected 2 list items, got %d: %s", count, result)
		}
	})
}

func TestRepairInvalidNesting(t *testing.T) {
	t.Run("hoists deeply nested blocks", func(t *testing.T) {
		input := `<strong><em>text<p>Block one</p><p>Block two</p></em></strong>`

		n := New(nil)
		result, err := n.Clean(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		one := strings.Index(result, "<p>Block one</p>")
		two := strings.Index(result, "<p>Block two</p>")
		if one < 0 || two < 0 {
			t.Fatalf("expected both blocks to survive: %s", result)
		}
		if two < one {
			t.Errorf("expected block order preserved: %s", result)
		}
		if em := strings.Index(result, "</em>"); em >= 0 && em > one {
			t.Errorf("expected blocks hoisted after the inline tag: %s", result)
		}
	})

	t.Run("removes inline tag emptied by the hoist", func(t *testing.T) {
		input := `<em><p>Only block</p></em>`

		n := New(nil)
		result, err := n.Clean(input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if strings.Contains(result, "<em>") {
			t.Errorf("expected emptied inline tag removed: %s", result)
		}
		if !strings.Contains(result, "<p>Only block</p>") {
			t.Errorf("expected block content preserved: %s", result)
		}
	})
}

func TestRepairRecordsStats(t *testing.T) {
	input := `<ul><li><p>Item</p></li></ul><p>One</p><br><p>Two</p><p>   </p>`

	n := New(nil)
	result := n.CleanWithStats(input)

	if result.Stats.Repairs["li-paragraph"] != 1 {
		t.Errorf("expected one li-paragraph repair, got %v", result.Stats.Repairs)
	}
	if result.Stats.Repairs["boundary-linebreak"] != 1 {
		t.Errorf("expected one boundary-linebreak repair, got %v", result.Stats.Repairs)
	}
	if result.Stats.Repairs["empty-paragraph"] != 1 {
		t.Errorf("expected one empty-paragraph repair, got %v", result.Stats.Repairs)
	}
	if result.Stats.TotalRepairs() < 3 {
		t.Errorf("expected total repairs >= 3, got %d", result.Stats.TotalRepairs())
	}
}

func TestEnforceTagVocabulary(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		contains []string
		excludes []string
	}{
		{
			name:     "unwraps sections and divs",
			html:     `<section><div><p>Text</p></div></section>`,
			contains: []string{"<p>Text</p>"},
			excludes: []string{"section", "div"},
		},
		{
			name:     "unwraps figure keeping caption text",
			html:     `<figure><img src="x.png"><figcaption>Caption</figcaption></figure><p>Body</p>`,
			contains: []string{"Caption", "<p>Body</p>"},
			excludes: []string{"figure", "img"},
		},
		{
			name:     "drops forms entirely",
			html:     `<p>Keep</p><form><input name="q"><button>Go</button></form>`,
			contains: []string{"<p>Keep</p>"},
			excludes: []string{"form", "input", "button", "Go"},
		},
		{
			name:     "keeps the full allowed inline set",
			html:     `<p><u>u</u> <code>c</code> <sup>s</sup> <sub>b</sub></p>`,
			contains: []string{"<u>u</u>", "<code>c</code>", "<sup>s</sup>", "<sub>b</sub>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New(nil)
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
