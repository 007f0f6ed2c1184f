package normalizer

import (
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// Markdown converts normalized HTML into Markdown.
// It is intended to run after the wordhtml normalizer in a Chain, so the
// input is already limited to the portable tag vocabulary.
type Markdown struct{}

// NewMarkdown creates a new HTML-to-Markdown normalizer.
func NewMarkdown() *Markdown {
	return &Markdown{}
}

// Clean converts the input HTML to Markdown.
// On conversion failure the input is returned unchanged.
func (m *Markdown) Clean(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	markdown, err := md.ConvertString(html)
	if err != nil {
		return html, nil
	}
	return strings.TrimSpace(markdown), nil
}

// Name returns the normalizer type.
func (m *Markdown) Name() string {
	return "markdown"
}
