// Package publish applies platform-specific rewrites to HTML already
// normalized by the wordhtml pipeline. It consumes and produces HTML
// strings, never a tree handle, so it composes behind any normalizer.
package publish

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-playground/validator/v10"
	"golang.org/x/net/html"
)

// Options configures the platform rewrites.
type Options struct {
	// LinkRel sets the rel attribute on every anchor (e.g. "nofollow").
	LinkRel string `json:"link_rel" validate:"omitempty,max=128"`

	// LinkTarget sets the target attribute on every anchor.
	LinkTarget string `json:"link_target" validate:"omitempty,oneof=_blank _self _parent _top"`

	// SpacerParagraphs inserts an empty spacer paragraph between top-level
	// block elements, for platforms that collapse margins.
	SpacerParagraphs bool `json:"spacer_paragraphs"`

	// SourcesHeadingLevel rewrites a section-boundary paragraph ("sources",
	// "key takeaways", "read also", "frequently asked questions") into a
	// heading of this level. Zero disables the rewrite.
	SourcesHeadingLevel int `json:"sources_heading_level" validate:"gte=0,lte=6"`
}

// Validate checks the options for invalid values.
func (o *Options) Validate() error {
	return validator.New().Struct(o)
}

// sectionPhrases are the normalized section boundary markers.
var sectionPhrases = []string{
	"key takeaways",
	"read also",
	"sources",
	"frequently asked questions",
}

// Apply rewrites normalized HTML for a target platform. On parse failure
// the input is returned unchanged.
func Apply(input string, opts *Options) (string, error) {
	if opts == nil {
		opts = &Options{}
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}
	if strings.TrimSpace(input) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return input, nil
	}

	if opts.LinkRel != "" || opts.LinkTarget != "" {
		doc.Find("a").Each(func(_ int, s *goquery.Selection) {
			if opts.LinkRel != "" {
				s.SetAttr("rel", opts.LinkRel)
			}
			if opts.LinkTarget != "" {
				s.SetAttr("target", opts.LinkTarget)
			}
		})
	}

	if opts.SourcesHeadingLevel > 0 {
		retitleSectionMarkers(doc, opts.SourcesHeadingLevel)
	}

	if opts.SpacerParagraphs {
		insertSpacers(doc)
	}

	body := doc.Find("body")
	out, err := body.Html()
	if err != nil {
		return input, nil
	}
	return strings.TrimSpace(out), nil
}

// retitleSectionMarkers turns section-boundary paragraphs into headings.
func retitleSectionMarkers(doc *goquery.Document, level int) {
	tag := []string{"h1", "h2", "h3", "h4", "h5", "h6"}[level-1]
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.ToLower(strings.TrimSpace(s.Text()))
		for _, phrase := range sectionPhrases {
			if strings.HasPrefix(text, phrase) {
				inner, err := s.Html()
				if err != nil {
					return
				}
				s.ReplaceWithHtml("<" + tag + ">" + inner + "</" + tag + ">")
				return
			}
		}
	})
}

// insertSpacers adds an empty paragraph between adjacent top-level blocks.
func insertSpacers(doc *goquery.Document) {
	body := doc.Find("body")
	if len(body.Nodes) == 0 {
		return
	}
	root := body.Nodes[0]

	var blocks []*html.Node
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			blocks = append(blocks, c)
		}
	}
	// Insert after every block except the last.
	for _, b := range blocks[:max(len(blocks)-1, 0)] {
		spacer := spacerParagraph()
		if b.NextSibling != nil {
			root.InsertBefore(spacer, b.NextSibling)
		} else {
			root.AppendChild(spacer)
		}
	}
}

// spacerParagraph builds <p>&nbsp;</p>.
func spacerParagraph() *html.Node {
	p := &html.Node{Type: html.ElementNode, Data: "p"}
	p.AppendChild(&html.Node{Type: html.TextNode, Data: "\u00a0"})
	return p
}
