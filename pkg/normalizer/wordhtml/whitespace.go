package wordhtml

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	// whitespaceRunRe matches runs of whitespace including non-breaking
	// spaces.
	whitespaceRunRe = regexp.MustCompile(`[\s\x{00a0}]+`)

	// spaceBeforePunctRe matches whitespace directly before terminal
	// punctuation.
	spaceBeforePunctRe = regexp.MustCompile(`[\s\x{00a0}]+([.,!?;:])`)

	// trailingSpaceRe matches a trailing whitespace run.
	trailingSpaceRe = regexp.MustCompile(`[\s\x{00a0}]+$`)

	// leadingPunctRe matches punctuation at the start of a string.
	leadingPunctRe = regexp.MustCompile(`^[.,!?;:]`)
)

// normalizeWhitespace trims anchor text and tightens whitespace before
// punctuation throughout the document.
func (n *Normalizer) normalizeWhitespace(doc *goquery.Document, _ *Result) {
	n.normalizeAnchors(doc)
	n.tightenPunctuation(doc)
}

// normalizeAnchors cleans whitespace inside anchor elements. A pure-text
// anchor is trimmed and collapsed as a whole. An anchor with nested inline
// elements is cleaned per text node, trimming only the outermost edges so
// interior inter-element spacing survives.
func (n *Normalizer) normalizeAnchors(doc *goquery.Document) {
	for _, a := range findNodes(doc, "a") {
		texts := collectTextNodes(a)
		if len(texts) == 0 {
			continue
		}

		if pureTextChildren(a) {
			combined := textContent(a)
			combined = whitespaceRunRe.ReplaceAllString(combined, " ")
			combined = spaceBeforePunctRe.ReplaceAllString(combined, "$1")
			combined = strings.TrimSpace(combined)
			for c := a.FirstChild; c != nil; {
				next := c.NextSibling
				a.RemoveChild(c)
				c = next
			}
			if combined != "" {
				a.AppendChild(newText(combined))
			}
			continue
		}

		for i, t := range texts {
			t.Data = whitespaceRunRe.ReplaceAllString(t.Data, " ")
			if i == 0 {
				t.Data = strings.TrimLeft(t.Data, " ")
			}
			if i == len(texts)-1 {
				t.Data = strings.TrimRight(t.Data, " ")
			}
		}
	}
}

// tightenPunctuation removes whitespace runs sitting directly before
// punctuation, within a text node and across adjacent text-node siblings.
// When the space is split across two nodes, it is removed from the end of
// the first node rather than the start of the second.
func (n *Normalizer) tightenPunctuation(doc *goquery.Document) {
	body := bodyNode(doc)
	if body == nil {
		return
	}
	for _, t := range collectTextNodes(body) {
		t.Data = spaceBeforePunctRe.ReplaceAllString(t.Data, "$1")

		if next := t.NextSibling; next != nil && next.Type == html.TextNode {
			if trailingSpaceRe.MatchString(t.Data) && leadingPunctRe.MatchString(next.Data) {
				t.Data = trailingSpaceRe.ReplaceAllString(t.Data, "")
			}
		}
	}
}

// pureTextChildren reports whether every direct child of n is a text node.
func pureTextChildren(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.TextNode {
			return false
		}
	}
	return n.FirstChild != nil
}

// collectTextNodes returns n's descendant text nodes in document order.
func collectTextNodes(n *html.Node) []*html.Node {
	var texts []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				texts = append(texts, c)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return texts
}
