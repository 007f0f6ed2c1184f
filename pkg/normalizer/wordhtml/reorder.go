package wordhtml

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/wordrinse/wordrinse/internal/logger"
)

// correctDocumentOrder detects a word-processor export defect where the
// top-level heading lands at or near the end of the document with the body
// content preceding it, and reverses the top-level child order.
//
// This is a heuristic on document shape, not a structural parse. It trades
// some false-positive risk (a short document with a deliberately late h1)
// for recovering otherwise-unusable documents. Evaluated once per clean, on
// the body's direct children only.
func (n *Normalizer) correctDocumentOrder(doc *goquery.Document, result *Result) {
	body := bodyNode(doc)
	if body == nil {
		return
	}

	var children []*html.Node
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, c)
		}
	}

	h1Pos := -1
	for i, c := range children {
		if c.Data == "h1" {
			h1Pos = i
			break
		}
	}
	if h1Pos < 0 {
		return
	}

	contentBefore := 0
	subheadingBefore := false
	for _, c := range children[:h1Pos] {
		if isContentElement(c.Data) {
			contentBefore++
		}
		if c.Data == "h2" || c.Data == "h3" {
			subheadingBefore = true
		}
	}

	total := len(children)
	window := total / 10
	if window < 10 {
		window = 10
	}
	inTailWindow := h1Pos >= total-window

	fire := false
	switch {
	// (a) h1 is the very last child with substantial content before it.
	case h1Pos == total-1 && contentBefore >= 5:
		fire = true
	// (b) h1 in the tail window with a subheading preceding it.
	case inTailWindow && subheadingBefore:
		fire = true
	// (c) h1 in the tail window with >30% of children (minimum 10) before it.
	case inTailWindow && contentBefore >= 10 && float64(contentBefore) > 0.3*float64(total):
		fire = true
	}
	if !fire {
		return
	}

	reverseChildren(body)
	result.Stats.ReorderFired = true
	if n.config.Debug {
		logger.Debug("document order reversed", "children", total, "h1_position", h1Pos)
	}
}

// isContentElement reports whether a tag counts as body content for the
// reorder heuristic.
func isContentElement(name string) bool {
	switch name {
	case "p", "h1", "h2", "h3", "h4", "h5", "h6", "ul", "ol":
		return true
	}
	return false
}

// reverseChildren reverses a node's direct child order in place. A literal
// reversal, not a semantic re-sort.
func reverseChildren(parent *html.Node) {
	var nodes []*html.Node
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		nodes = append(nodes, c)
	}
	for _, c := range nodes {
		parent.RemoveChild(c)
	}
	for i := len(nodes) - 1; i >= 0; i-- {
		parent.AppendChild(nodes[i])
	}
}
