package wordhtml

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/wordrinse/wordrinse/internal/logger"
)

// promoteStyles rewrites style-bearing inline containers into semantic tags
// before any style attribute is discarded. Containers are processed in
// reverse document order so nested containers resolve innermost-first; a
// forward walk could replace an outer container before its descendants were
// visited and lose nested matches.
func (n *Normalizer) promoteStyles(doc *goquery.Document, result *Result) {
	root := bodyNode(doc)
	for _, node := range findNodesReverse(doc, "span[style], font[style]") {
		if root != nil && !attached(node, root) {
			continue
		}
		style, ok := getAttr(node, "style")
		if !ok {
			continue
		}
		intent := detectIntent(style)
		if !intent.hasIntent() {
			continue
		}

		// A super/subscript container holding block content is left for the
		// structural repairer. Bold/italic intent wins over block-safety:
		// the conversion proceeds and a later pass extracts the blocks.
		if intent.Vertical != "" && hasBlockDescendant(node) {
			continue
		}

		tags := intent.semanticTags()
		promoteToSemantic(node, tags)
		for _, t := range tags {
			result.Stats.RecordPromotion(t)
		}
		if n.config.Debug {
			logger.Debug("promoted styled container", "tags", tags)
		}
	}
}

// promoteToSemantic replaces node with a chain of semantic wrappers
// (outermost first), carrying all original children into the innermost
// wrapper. The replacement occupies node's position; sibling order is
// untouched. No attributes are carried over.
func promoteToSemantic(node *html.Node, tags []string) {
	if len(tags) == 0 || node.Parent == nil {
		return
	}
	outer := newElement(tags[0])
	inner := outer
	for _, t := range tags[1:] {
		child := newElement(t)
		inner.AppendChild(child)
		inner = child
	}
	moveChildren(node, inner)
	replaceNode(node, outer)
}
