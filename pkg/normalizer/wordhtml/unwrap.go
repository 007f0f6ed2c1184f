package wordhtml

import (
	"github.com/PuerkitoBio/goquery"
)

// unwrapWrappers removes generic inline wrapper tags (span, font) in reverse
// document order, splicing children into the parent at the same position.
//
// A wrapper holding a block-level descendant is always unwrapped; block
// safety overrides any style it still carries, since formatting should have
// been resolved by the promoter. A wrapper that still carries unresolved
// formatting intent is converted first as a safety net, in case an earlier
// mutation introduced a style the promoter never saw.
func (n *Normalizer) unwrapWrappers(doc *goquery.Document, result *Result) {
	root := bodyNode(doc)
	for _, node := range findNodesReverse(doc, "span, font") {
		if root != nil && !attached(node, root) {
			continue
		}

		// font is legacy: no style logic, always unwrapped.
		if node.Data == "span" && !hasBlockDescendant(node) {
			if style, ok := getAttr(node, "style"); ok {
				if intent := detectIntent(style); intent.hasIntent() {
					tags := intent.semanticTags()
					promoteToSemantic(node, tags)
					for _, t := range tags {
						result.Stats.RecordPromotion(t)
					}
					continue
				}
			}
		}

		unwrapNode(node)
		result.Stats.WrappersUnwrapped++
	}
}

// normalizeLegacyTags canonicalizes presentational tags to their semantic
// equivalents: b becomes strong, i becomes em. In-place rename, children
// untouched, order preserved.
func (n *Normalizer) normalizeLegacyTags(doc *goquery.Document, result *Result) {
	for _, node := range findNodes(doc, "b") {
		renameElement(node, "strong")
		result.Stats.RecordRename("b")
	}
	for _, node := range findNodes(doc, "i") {
		renameElement(node, "em")
		result.Stats.RecordRename("i")
	}
}
