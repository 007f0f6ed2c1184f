package wordhtml

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/wordrinse/wordrinse/internal/logger"
)

// inlineSelector matches every inline tag that may illegally wrap block
// content in word-processor exports.
const inlineSelector = "b, strong, i, em, u, span, a, code, sup, sub"

// repairStructure fixes invalid nesting produced by word processors. Each
// pass is idempotent and safe to re-run; ordering matters only where noted.
func (n *Normalizer) repairStructure(doc *goquery.Document, result *Result) {
	// Redundant bold inside headings goes first, before the
	// inline-wrapping-block pass re-bolds heading text on purpose.
	n.removeStrayMetadata(doc, result)
	n.unwrapStrongInHeadings(doc, result)
	n.removeEmptySemanticTags(doc, result)
	n.unwrapInlineWrappingBlocks(doc, result)
	n.flattenListItemParagraphs(doc, result)
	n.cleanListLineBreaks(doc, result)
	n.reabsorbSourceCitations(doc, result)
	n.repairInvalidNesting(doc, result)
	n.cleanBlockBoundaryBreaks(doc, result)
	n.removeEmptyBlocks(doc, result)
	n.enforceTagVocabulary(doc, result)

	if n.config.Debug {
		logger.Debug("structural repair complete", "repairs", result.Stats.TotalRepairs())
	}
}

// removeStrayMetadata drops metadata elements and comments that survived
// into the body.
func (n *Normalizer) removeStrayMetadata(doc *goquery.Document, result *Result) {
	for _, node := range findNodes(doc, "body meta, body link, body title, body base") {
		removeNode(node)
		result.Stats.RecordRepair("stray-metadata")
	}

	body := bodyNode(doc)
	if body == nil {
		return
	}
	for _, c := range collectComments(body) {
		removeNode(c)
		result.Stats.RecordRepair("comment")
	}
}

// collectComments returns all comment nodes under n.
func collectComments(n *html.Node) []*html.Node {
	var comments []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.CommentNode {
				comments = append(comments, c)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return comments
}

// unwrapStrongInHeadings removes strong tags nested inside headings.
// Headings are inherently bold; the nested strong is noise from the source
// format.
func (n *Normalizer) unwrapStrongInHeadings(doc *goquery.Document, result *Result) {
	for _, node := range findNodesReverse(doc, "h1 strong, h2 strong, h3 strong, h4 strong, h5 strong, h6 strong") {
		unwrapNode(node)
		result.Stats.RecordRepair("strong-in-heading")
	}
}

// removeEmptySemanticTags removes inline semantic tags whose text content is
// empty or all-whitespace. Runs to a fixed point: unwrapping one tag can
// expose a parent that becomes empty.
func (n *Normalizer) removeEmptySemanticTags(doc *goquery.Document, result *Result) {
	for pass := 0; pass < n.config.EmptyTagPasses; pass++ {
		changed := false
		root := bodyNode(doc)
		for _, node := range findNodesReverse(doc, inlineSelector) {
			if root != nil && !attached(node, root) {
				continue
			}
			if !semanticInlineTags[node.Data] {
				continue
			}
			if strings.TrimSpace(textContent(node)) == "" {
				removeNode(node)
				result.Stats.RecordRepair("empty-inline")
				changed = true
			}
		}
		if !changed {
			break
		}
	}
}

// unwrapInlineWrappingBlocks unwraps inline semantic tags whose direct
// children are exclusively block-level elements. When a strong wraps
// headings, the bold intent is pushed down into each heading's first text
// run so it survives structurally instead of via an invalid ancestor.
func (n *Normalizer) unwrapInlineWrappingBlocks(doc *goquery.Document, result *Result) {
	root := bodyNode(doc)
	for _, node := range findNodesReverse(doc, inlineSelector) {
		if root != nil && !attached(node, root) {
			continue
		}
		if !directChildrenAllBlocks(node) {
			continue
		}
		if node.Data == "strong" {
			for c := node.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && isHeading(c.Data) {
					reBoldHeading(c)
				}
			}
		}
		unwrapNode(node)
		result.Stats.RecordRepair("inline-wrapping-block")
	}
}

// directChildrenAllBlocks reports whether node has at least one element
// child and every meaningful direct child is block-level.
func directChildrenAllBlocks(node *html.Node) bool {
	sawBlock := false
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if !isWhitespaceText(c) {
				return false
			}
		case html.ElementNode:
			if !isBlockTag(c.Data) {
				return false
			}
			sawBlock = true
		}
	}
	return sawBlock
}

func isHeading(name string) bool {
	switch strings.ToLower(name) {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// reBoldHeading wraps the heading's first meaningful text run in its own
// strong element.
func reBoldHeading(heading *html.Node) {
	text := firstMeaningfulText(heading)
	if text == nil {
		return
	}
	parent := text.Parent
	strong := newElement("strong")
	parent.InsertBefore(strong, text)
	parent.RemoveChild(text)
	strong.AppendChild(text)
}

// firstMeaningfulText returns the first non-whitespace text node within n,
// in document order.
func firstMeaningfulText(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && !isWhitespaceText(c) {
			return c
		}
		if c.Type == html.ElementNode && c.Data != "strong" {
			if t := firstMeaningfulText(c); t != nil {
				return t
			}
		}
	}
	return nil
}

// flattenListItemParagraphs splices paragraph children in place of the
// paragraph inside list items, preserving inline formatting.
func (n *Normalizer) flattenListItemParagraphs(doc *goquery.Document, result *Result) {
	root := bodyNode(doc)
	for _, node := range findNodesReverse(doc, "li p") {
		if root != nil && !attached(node, root) {
			continue
		}
		unwrapNode(node)
		result.Stats.RecordRepair("li-paragraph")
	}
}

// cleanListLineBreaks removes line-break elements directly inside list items
// and lists. A break between two text-bearing siblings becomes a single
// space so words do not concatenate. Stray breaks and whitespace-only text
// hugging a list's outer edges are also stripped.
func (n *Normalizer) cleanListLineBreaks(doc *goquery.Document, result *Result) {
	for _, node := range findNodes(doc, "li, ul, ol") {
		for c := node.FirstChild; c != nil; {
			next := c.NextSibling
			if c.Type == html.ElementNode && c.Data == "br" {
				if textBearing(c.PrevSibling) && textBearing(c.NextSibling) {
					replaceNode(c, newText(" "))
				} else {
					removeNode(c)
				}
				result.Stats.RecordRepair("list-linebreak")
			}
			c = next
		}
	}

	for _, list := range findNodes(doc, "ul, ol") {
		for sib := list.PrevSibling; sib != nil && strayAroundList(sib); sib = list.PrevSibling {
			removeNode(sib)
			result.Stats.RecordRepair("list-edge-stray")
		}
		for sib := list.NextSibling; sib != nil && strayAroundList(sib); sib = list.NextSibling {
			removeNode(sib)
			result.Stats.RecordRepair("list-edge-stray")
		}
	}
}

// textBearing reports whether a sibling carries visible text.
func textBearing(n *html.Node) bool {
	if n == nil {
		return false
	}
	return strings.TrimSpace(textContent(n)) != ""
}

// strayAroundList matches a line break or whitespace-only text node sitting
// immediately against a list boundary.
func strayAroundList(n *html.Node) bool {
	if n.Type == html.ElementNode && n.Data == "br" {
		return true
	}
	return isWhitespaceText(n)
}

// reabsorbSourceCitations handles a paste defect where citations following a
// "Sources" list get ejected from the list by stray line breaks. Sibling
// content after the list, up to the next block-level element and delimited
// by line breaks, is regrouped into new list items. Groups with no visible
// content are discarded.
func (n *Normalizer) reabsorbSourceCitations(doc *goquery.Document, result *Result) {
	for _, list := range findNodes(doc, "ul, ol") {
		label := prevMeaningfulSibling(list)
		if label == nil || label.Type != html.ElementNode || label.Data != "p" {
			continue
		}
		if !strings.HasPrefix(normalizedText(label), "sources") {
			continue
		}

		var group []*html.Node
		flush := func() {
			hasContent := false
			for _, g := range group {
				if textBearing(g) {
					hasContent = true
					break
				}
			}
			if hasContent {
				li := newElement("li")
				for _, g := range group {
					removeNode(g)
					li.AppendChild(g)
				}
				list.AppendChild(li)
				result.Stats.RecordRepair("sources-citation")
			} else {
				for _, g := range group {
					removeNode(g)
				}
			}
			group = group[:0]
		}

		c := list.NextSibling
		for c != nil {
			next := c.NextSibling
			if c.Type == html.ElementNode && isBlockTag(c.Data) {
				break
			}
			if c.Type == html.ElementNode && c.Data == "br" {
				removeNode(c)
				flush()
			} else {
				group = append(group, c)
			}
			c = next
		}
		flush()
	}
}

// prevMeaningfulSibling returns the closest preceding sibling that is not a
// whitespace-only text node or comment.
func prevMeaningfulSibling(n *html.Node) *html.Node {
	for sib := n.PrevSibling; sib != nil; sib = sib.PrevSibling {
		if sib.Type == html.CommentNode || isWhitespaceText(sib) {
			continue
		}
		return sib
	}
	return nil
}

// nextMeaningfulSibling returns the closest following sibling that is not a
// whitespace-only text node or comment.
func nextMeaningfulSibling(n *html.Node) *html.Node {
	for sib := n.NextSibling; sib != nil; sib = sib.NextSibling {
		if sib.Type == html.CommentNode || isWhitespaceText(sib) {
			continue
		}
		return sib
	}
	return nil
}

// repairInvalidNesting hoists block-level descendants out of inline tags,
// making each block a following sibling of the inline tag. Repeats to a
// fixed point, capped to bound pathological input; an inline tag emptied by
// the hoist is removed.
func (n *Normalizer) repairInvalidNesting(doc *goquery.Document, result *Result) {
	for pass := 0; pass < n.config.NestingRepairPasses; pass++ {
		changed := false
		root := bodyNode(doc)
		for _, node := range findNodesReverse(doc, inlineSelector) {
			if root != nil && !attached(node, root) {
				continue
			}
			if node.Parent == nil {
				continue
			}
			blocks := topBlockDescendants(node)
			if len(blocks) == 0 {
				continue
			}
			ref := node
			for _, b := range blocks {
				removeNode(b)
				insertAfter(node.Parent, b, ref)
				ref = b
			}
			if strings.TrimSpace(textContent(node)) == "" {
				removeNode(node)
			}
			result.Stats.RecordRepair("block-in-inline")
			changed = true
		}
		if !changed {
			break
		}
	}
}

// topBlockDescendants collects the outermost block-level descendants of n in
// document order. Blocks nested inside a collected block stay with it.
func topBlockDescendants(n *html.Node) []*html.Node {
	var blocks []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if isBlockTag(c.Data) {
				blocks = append(blocks, c)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return blocks
}

// cleanBlockBoundaryBreaks removes line breaks that act as redundant
// separators between block elements. Breaks inside a paragraph between text
// are intentional and preserved. A break carrying the clipboard interchange
// marker class is always removed.
func (n *Normalizer) cleanBlockBoundaryBreaks(doc *goquery.Document, result *Result) {
	for _, br := range findNodes(doc, "br") {
		if class, ok := getAttr(br, "class"); ok && strings.Contains(class, "interchange-newline") {
			removeNode(br)
			result.Stats.RecordRepair("interchange-linebreak")
			continue
		}

		prev := prevMeaningfulSibling(br)
		next := nextMeaningfulSibling(br)
		if isBlockElement(prev) && isBlockElement(next) {
			removeNode(br)
			result.Stats.RecordRepair("boundary-linebreak")
			continue
		}

		// Trailing edge of a block followed by another block.
		if next == nil && br.Parent != nil && br.Parent.Type == html.ElementNode && isBlockTag(br.Parent.Data) {
			if isBlockElement(nextMeaningfulSibling(br.Parent)) {
				removeNode(br)
				result.Stats.RecordRepair("boundary-linebreak")
			}
		}
	}
}

func isBlockElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && isBlockTag(n.Data)
}

// removeEmptyBlocks removes lists with no text-bearing items and paragraphs
// with no meaningful text. A paragraph holding exactly a non-breaking space
// is intentional spacing and survives.
func (n *Normalizer) removeEmptyBlocks(doc *goquery.Document, result *Result) {
	for _, list := range findNodes(doc, "ul, ol") {
		if strings.TrimSpace(textContent(list)) == "" {
			removeNode(list)
			result.Stats.RecordRepair("empty-list")
		}
	}

	for _, p := range findNodes(doc, "p") {
		raw := textContent(p)
		if raw == nbsp {
			continue
		}
		if strings.TrimSpace(raw) == "" {
			removeNode(p)
			result.Stats.RecordRepair("empty-paragraph")
		}
	}
}

// enforceTagVocabulary restricts output to the portable tag vocabulary.
// Unknown containers are unwrapped to keep their content; non-content
// elements are dropped outright. Reverse order resolves inner elements
// before their containers.
func (n *Normalizer) enforceTagVocabulary(doc *goquery.Document, result *Result) {
	root := bodyNode(doc)
	for _, node := range findNodesReverse(doc, "body *") {
		if root != nil && !attached(node, root) {
			continue
		}
		name := strings.ToLower(node.Data)
		if allowedTags[name] {
			continue
		}
		if dropTags[name] {
			removeNode(node)
		} else {
			unwrapNode(node)
		}
		result.Stats.RecordRepair("vocabulary")
	}
}
