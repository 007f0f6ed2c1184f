package wordhtml

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// nbsp is the non-breaking space character that word processors emit as
// &nbsp; to mark intentional spacing.
const nbsp = "\u00a0"

// blockTags are elements that create vertical structure.
var blockTags = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "ul": true, "ol": true, "li": true, "div": true,
	"blockquote": true,
}

// semanticInlineTags are the inline tags removed when they become empty.
var semanticInlineTags = map[string]bool{
	"strong": true, "em": true, "b": true, "i": true, "u": true, "span": true,
}

// allowedTags is the output vocabulary. Table structure is tolerated because
// the attribute scrubber deliberately preserves layout styles on it.
var allowedTags = map[string]bool{
	"p": true, "a": true, "ul": true, "ol": true, "li": true,
	"strong": true, "em": true, "b": true, "i": true, "u": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"br": true, "blockquote": true, "code": true, "sup": true, "sub": true,
	"table": true, "thead": true, "tbody": true, "tr": true, "td": true,
	"th": true,
}

// dropTags are elements removed along with their content when enforcing the
// output vocabulary. Everything else outside the vocabulary is unwrapped.
var dropTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "iframe": true,
	"svg": true, "img": true, "meta": true, "link": true, "title": true,
	"form": true, "input": true, "select": true, "textarea": true,
	"button": true, "object": true, "embed": true, "head": true,
	"xml": true,
}

func isBlockTag(name string) bool {
	return blockTags[strings.ToLower(name)]
}

// newElement creates a detached element node with the given tag name.
func newElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// newText creates a detached text node.
func newText(data string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: data}
}

// removeNode detaches n from its parent. A node without a parent is left
// untouched (fail-open).
func removeNode(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// unwrapNode replaces n with its children, spliced into the parent at the
// same position. Child order is preserved.
func unwrapNode(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
		c = next
	}
	parent.RemoveChild(n)
}

// insertAfter inserts newChild into parent immediately after ref.
func insertAfter(parent, newChild, ref *html.Node) {
	if ref.NextSibling != nil {
		parent.InsertBefore(newChild, ref.NextSibling)
	} else {
		parent.AppendChild(newChild)
	}
}

// replaceNode swaps old for repl in old's parent, keeping position.
func replaceNode(old, repl *html.Node) {
	parent := old.Parent
	if parent == nil {
		return
	}
	parent.InsertBefore(repl, old)
	parent.RemoveChild(old)
}

// renameElement changes an element's tag in place, keeping attributes and
// children.
func renameElement(n *html.Node, tag string) {
	n.Data = tag
	n.DataAtom = atom.Lookup([]byte(tag))
}

// moveChildren detaches every child of src and appends it to dst, preserving
// order.
func moveChildren(src, dst *html.Node) {
	for c := src.FirstChild; c != nil; {
		next := c.NextSibling
		src.RemoveChild(c)
		dst.AppendChild(c)
		c = next
	}
}

// textContent returns the concatenated text of n and its descendants.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// normalizedText returns the node's text with whitespace and non-breaking
// spaces collapsed and trimmed, lowercased for phrase matching.
func normalizedText(n *html.Node) string {
	text := strings.ReplaceAll(textContent(n), nbsp, " ")
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// isWhitespaceText reports whether n is a text node containing only
// whitespace (including non-breaking spaces).
func isWhitespaceText(n *html.Node) bool {
	if n.Type != html.TextNode {
		return false
	}
	return strings.TrimSpace(strings.ReplaceAll(n.Data, nbsp, " ")) == ""
}

// hasBlockDescendant reports whether any descendant of n is a block-level
// element.
func hasBlockDescendant(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (isBlockTag(c.Data) || hasBlockDescendant(c)) {
			return true
		}
	}
	return false
}

// getAttr returns an attribute value; attribute names are matched
// case-insensitively.
func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

// setAttr sets an attribute value, replacing any existing entry.
func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// removeAttr deletes an attribute by name, case-insensitively.
func removeAttr(n *html.Node, key string) bool {
	for i, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return true
		}
	}
	return false
}

// bodyNode returns the body element of a parsed document, or nil.
func bodyNode(doc *goquery.Document) *html.Node {
	sel := doc.Find("body")
	if len(sel.Nodes) == 0 {
		return nil
	}
	return sel.Nodes[0]
}

// findNodes collects the nodes matching selector in document order.
// The slice is materialized so callers can mutate the tree while iterating.
func findNodes(doc *goquery.Document, selector string) []*html.Node {
	sel := doc.Find(selector)
	nodes := make([]*html.Node, len(sel.Nodes))
	copy(nodes, sel.Nodes)
	return nodes
}

// findNodesReverse collects the nodes matching selector in reverse document
// order, so inner nodes are visited before the containers that hold them.
func findNodesReverse(doc *goquery.Document, selector string) []*html.Node {
	nodes := findNodes(doc, selector)
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return nodes
}

// attached reports whether n still hangs off the document (a prior pass may
// have detached an ancestor).
func attached(n *html.Node, root *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == root {
			return true
		}
	}
	return false
}
