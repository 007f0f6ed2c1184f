package wordhtml

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// layoutStyleTags are the container/table/cell elements allowed to keep
// layout-affecting style declarations.
var layoutStyleTags = map[string]bool{
	"div": true, "blockquote": true, "table": true, "thead": true,
	"tbody": true, "tr": true, "td": true, "th": true,
}

// layoutStyleProps are the property prefixes kept on layout elements.
var layoutStyleProps = []string{"border", "padding", "margin"}

// droppedAttrs are removed from every element regardless of tag.
var droppedAttrs = []string{"lang", "dir", "aria-level", "role", "id"}

// scrubAttributes removes vendor and non-portable attributes element-wide.
// Content and child order are never altered; only attribute maps change.
func (n *Normalizer) scrubAttributes(doc *goquery.Document, result *Result) {
	for _, node := range findNodes(doc, "*") {
		result.Stats.AttributesRemoved += scrubElement(node, n.config.KeepLayoutStyles)
	}
}

// scrubElement applies the scrub policy to a single element and returns the
// number of attributes removed.
func scrubElement(node *html.Node, keepLayoutStyles bool) int {
	removed := 0

	if style, ok := getAttr(node, "style"); ok {
		if keepLayoutStyles && layoutStyleTags[strings.ToLower(node.Data)] {
			if kept := keptLayoutDecls(style); kept != "" {
				setAttr(node, "style", kept)
			} else {
				removeAttr(node, "style")
				removed++
			}
		} else {
			removeAttr(node, "style")
			removed++
		}
	}

	// The vendor pre-pass removes Mso class tokens but leaves the attribute
	// behind; an emptied class is as non-portable as a vendor one.
	if class, ok := getAttr(node, "class"); ok && (strings.Contains(class, "Mso") || strings.TrimSpace(class) == "") {
		removeAttr(node, "class")
		removed++
	}

	for _, key := range droppedAttrs {
		if removeAttr(node, key) {
			removed++
		}
	}

	// Vendor-prefixed and namespaced attributes that survived the string
	// pre-pass (the parser lowercases keys, so match on prefix).
	for i := 0; i < len(node.Attr); {
		key := strings.ToLower(node.Attr[i].Key)
		if strings.HasPrefix(key, "mso-") || strings.Contains(key, ":") || strings.HasPrefix(key, "xmlns") {
			node.Attr = append(node.Attr[:i], node.Attr[i+1:]...)
			removed++
			continue
		}
		i++
	}

	return removed
}

// keptLayoutDecls filters a style value down to border/padding/margin
// declarations, preserved verbatim. Returns "" when nothing survives, so the
// caller can drop the attribute instead of leaving style="".
func keptLayoutDecls(style string) string {
	var kept []string
	for _, d := range parseStyle(style) {
		for _, prefix := range layoutStyleProps {
			if strings.HasPrefix(d.Property, prefix) {
				kept = append(kept, d.Raw)
				break
			}
		}
	}
	return strings.Join(kept, ";")
}
