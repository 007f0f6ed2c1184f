package wordhtml

import (
	"bytes"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	// preBlockNewlineRe and postBlockNewlineRe match the newlines a previous
	// formatting pass inserted around block-level tags, so re-formatting
	// starts from a clean slate. Only block boundaries are touched:
	// whitespace between inline tags separates words and must survive.
	preBlockNewlineRe  = regexp.MustCompile(`[ \t]*\n\s*(<(?:p|h[1-6]|ul|ol|li|blockquote|table|thead|tbody|tr)[\s>])`)
	postBlockNewlineRe = regexp.MustCompile(`(</(?:p|h[1-6]|ul|ol|li|blockquote|table|thead|tbody|tr)>)[ \t]*\n\s*`)

	// blockOpenRe and blockCloseRe match block-level tag boundaries in the
	// serialized string for readability formatting.
	blockOpenRe  = regexp.MustCompile(`(<(?:p|h[1-6]|ul|ol|li|blockquote|table|thead|tbody|tr)[\s>])`)
	blockCloseRe = regexp.MustCompile(`(</(?:p|h[1-6]|ul|ol|li|blockquote|table|thead|tbody|tr)>)`)

	// tripleNewlineRe collapses runs of three or more newlines.
	tripleNewlineRe = regexp.MustCompile(`\n{3,}`)

	// adjacentItemsRe and adjacentHeadingsRe tighten spacing between
	// consecutive list items and consecutive headings.
	adjacentItemsRe    = regexp.MustCompile(`</li>\n+(\s*)<li`)
	adjacentHeadingsRe = regexp.MustCompile(`(</h[1-6]>)\n+(<h[1-6])`)

	// anchorPunctRe catches a closing anchor tag followed by space then
	// punctuation, reintroduced by serialization.
	anchorPunctRe = regexp.MustCompile(`(</a>)[\s\x{00a0}]+([.,!?;:])`)

	// stringPunctRe catches residual space-before-punctuation in the
	// formatted string without touching inserted newlines.
	stringPunctRe = regexp.MustCompile(`[ \x{00a0}]+([.,!?;:])`)
)

// generateOutput re-linearizes the tree and applies readability formatting
// and the configured output conversion.
func (n *Normalizer) generateOutput(doc *goquery.Document, result *Result) (string, error) {
	serialized, err := n.serialize(doc)
	if err != nil {
		return "", err
	}

	if n.config.FormatOutput {
		serialized = formatBlocks(serialized)
	}

	// Final punctuation pass on the string, catching anything serialization
	// reintroduced.
	serialized = anchorPunctRe.ReplaceAllString(serialized, "$1$2")
	serialized = stringPunctRe.ReplaceAllString(serialized, "$1")

	switch n.config.Output {
	case OutputText:
		return htmlToText(serialized), nil
	case OutputMarkdown:
		markdown, err := md.ConvertString(serialized)
		if err != nil {
			result.AddWarning("output", "Markdown conversion failed, returning HTML", err.Error())
			return serialized, nil
		}
		return strings.TrimSpace(markdown), nil
	default:
		return serialized, nil
	}
}

// serialize walks the body's direct children in document order and
// concatenates each child's rendered form. When no block-level element
// children exist, remaining content is wrapped in a paragraph so bare
// inline input still yields valid block structure.
func (n *Normalizer) serialize(doc *goquery.Document) (string, error) {
	body := bodyNode(doc)
	if body == nil {
		out, err := doc.Html()
		if err != nil {
			return "", err
		}
		return out, nil
	}

	var buf bytes.Buffer
	hasBlockChild := false
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && isBlockTag(c.Data) {
			hasBlockChild = true
		}
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}

	out := buf.String()
	if !hasBlockChild {
		if strings.TrimSpace(strings.ReplaceAll(out, nbsp, " ")) == "" {
			return "", nil
		}
		out = "<p>" + strings.TrimSpace(out) + "</p>"
	}
	return out, nil
}

// formatBlocks inserts line breaks around block-level tags for human
// readability, then tightens the result.
func formatBlocks(s string) string {
	s = postBlockNewlineRe.ReplaceAllString(s, "$1")
	s = preBlockNewlineRe.ReplaceAllString(s, "$1")
	s = blockOpenRe.ReplaceAllString(s, "\n$1")
	s = blockCloseRe.ReplaceAllString(s, "$1\n")
	s = tripleNewlineRe.ReplaceAllString(s, "\n\n")
	s = adjacentItemsRe.ReplaceAllString(s, "</li>\n$1<li")
	s = adjacentHeadingsRe.ReplaceAllString(s, "$1\n$2")
	return strings.TrimSpace(s)
}

// htmlToText extracts plain text from serialized HTML.
func htmlToText(serialized string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(serialized))
	if err != nil {
		tagRe := regexp.MustCompile(`<[^>]*>`)
		return strings.TrimSpace(tagRe.ReplaceAllString(serialized, ""))
	}
	text := doc.Text()
	text = whitespaceRunRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
