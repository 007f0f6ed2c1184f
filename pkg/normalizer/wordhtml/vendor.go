package wordhtml

import (
	"regexp"
)

// The vendor pre-pass runs on the raw string before parsing. Word exports
// contain constructs a standards parser "corrects" in ways that destroy
// structure, so they must be gone before the tree is built. Conditional
// comments go first: they can contain whole hidden subtrees that the parser
// would otherwise materialize.
var (
	// <!--[if gte mso 9]> ... <![endif]--> and the comment-per-side variant
	// <!--[if !supportLists]--> ... <!--[endif]-->.
	conditionalCommentRe = regexp.MustCompile(`(?is)<!--\[if[^\]]*\]>.*?<!\[endif\]-->`)
	conditionalPairRe    = regexp.MustCompile(`(?is)<!--\[if[^\]]*\]-->.*?<!--\[endif\]-->`)

	// Class tokens such as MsoNormal, MsoListParagraph.
	vendorClassTokenRe = regexp.MustCompile(`\bMso[A-Z][A-Za-z0-9]*\b`)

	// mso-* declarations inside style="..." values. Only the declaration is
	// stripped, never the whole attribute.
	vendorStyleDeclRe = regexp.MustCompile(`(?i)mso-[a-z-]+\s*:\s*[^;"']*;?`)

	// Empty and non-empty o:p pairs. Word uses <o:p> to mark paragraph ends;
	// a non-empty one stands in for an intentional break.
	emptyNamespacePairRe    = regexp.MustCompile(`(?is)<o:p>\s*</o:p>`)
	nonEmptyNamespacePairRe = regexp.MustCompile(`(?is)<o:p>.*?</o:p>`)

	// Any remaining vendor-namespaced tag, open or close.
	vendorNamespaceTagRe = regexp.MustCompile(`(?is)</?(?:o|w|m|v|x|st1):[^>]*>`)

	// Bare vendor attributes and XML namespace declarations.
	vendorAttrRe = regexp.MustCompile(`(?i)\s(?:xmlns(?::[a-z0-9]+)?|(?:v|o|w|st1):[a-z-]+)\s*=\s*"[^"]*"`)
)

// stripVendorMarkup removes proprietary word-processor constructs from the
// raw HTML string. Purely textual; unmatched patterns are left untouched.
func stripVendorMarkup(input string) string {
	out := conditionalCommentRe.ReplaceAllString(input, "")
	out = conditionalPairRe.ReplaceAllString(out, "")
	out = vendorClassTokenRe.ReplaceAllString(out, "")
	out = vendorStyleDeclRe.ReplaceAllString(out, "")
	out = emptyNamespacePairRe.ReplaceAllString(out, "")
	out = nonEmptyNamespacePairRe.ReplaceAllString(out, "&nbsp;")
	out = vendorNamespaceTagRe.ReplaceAllString(out, "")
	out = vendorAttrRe.ReplaceAllString(out, "")
	return out
}
