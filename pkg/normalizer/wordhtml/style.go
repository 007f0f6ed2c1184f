package wordhtml

import (
	"strings"
)

// styleDecl is a single property/value pair parsed from a style attribute.
// Raw preserves the original declaration text so the scrubber can keep kept
// declarations verbatim, including their spacing and value casing.
type styleDecl struct {
	Property string // lowercased, trimmed
	Value    string // lowercased, trimmed
	Raw      string // original fragment, untrimmed
}

// parseStyle splits a style attribute value into declarations. Declarations
// are parsed fresh at each inspection point; nothing is cached on the node.
// Malformed fragments (no colon) are skipped rather than failing.
func parseStyle(style string) []styleDecl {
	if style == "" {
		return nil
	}
	parts := strings.Split(style, ";")
	decls := make([]styleDecl, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		prop, val, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		decls = append(decls, styleDecl{
			Property: strings.ToLower(strings.TrimSpace(prop)),
			Value:    strings.ToLower(strings.TrimSpace(val)),
			Raw:      part,
		})
	}
	return decls
}

// styleIntent captures the formatting intent declared by an element's style
// attribute. Vertical offset is mutually exclusive with bold/italic when it
// is present (checked first by callers).
type styleIntent struct {
	Bold     bool
	Italic   bool
	Vertical string // "sup", "sub", or ""
}

// detectIntent inspects a style attribute value for formatting intent.
// Word processors emit bold as font-weight:700 or font-weight:bold, italic
// as font-style:italic (sometimes oblique, sometimes with trailing
// semicolons or stray whitespace), and super/subscript as vertical-align.
func detectIntent(style string) styleIntent {
	var intent styleIntent
	for _, d := range parseStyle(style) {
		switch d.Property {
		case "font-weight":
			if d.Value == "700" || d.Value == "bold" {
				intent.Bold = true
			}
		case "font-style":
			if d.Value == "italic" || d.Value == "oblique" {
				intent.Italic = true
			}
		case "vertical-align":
			switch {
			case strings.Contains(d.Value, "super"):
				intent.Vertical = "sup"
			case strings.Contains(d.Value, "sub"):
				intent.Vertical = "sub"
			}
		}
	}
	return intent
}

// hasIntent reports whether any formatting intent was detected.
func (si styleIntent) hasIntent() bool {
	return si.Bold || si.Italic || si.Vertical != ""
}

// semanticTags returns the replacement tag chain for the intent, outermost
// first. Bold+italic nests strong around em, in that order.
func (si styleIntent) semanticTags() []string {
	if si.Vertical != "" {
		return []string{si.Vertical}
	}
	switch {
	case si.Bold && si.Italic:
		return []string{"strong", "em"}
	case si.Bold:
		return []string{"strong"}
	case si.Italic:
		return []string{"em"}
	}
	return nil
}
