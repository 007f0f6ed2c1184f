// Package wordhtml normalizes HTML exported by word processors (Microsoft
// Word, Apple TextEdit/Pages, Google Docs) into clean, semantic, portable
// HTML. It strips vendor markup, recovers formatting intent from inline
// styles, repairs invalid nesting, and emits deterministically formatted
// output restricted to a small tag vocabulary.
package wordhtml

import (
	"github.com/go-playground/validator/v10"
)

// OutputFormat specifies the output format of the normalizer.
type OutputFormat string

const (
	OutputHTML     OutputFormat = "html"
	OutputText     OutputFormat = "text"
	OutputMarkdown OutputFormat = "markdown"
)

// Config defines all configuration options for the wordhtml normalizer.
// Each stage of the pipeline can be toggled independently; the defaults
// run the full pipeline.
type Config struct {
	// === Pipeline Stages ===

	// StripVendorMarkup removes proprietary conditional comments, vendor
	// class tokens, vendor CSS declarations, and vendor-namespaced tags
	// before parsing.
	StripVendorMarkup bool `json:"strip_vendor_markup"`

	// PromoteStyles rewrites style-only formatting intent on inline
	// containers into semantic tags (bold -> strong, italic -> em,
	// vertical offset -> sup/sub).
	PromoteStyles bool `json:"promote_styles"`

	// ScrubAttributes removes non-portable attributes from every element.
	ScrubAttributes bool `json:"scrub_attributes"`

	// UnwrapWrappers removes generic inline wrappers (span, font) that no
	// longer carry meaning, splicing their children in place.
	UnwrapWrappers bool `json:"unwrap_wrappers"`

	// NormalizeLegacyTags renames legacy presentational tags to their
	// semantic equivalents (b -> strong, i -> em).
	NormalizeLegacyTags bool `json:"normalize_legacy_tags"`

	// RepairStructure fixes invalid nesting produced by word processors:
	// paragraphs in list items, line breaks in lists, inline tags wrapping
	// blocks, empty semantic tags, empty lists and paragraphs.
	RepairStructure bool `json:"repair_structure"`

	// CorrectDocumentOrder detects the reversed-export defect (title at the
	// end of the document) and reverses the top-level child order.
	CorrectDocumentOrder bool `json:"correct_document_order"`

	// NormalizeWhitespace collapses whitespace runs, trims anchor text, and
	// removes space before terminal punctuation.
	NormalizeWhitespace bool `json:"normalize_whitespace"`

	// FormatOutput inserts line breaks between block elements in the
	// serialized output for readability.
	FormatOutput bool `json:"format_output"`

	// === Scrubbing Options ===

	// KeepLayoutStyles preserves border/padding/margin style declarations
	// on container and table elements during attribute scrubbing.
	KeepLayoutStyles bool `json:"keep_layout_styles"`

	// === Iteration Caps ===

	// EmptyTagPasses bounds the fixed-point loop removing empty semantic
	// tags. Unwrapping one tag can expose a newly empty parent.
	EmptyTagPasses int `json:"empty_tag_passes" validate:"gte=1,lte=100"`

	// NestingRepairPasses bounds the fixed-point loop hoisting block
	// descendants out of inline tags on pathological input.
	NestingRepairPasses int `json:"nesting_repair_passes" validate:"gte=1,lte=100"`

	// === Output ===

	// Output specifies the output format: html, text, or markdown.
	Output OutputFormat `json:"output" validate:"omitempty,oneof=html text markdown"`

	// Debug enables verbose logging of what each stage changed.
	Debug bool `json:"debug"`
}

// DefaultConfig returns the full pipeline configuration. This is what a
// paste-cleaning editor wants: every stage enabled, layout styles kept on
// containers, reference iteration caps.
func DefaultConfig() *Config {
	return &Config{
		StripVendorMarkup:    true,
		PromoteStyles:        true,
		ScrubAttributes:      true,
		UnwrapWrappers:       true,
		NormalizeLegacyTags:  true,
		RepairStructure:      true,
		CorrectDocumentOrder: true,
		NormalizeWhitespace:  true,
		FormatOutput:         true,

		KeepLayoutStyles: true,

		EmptyTagPasses:      5,
		NestingRepairPasses: 10,

		Output: OutputHTML,
		Debug:  false,
	}
}

// PresetMinimal returns a config that only strips vendor markup and scrubs
// attributes. Use when structure should be preserved exactly as pasted.
func PresetMinimal() *Config {
	return &Config{
		StripVendorMarkup:   true,
		ScrubAttributes:     true,
		KeepLayoutStyles:    true,
		EmptyTagPasses:      5,
		NestingRepairPasses: 10,
		Output:              OutputHTML,
	}
}

// PresetStrict returns the default pipeline with layout styles discarded,
// producing output with no style attributes at all.
func PresetStrict() *Config {
	cfg := DefaultConfig()
	cfg.KeepLayoutStyles = false
	return cfg
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// Merge merges another config into this one. Boolean stages from other win
// when set; positive caps from other override.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	merged := *c

	if other.StripVendorMarkup {
		merged.StripVendorMarkup = true
	}
	if other.PromoteStyles {
		merged.PromoteStyles = true
	}
	if other.ScrubAttributes {
		merged.ScrubAttributes = true
	}
	if other.UnwrapWrappers {
		merged.UnwrapWrappers = true
	}
	if other.NormalizeLegacyTags {
		merged.NormalizeLegacyTags = true
	}
	if other.RepairStructure {
		merged.RepairStructure = true
	}
	if other.CorrectDocumentOrder {
		merged.CorrectDocumentOrder = true
	}
	if other.NormalizeWhitespace {
		merged.NormalizeWhitespace = true
	}
	if other.FormatOutput {
		merged.FormatOutput = true
	}
	if other.KeepLayoutStyles {
		merged.KeepLayoutStyles = true
	}

	if other.EmptyTagPasses > 0 {
		merged.EmptyTagPasses = other.EmptyTagPasses
	}
	if other.NestingRepairPasses > 0 {
		merged.NestingRepairPasses = other.NestingRepairPasses
	}
	if other.Output != "" {
		merged.Output = other.Output
	}
	if other.Debug {
		merged.Debug = true
	}

	return &merged
}
