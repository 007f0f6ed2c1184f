package wordhtml

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Normalizer is the word-processor HTML normalization pipeline.
// It implements the normalizer.Normalizer interface.
//
// A Normalizer is safe for concurrent use: the configuration is read-only
// after New, and each Clean call owns its parsed tree and Result
// exclusively. Stats are returned per call via CleanWithStats.
type Normalizer struct {
	config *Config
}

// New creates a new Normalizer with the given configuration.
// If config is nil, DefaultConfig() is used.
func New(config *Config) *Normalizer {
	if config == nil {
		config = DefaultConfig()
	}
	return &Normalizer{
		config: config,
	}
}

// Name returns the normalizer name for logging.
func (n *Normalizer) Name() string {
	return "wordhtml"
}

// Clean normalizes pasted word-processor HTML.
// Empty input yields an empty string, never an error. On parse failure the
// original content is returned unchanged (graceful degradation).
func (n *Normalizer) Clean(input string) (string, error) {
	result := n.CleanWithStats(input)
	return result.Content, nil
}

// CleanWithStats performs normalization and returns detailed stats.
func (n *Normalizer) CleanWithStats(input string) *Result {
	startTime := time.Now()
	result := &Result{
		Stats: NewStats(),
	}
	result.Stats.InputBytes = len(input)

	if strings.TrimSpace(input) == "" {
		result.Stats.TotalDuration = time.Since(startTime)
		return result
	}

	// Vendor markup must go before parsing: a standards parser "corrects"
	// the proprietary constructs in ways that destroy structure.
	if n.config.StripVendorMarkup {
		stripped := stripVendorMarkup(input)
		result.Stats.VendorBytesStripped = len(input) - len(stripped)
		input = stripped
	}

	// Parse once; every stage after this mutates the same tree.
	parseStart := time.Now()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	result.Stats.ParseDuration = time.Since(parseStart)

	if err != nil {
		result.Content = input
		result.AddWarning("parse", "HTML parse failed, returning input", err.Error())
		result.Stats.OutputBytes = len(input)
		result.Stats.TotalDuration = time.Since(startTime)
		return result
	}

	transformStart := time.Now()
	n.transform(doc, result)
	result.Stats.TransformDuration = time.Since(transformStart)

	outputStart := time.Now()
	output, err := n.generateOutput(doc, result)
	result.Stats.OutputDuration = time.Since(outputStart)

	if err != nil {
		result.Content = input
		result.AddWarning("output", "Output generation failed, returning input", err.Error())
		result.Stats.OutputBytes = len(input)
	} else {
		result.Content = output
		result.Stats.OutputBytes = len(output)
	}

	result.Stats.TotalDuration = time.Since(startTime)

	return result
}

// transform applies the pipeline stages to the document in order. Data
// flows strictly forward; no stage revisits an earlier stage's output.
func (n *Normalizer) transform(doc *goquery.Document, result *Result) {
	// 1. Recover semantic intent before any style attribute is discarded.
	if n.config.PromoteStyles {
		n.promoteStyles(doc, result)
	}

	// 2. Scrub vendor and non-portable attributes.
	if n.config.ScrubAttributes {
		n.scrubAttributes(doc, result)
	}

	// 3. Remove now-purposeless generic wrappers.
	if n.config.UnwrapWrappers {
		n.unwrapWrappers(doc, result)
	}

	// 4. Canonicalize legacy presentational tags.
	if n.config.NormalizeLegacyTags {
		n.normalizeLegacyTags(doc, result)
	}

	// 5. Repair invalid nesting and clean up structure.
	if n.config.RepairStructure {
		n.repairStructure(doc, result)
	}

	// 6. Detect and reverse whole-document reordering.
	if n.config.CorrectDocumentOrder {
		n.correctDocumentOrder(doc, result)
	}

	// 7. Whitespace and punctuation normalization.
	if n.config.NormalizeWhitespace {
		n.normalizeWhitespace(doc, result)
	}
}
