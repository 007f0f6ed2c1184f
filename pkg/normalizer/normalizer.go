// Package normalizer provides interfaces and implementations for normalizing
// HTML pasted from word processors. Normalizers transform messy exported HTML
// into clean, semantic, portable HTML.
package normalizer

// Normalizer transforms HTML content into a normalized form.
// The default implementation strips vendor markup and repairs structure
// while preserving semantic formatting intent.
type Normalizer interface {
	// Clean transforms the input HTML into its normalized form.
	// Empty input yields empty output, never an error.
	Clean(html string) (string, error)

	// Name returns the normalizer type for logging/debugging.
	Name() string
}
