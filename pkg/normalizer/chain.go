package normalizer

import (
	"strings"
)

// Chain applies multiple normalizers in sequence.
// This allows composing normalizers for multi-stage processing.
type Chain struct {
	normalizers []Normalizer
}

// NewChain creates a normalizer that applies multiple normalizers in sequence.
// Normalizers are applied in the order provided.
//
// Example:
//
//	chain := normalizer.NewChain(
//	    wordhtml.New(wordhtml.DefaultConfig()),
//	    normalizer.NewMarkdown(),
//	)
func NewChain(normalizers ...Normalizer) *Chain {
	return &Chain{
		normalizers: normalizers,
	}
}

// Clean applies all normalizers in sequence.
func (c *Chain) Clean(content string) (string, error) {
	var err error
	for _, n := range c.normalizers {
		content, err = n.Clean(content)
		if err != nil {
			return "", err
		}
	}
	return content, nil
}

// Name returns the names of all chained normalizers.
func (c *Chain) Name() string {
	names := make([]string, len(c.normalizers))
	for i, n := range c.normalizers {
		names[i] = n.Name()
	}
	return "chain(" + strings.Join(names, "->") + ")"
}
