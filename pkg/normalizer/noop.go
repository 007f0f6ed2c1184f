package normalizer

// Noop passes content through without modification.
// Use this when the input is already clean, or when a caller wants to
// disable normalization without changing its wiring.
type Noop struct{}

// NewNoop creates a new no-op normalizer.
func NewNoop() *Noop {
	return &Noop{}
}

// Clean returns the input unchanged.
func (n *Noop) Clean(html string) (string, error) {
	return html, nil
}

// Name returns the normalizer type.
func (n *Noop) Name() string {
	return "noop"
}
