package wordhtml

import (
	"fmt"
	"strings"
	"time"
)

// Stats captures metrics about what the normalizer did.
type Stats struct {
	// Size metrics
	InputBytes  int `json:"input_bytes"`
	OutputBytes int `json:"output_bytes"`

	// Vendor pre-pass
	VendorBytesStripped int `json:"vendor_bytes_stripped"`

	// Semantic promotion
	Promotions map[string]int `json:"promotions"` // tag -> count

	// Attribute scrubbing
	AttributesRemoved int `json:"attributes_removed"`

	// Wrapper removal and tag normalization
	WrappersUnwrapped int            `json:"wrappers_unwrapped"`
	TagsRenamed       map[string]int `json:"tags_renamed"` // old tag -> count

	// Structural repair
	Repairs map[string]int `json:"repairs"` // repair kind -> count

	// Document-order correction
	ReorderFired bool `json:"reorder_fired"`

	// Timing
	ParseDuration     time.Duration `json:"parse_duration_ms"`
	TransformDuration time.Duration `json:"transform_duration_ms"`
	OutputDuration    time.Duration `json:"output_duration_ms"`
	TotalDuration     time.Duration `json:"total_duration_ms"`
}

// NewStats creates a new Stats instance with initialized maps.
func NewStats() *Stats {
	return &Stats{
		Promotions:  make(map[string]int),
		TagsRenamed: make(map[string]int),
		Repairs:     make(map[string]int),
	}
}

// ReductionPercent returns the percentage reduction in size.
func (s *Stats) ReductionPercent() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.InputBytes-s.OutputBytes) / float64(s.InputBytes) * 100
}

// RecordPromotion records that a container was promoted to a semantic tag.
func (s *Stats) RecordPromotion(tag string) {
	s.Promotions[strings.ToLower(tag)]++
}

// RecordRename records a legacy tag rename.
func (s *Stats) RecordRename(oldTag string) {
	s.TagsRenamed[strings.ToLower(oldTag)]++
}

// RecordRepair records a structural repair of the given kind.
func (s *Stats) RecordRepair(kind string) {
	s.Repairs[kind]++
}

// TotalRepairs returns the sum of all structural repairs.
func (s *Stats) TotalRepairs() int {
	total := 0
	for _, count := range s.Repairs {
		total += count
	}
	return total
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Size: %d -> %d bytes (%.1f%% reduction)\n",
		s.InputBytes, s.OutputBytes, s.ReductionPercent()))

	if s.VendorBytesStripped > 0 {
		sb.WriteString(fmt.Sprintf("Vendor markup stripped: %d bytes\n", s.VendorBytesStripped))
	}

	if len(s.Promotions) > 0 {
		parts := make([]string, 0, len(s.Promotions))
		for tag, count := range s.Promotions {
			parts = append(parts, fmt.Sprintf("%s=%d", tag, count))
		}
		sb.WriteString("Promotions: " + strings.Join(parts, ", ") + "\n")
	}

	if s.AttributesRemoved > 0 {
		sb.WriteString(fmt.Sprintf("Attributes removed: %d\n", s.AttributesRemoved))
	}

	if s.WrappersUnwrapped > 0 {
		sb.WriteString(fmt.Sprintf("Wrappers unwrapped: %d\n", s.WrappersUnwrapped))
	}

	if s.TotalRepairs() > 0 {
		parts := make([]string, 0, len(s.Repairs))
		for kind, count := range s.Repairs {
			parts = append(parts, fmt.Sprintf("%s=%d", kind, count))
		}
		sb.WriteString("Repairs: " + strings.Join(parts, ", ") + "\n")
	}

	if s.ReorderFired {
		sb.WriteString("Document order: reversed\n")
	}

	sb.WriteString(fmt.Sprintf("Timing: parse=%v, transform=%v, output=%v, total=%v\n",
		s.ParseDuration.Round(time.Millisecond),
		s.TransformDuration.Round(time.Millisecond),
		s.OutputDuration.Round(time.Millisecond),
		s.TotalDuration.Round(time.Millisecond)))

	return sb.String()
}

// Warning represents a non-fatal issue encountered during normalization.
type Warning struct {
	Phase   string `json:"phase"`   // "parse", "transform", "output"
	Message string `json:"message"` // Human-readable description
	Context string `json:"context"` // Element or pattern that caused the issue
}

// String returns a formatted warning message.
func (w Warning) String() string {
	if w.Context != "" {
		return fmt.Sprintf("[%s] %s (context: %s)", w.Phase, w.Message, w.Context)
	}
	return fmt.Sprintf("[%s] %s", w.Phase, w.Message)
}

// Result contains the output of a normalization operation.
type Result struct {
	// Content is the normalized output. On parse errors, this contains the
	// original input (graceful degradation).
	Content string `json:"content"`

	// Stats contains metrics about what was done.
	Stats *Stats `json:"stats"`

	// Warnings contains non-fatal issues encountered.
	Warnings []Warning `json:"warnings,omitempty"`

	// Error is set only on catastrophic failures (content is still returned).
	Error error `json:"error,omitempty"`
}

// AddWarning adds a warning to the result.
func (r *Result) AddWarning(phase, message, context string) {
	r.Warnings = append(r.Warnings, Warning{
		Phase:   phase,
		Message: message,
		Context: context,
	})
}

// HasWarnings returns true if any warnings were recorded.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}
