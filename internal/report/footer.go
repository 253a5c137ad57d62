package report

import (
	"strings"
	"time"
)

// Footer appends generation metadata to a report.
type Footer struct {
	decorator
	generatedBy string
	generatedAt time.Time
}

// NewFooter wraps inner with a footer. The generation time is taken from the
// configured clock when NewFooter is called.
func NewFooter(inner Report, generatedBy string, opts ...Option) *Footer {
	o := newOptions(opts)
	return &Footer{
		decorator:   decorator{inner: inner},
		generatedBy: generatedBy,
		generatedAt: o.clock(),
	}
}

// Generate returns the wrapped text followed by the footer block.
func (f *Footer) Generate() string {
	var sb strings.Builder
	rule := strings.Repeat("─", 70) + "\n"

	sb.WriteString(f.inner.Generate())
	sb.WriteString("\n")
	sb.WriteString(rule)
	sb.WriteString("Generated by: " + f.generatedBy + "\n")
	sb.WriteString("Date and time: " + f.generatedAt.Format(TimestampLayout) + "\n")
	sb.WriteString("Report type: " + f.Type() + "\n")
	sb.WriteString(rule)

	return sb.String()
}
