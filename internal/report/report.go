package report

// Report is a titled, typed piece of generated text.
// Generate is idempotent and has no side effects.
type Report interface {
	// Title returns the report title.
	Title() string

	// Type returns the report type label.
	Type() string

	// Generate returns the full report text.
	Generate() string
}

// Basic is the undecorated report produced by rendering a document tree.
type Basic struct {
	title      string
	reportType string
	text       string
}

// NewBasic creates a Basic report.
func NewBasic(title, reportType, text string) *Basic {
	return &Basic{
		title:      title,
		reportType: reportType,
		text:       text,
	}
}

// Title returns the report title.
func (b *Basic) Title() string {
	return b.title
}

// Type returns the report type label.
func (b *Basic) Type() string {
	return b.reportType
}

// Generate returns the rendered text unchanged.
func (b *Basic) Generate() string {
	return b.text
}
