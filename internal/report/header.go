package report

import "strings"

// bannerWidth is the inner width of the header and audit boxes.
const bannerWidth = 68

// Header places an organization banner above a report.
type Header struct {
	decorator
	organization string
	department   string
}

// NewHeader wraps inner with a banner naming organization and department.
func NewHeader(inner Report, organization, department string) *Header {
	return &Header{
		decorator:    decorator{inner: inner},
		organization: organization,
		department:   department,
	}
}

// Generate returns the banner followed by the wrapped text.
func (h *Header) Generate() string {
	var sb strings.Builder

	sb.WriteString("╔" + strings.Repeat("═", bannerWidth) + "╗\n")
	sb.WriteString("║" + center(h.organization, bannerWidth) + "║\n")
	sb.WriteString("║" + center(h.department, bannerWidth) + "║\n")
	sb.WriteString("╚" + strings.Repeat("═", bannerWidth) + "╝\n\n")
	sb.WriteString(h.inner.Generate())

	return sb.String()
}
