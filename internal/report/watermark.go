package report

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// watermarkWidth is the number of border glyphs between the banner corners.
const watermarkWidth = 55

// Watermark frames a report between two confidentiality banners.
//
// The closing banner opens with a bottom border instead of a top border, so
// it does not mirror the opening banner.
type Watermark struct {
	decorator
	text string
}

// NewWatermark wraps inner with banners showing text in upper case.
func NewWatermark(inner Report, text string) *Watermark {
	return &Watermark{
		decorator: decorator{inner: inner},
		text:      text,
	}
}

// Generate returns the opening banner, the wrapped text and the closing banner.
func (w *Watermark) Generate() string {
	var sb strings.Builder

	label := "║  " + cases.Upper(language.Und).String(w.text) + "  ║\n"
	top := "╔" + strings.Repeat("═", watermarkWidth) + "╗\n"
	bottom := "╚" + strings.Repeat("═", watermarkWidth) + "╝\n"

	sb.WriteString(top)
	sb.WriteString(label)
	sb.WriteString(bottom)
	sb.WriteString("\n")
	sb.WriteString(w.inner.Generate())
	sb.WriteString("\n")
	sb.WriteString(bottom)
	sb.WriteString(label)
	sb.WriteString(bottom)

	return sb.String()
}
