package report

import (
	"strings"
	"time"
	"unicode/utf8"
)

// TimestampLayout is the date-time format used by the audit and footer blocks
// (dd/mm/yyyy HH:MM:SS).
const TimestampLayout = "02/01/2006 15:04:05"

// decorator holds the wrapped report and forwards Title and Type to it.
// Each concrete decorator embeds it and overrides Generate.
type decorator struct {
	inner Report
}

// Title returns the wrapped report's title.
func (d decorator) Title() string {
	return d.inner.Title()
}

// Type returns the wrapped report's type label.
func (d decorator) Type() string {
	return d.inner.Type()
}

// Unwrap returns the wrapped report.
func (d decorator) Unwrap() Report {
	return d.inner
}

// Option configures a decorator at construction time.
type Option func(*options)

// options holds the construction-time settings shared by decorators.
type options struct {
	// clock returns the time stamped into audit, signature and footer blocks.
	clock func() time.Time

	// signatureCode overrides the derived signature code when non-empty.
	signatureCode string
}

// WithClock sets the time source used when a decorator is created.
// The default is time.Now.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithSignatureCode fixes the signature code instead of deriving a unique one.
func WithSignatureCode(code string) Option {
	return func(o *options) {
		o.signatureCode = code
	}
}

// newOptions applies opts over the defaults.
func newOptions(opts []Option) options {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// runeLen returns the display length of s in code points.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// padRight left-justifies s in a field of width code points.
func padRight(s string, width int) string {
	n := runeLen(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// center places s in the middle of a field of width code points.
// Text wider than the field is truncated.
func center(s string, width int) string {
	s = truncateString(s, width)
	n := runeLen(s)
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// truncateString truncates a string to maxLen code points with ellipsis.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:max(maxLen, 0)])
	}
	return string(r[:maxLen-3]) + "..."
}
