package report

import (
	"strings"
	"time"
)

// AuditTitle is the heading of the audit box.
const AuditTitle = "AUDIT NOTES"

// Audit appends an auditor box to a report.
type Audit struct {
	decorator
	auditor   string
	notes     string
	auditedAt time.Time
}

// NewAudit wraps inner with an audit box. The audit date is taken from the
// configured clock when NewAudit is called.
func NewAudit(inner Report, auditor, notes string, opts ...Option) *Audit {
	o := newOptions(opts)
	return &Audit{
		decorator: decorator{inner: inner},
		auditor:   auditor,
		notes:     notes,
		auditedAt: o.clock(),
	}
}

// Generate returns the wrapped text followed by the audit box.
func (a *Audit) Generate() string {
	var sb strings.Builder

	sb.WriteString(a.inner.Generate())
	sb.WriteString("\n")
	sb.WriteString("┌" + strings.Repeat("─", bannerWidth) + "┐\n")
	sb.WriteString("│" + padRight(" "+AuditTitle, bannerWidth) + "│\n")
	sb.WriteString("├" + strings.Repeat("─", bannerWidth) + "┤\n")
	sb.WriteString(auditRow("Auditor: ", a.auditor))
	sb.WriteString(auditRow("Notes: ", a.notes))
	sb.WriteString(auditRow("Date: ", a.auditedAt.Format(TimestampLayout)))
	sb.WriteString("└" + strings.Repeat("─", bannerWidth) + "┘\n")

	return sb.String()
}

// auditRow draws one labeled line of the audit box.
// Values wider than the remaining column are truncated with an ellipsis.
func auditRow(label, value string) string {
	field := bannerWidth - 2 - runeLen(label)
	return "│ " + label + padRight(truncateString(value, field), field) + " │\n"
}
