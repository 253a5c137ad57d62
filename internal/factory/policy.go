package factory

import "time"

// source decides whether an optional decorator is enabled.
type source int

const (
	never source = iota
	always
	whenConfidential
	whenSignatureRequired
	whenAuditRequired
)

// enabled evaluates s against cfg.
func (s source) enabled(cfg ReportConfig) bool {
	switch s {
	case always:
		return true
	case whenConfidential:
		return cfg.Confidential
	case whenSignatureRequired:
		return cfg.RequireSignature
	case whenAuditRequired:
		return cfg.RequireAudit
	default:
		return false
	}
}

// preset is one row of the archetype policy.
type preset struct {
	// title is the report title. For the branch archetype it is a prefix
	// followed by the first branch name.
	title     string
	typeLabel string
	charts    bool
	summary   bool
	watermark source
	signature source
	audit     source

	// defaultSigner and defaultRole replace an empty signer identity.
	defaultSigner string
	defaultRole   string

	// defaultAuditor and defaultNotes replace an empty audit identity.
	defaultAuditor string
	defaultNotes   string
}

// branchTitleFallback names the branch in the title when none was given.
const branchTitleFallback = "Branch"

// presets is the archetype policy table.
var presets = map[Archetype]preset{
	Sales: {
		title:     "Sales Report",
		typeLabel: "Sales Report",
		charts:    true,
		summary:   true,
		watermark: whenConfidential,
	},
	Inventory: {
		title:     "Inventory Report",
		typeLabel: "Inventory Report",
		summary:   true,
		watermark: whenConfidential,
	},
	Financial: {
		title:     "Consolidated Financial Report",
		typeLabel: "Consolidated Financial Report",
		charts:    true,
		summary:   true,
		watermark: always,
		signature: whenSignatureRequired,
		audit:     whenAuditRequired,
	},
	Branch: {
		title:     "Branch Report: ",
		typeLabel: "Branch Report",
		charts:    true,
		watermark: whenConfidential,
	},
	Executive: {
		title:         "Executive Report",
		typeLabel:     "Executive Report",
		charts:        true,
		summary:       true,
		watermark:     always,
		signature:     always,
		defaultSigner: "CEO FinanCorp",
		defaultRole:   "Chief Executive Officer",
	},
	Consolidated: {
		title:          "Corporate Consolidated Report",
		typeLabel:      "Corporate Consolidated Report",
		charts:         true,
		summary:        true,
		watermark:      always,
		signature:      always,
		audit:          always,
		defaultSigner:  "CEO FinanCorp",
		defaultRole:    "Chief Executive Officer",
		defaultAuditor: "Internal Auditor",
		defaultNotes:   "Report reviewed and approved in accordance with corporate regulations",
	},
}

// ReportConfig holds the caller-supplied settings of one report.
type ReportConfig struct {
	// Country selects the currency. Empty means corporate scope.
	Country string

	// Start and End bound the period. A zero value is unset.
	Start time.Time
	End   time.Time

	// Branches lists the branches to include. Empty means all.
	Branches []string

	Confidential     bool
	RequireSignature bool
	RequireAudit     bool

	GeneratedBy string
	SignerName  string
	SignerRole  string
	Auditor     string
	AuditNotes  string
}

// Plan is the full builder configuration chosen for one report.
type Plan struct {
	Archetype Archetype
	Title     string
	Type      string

	Country  string
	Start    time.Time
	End      time.Time
	Branches []string

	Charts  bool
	Summary bool

	Header    bool
	Footer    bool
	Watermark bool
	Signature bool
	Audit     bool

	GeneratedBy string
	SignerName  string
	SignerRole  string
	Auditor     string
	AuditNotes  string
}

// Resolve applies the archetype policy to cfg.
// It fails with ErrUnsupportedArchetype for an unknown archetype.
func Resolve(a Archetype, cfg ReportConfig) (Plan, error) {
	p, ok := presets[a]
	if !ok {
		return Plan{}, unsupported(a)
	}

	title := p.title
	if a == Branch {
		name := branchTitleFallback
		if len(cfg.Branches) > 0 {
			name = cfg.Branches[0]
		}
		title += name
	}

	plan := Plan{
		Archetype: a,
		Title:     title,
		Type:      p.typeLabel,

		Country:  cfg.Country,
		Start:    cfg.Start,
		End:      cfg.End,
		Branches: append([]string(nil), cfg.Branches...),

		Charts:  p.charts,
		Summary: p.summary,

		Header:    true,
		Footer:    true,
		Watermark: p.watermark.enabled(cfg),
		Signature: p.signature.enabled(cfg),
		Audit:     p.audit.enabled(cfg),

		GeneratedBy: cfg.GeneratedBy,
	}

	if plan.Signature {
		plan.SignerName = valueOr(cfg.SignerName, p.defaultSigner)
		plan.SignerRole = valueOr(cfg.SignerRole, p.defaultRole)
	}
	if plan.Audit {
		plan.Auditor = valueOr(cfg.Auditor, p.defaultAuditor)
		plan.AuditNotes = valueOr(cfg.AuditNotes, p.defaultNotes)
	}

	return plan, nil
}

// valueOr returns v, or fallback when v is empty.
func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
