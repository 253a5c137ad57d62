package report

// WatermarkLayer configures the watermark decorator.
type WatermarkLayer struct {
	Text string
}

// HeaderLayer configures the header decorator.
type HeaderLayer struct {
	Organization string
	Department   string
}

// AuditLayer configures the audit decorator.
type AuditLayer struct {
	Auditor string
	Notes   string
}

// SignatureLayer configures the signature decorator.
type SignatureLayer struct {
	Signer string
	Role   string
}

// FooterLayer configures the footer decorator.
type FooterLayer struct {
	GeneratedBy string
}

// Stack describes which decorators wrap a report. A nil layer is disabled.
//
// Apply always wraps in the same order: watermark innermost, then header,
// audit, signature and footer outermost. The resulting text reads, top to
// bottom: header banner, watermark banner, content, watermark banner, audit
// box, signature block, footer.
type Stack struct {
	Watermark *WatermarkLayer
	Header    *HeaderLayer
	Audit     *AuditLayer
	Signature *SignatureLayer
	Footer    *FooterLayer

	// Options are passed to the decorators that take them.
	Options []Option
}

// Apply wraps base with every enabled layer.
func (s Stack) Apply(base Report) Report {
	r := base

	if s.Watermark != nil {
		r = NewWatermark(r, s.Watermark.Text)
	}
	if s.Header != nil {
		r = NewHeader(r, s.Header.Organization, s.Header.Department)
	}
	if s.Audit != nil {
		r = NewAudit(r, s.Audit.Auditor, s.Audit.Notes, s.Options...)
	}
	if s.Signature != nil {
		r = NewSignature(r, s.Signature.Signer, s.Signature.Role, s.Options...)
	}
	if s.Footer != nil {
		r = NewFooter(r, s.Footer.GeneratedBy, s.Options...)
	}

	return r
}

// Layers returns the names of the enabled layers in application order.
func (s Stack) Layers() []string {
	var names []string
	if s.Watermark != nil {
		names = append(names, "watermark")
	}
	if s.Header != nil {
		names = append(names, "header")
	}
	if s.Audit != nil {
		names = append(names, "audit")
	}
	if s.Signature != nil {
		names = append(names, "signature")
	}
	if s.Footer != nil {
		names = append(names, "footer")
	}
	return names
}
