package builder

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nao1215/finreport/internal/config"
	"github.com/nao1215/finreport/internal/document"
	"github.com/nao1215/finreport/internal/report"
)

// Defaults applied when Build finds a field unset.
const (
	// DefaultGeneratedBy is printed in the footer when no author was given.
	DefaultGeneratedBy = "SERF System"

	// DefaultCompanyName is used when the registry has no company.name.
	DefaultCompanyName = "FinanCorp S.A."

	// Department is the second line of the header banner.
	Department = "Financial Reporting Department"

	// WatermarkText is the label of the confidentiality banners.
	WatermarkText = "CONFIDENTIAL"

	// PeriodLayout formats the period bounds (dd/mm/yyyy).
	PeriodLayout = "02/01/2006"

	// NotAvailable fills figures of branches added without data.
	NotAvailable = "N/A"
)

// Section names of the generated document.
const (
	SectionGeneralInfo  = "General Information"
	SectionSummary      = "Executive Summary"
	SectionConsolidated = "Consolidated Data"
	SectionCharts       = "Graphic Analysis"
	SectionConclusions  = "Conclusions and Recommendations"

	// BranchTableName is the title of the consolidated data table.
	BranchTableName = "Summary by Branch"
)

// BranchTableHeaders are the columns of the consolidated data table.
var BranchTableHeaders = []string{"Branch", "Sales", "Inventory", "Performance"}

const (
	summaryText = "This report consolidates the financial information of the branches of %s " +
		"for the specified period. It includes analyses of sales, inventory and " +
		"operating performance to support strategic decision-making."

	chartsText = "Trend and comparison charts are generated automatically from the " +
		"consolidated data of all branches."

	conclusionsText = "Based on the analysis of the consolidated data, we recommend:\n" +
		"1. Continue monitoring branch performance\n" +
		"2. Optimize inventory levels according to demand\n" +
		"3. Implement improvement strategies in low-performing branches"
)

// BranchData carries the figures shown for one branch.
// Sales and Inventory are whole currency units; Performance is a percentage.
type BranchData struct {
	Name        string
	Sales       int64
	Inventory   int64
	Performance int
}

// branch is one row of the consolidated data table.
// data is nil for a branch added by name only.
type branch struct {
	name string
	data *BranchData
}

// Option configures a Builder.
type Option func(*Builder)

// WithRegistry sets the registry read for the company name.
// The default is config.Default().
func WithRegistry(r *config.Registry) Option {
	return func(b *Builder) {
		if r != nil {
			b.registry = r
		}
	}
}

// WithClock sets the time source stamped into the audit and footer blocks.
func WithClock(clock func() time.Time) Option {
	return func(b *Builder) {
		b.decoratorOpts = append(b.decoratorOpts, report.WithClock(clock))
	}
}

// WithSignatureCode fixes the code printed in the signature block.
func WithSignatureCode(code string) Option {
	return func(b *Builder) {
		b.decoratorOpts = append(b.decoratorOpts, report.WithSignatureCode(code))
	}
}

// Builder accumulates the settings of one report.
// The zero value is not usable; create builders with New.
// A Builder is not safe for concurrent use.
type Builder struct {
	registry      *config.Registry
	decoratorOpts []report.Option

	title      string
	reportType string
	country    string
	currency   string
	start      time.Time
	end        time.Time
	branches   []branch

	includeCharts  bool
	includeSummary bool

	includeHeader    bool
	includeFooter    bool
	includeWatermark bool
	includeSignature bool
	includeAudit     bool

	generatedBy string
	signerName  string
	signerRole  string
	auditor     string
	auditNotes  string
}

// New creates a Builder with the summary, header and footer switched on.
func New(opts ...Option) *Builder {
	b := &Builder{
		includeSummary: true,
		includeHeader:  true,
		includeFooter:  true,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.registry == nil {
		b.registry = config.Default()
	}

	return b
}

// SetTitle sets the report title. It is required.
func (b *Builder) SetTitle(title string) *Builder {
	b.title = title
	return b
}

// SetType sets the report type label. It is required.
func (b *Builder) SetType(reportType string) *Builder {
	b.reportType = reportType
	return b
}

// SetCountry sets the country and resolves its currency at once.
// An empty country clears both.
func (b *Builder) SetCountry(country string) *Builder {
	b.country = strings.TrimSpace(country)
	if b.country == "" {
		b.currency = ""
		return b
	}
	b.currency = CurrencyForCountry(b.country)
	return b
}

// SetPeriod sets the reporting period. A zero bound is unset.
func (b *Builder) SetPeriod(start, end time.Time) *Builder {
	b.start = start
	b.end = end
	return b
}

// AddBranch appends a branch shown without figures.
func (b *Builder) AddBranch(name string) *Builder {
	b.branches = append(b.branches, branch{name: name})
	return b
}

// AddBranchData appends a branch together with its figures.
func (b *Builder) AddBranchData(data BranchData) *Builder {
	b.branches = append(b.branches, branch{name: data.Name, data: &data})
	return b
}

// IncludeCharts toggles the graphic analysis section.
func (b *Builder) IncludeCharts(include bool) *Builder {
	b.includeCharts = include
	return b
}

// IncludeSummary toggles the executive summary section.
func (b *Builder) IncludeSummary(include bool) *Builder {
	b.includeSummary = include
	return b
}

// WithHeader toggles the organization banner.
func (b *Builder) WithHeader(include bool) *Builder {
	b.includeHeader = include
	return b
}

// WithFooter toggles the footer and sets who generated the report.
func (b *Builder) WithFooter(include bool, generatedBy string) *Builder {
	b.includeFooter = include
	b.generatedBy = generatedBy
	return b
}

// WithWatermark toggles the confidentiality banners.
func (b *Builder) WithWatermark(include bool) *Builder {
	b.includeWatermark = include
	return b
}

// WithSignature toggles the signature block and sets the signer.
func (b *Builder) WithSignature(include bool, name, role string) *Builder {
	b.includeSignature = include
	b.signerName = name
	b.signerRole = role
	return b
}

// WithAudit toggles the audit block and sets its content.
func (b *Builder) WithAudit(include bool, auditor, notes string) *Builder {
	b.includeAudit = include
	b.auditor = auditor
	b.auditNotes = notes
	return b
}

// Country returns the configured country, or "" when unset.
func (b *Builder) Country() string {
	return b.country
}

// Currency returns the currency resolved from the country, or "" when the
// country is unset.
func (b *Builder) Currency() string {
	return b.currency
}

// Layers returns the decorator layers Build applies, innermost first.
func (b *Builder) Layers() []string {
	return b.stack().Layers()
}

// Build renders a new document tree and wraps it in the enabled decorators.
// It fails with ErrConfiguration when the title or type is empty.
func (b *Builder) Build() (report.Report, error) {
	if strings.TrimSpace(b.title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrConfiguration)
	}
	if strings.TrimSpace(b.reportType) == "" {
		return nil, fmt.Errorf("%w: report type is required", ErrConfiguration)
	}

	root := document.NewSection(b.title, 1)

	parts := []func() (document.Node, error){
		b.generalInfoSection,
	}
	if b.includeSummary {
		parts = append(parts, b.summarySection)
	}
	parts = append(parts, b.consolidatedSection)
	if b.includeCharts {
		parts = append(parts, chartsSection)
	}
	parts = append(parts, conclusionsSection)

	for _, part := range parts {
		node, err := part()
		if err != nil {
			return nil, err
		}
		if err := root.Add(node); err != nil {
			return nil, err
		}
	}

	base := report.NewBasic(b.title, b.reportType, root.Render())
	return b.stack().Apply(base), nil
}

// stack translates the toggles into decorator layers.
func (b *Builder) stack() report.Stack {
	s := report.Stack{Options: b.decoratorOpts}

	if b.includeWatermark {
		s.Watermark = &report.WatermarkLayer{Text: WatermarkText}
	}
	if b.includeHeader {
		s.Header = &report.HeaderLayer{
			Organization: b.companyName(),
			Department:   Department,
		}
	}
	if b.includeAudit {
		s.Audit = &report.AuditLayer{Auditor: b.auditor, Notes: b.auditNotes}
	}
	if b.includeSignature {
		s.Signature = &report.SignatureLayer{Signer: b.signerName, Role: b.signerRole}
	}
	if b.includeFooter {
		generatedBy := b.generatedBy
		if generatedBy == "" {
			generatedBy = DefaultGeneratedBy
		}
		s.Footer = &report.FooterLayer{GeneratedBy: generatedBy}
	}

	return s
}

// companyName reads the organization name from the registry.
func (b *Builder) companyName() string {
	return b.registry.StringOr(config.KeyCompanyName, DefaultCompanyName)
}

// textSection creates a level-2 section holding one unnamed level-3 text block.
func textSection(name, content string) (document.Node, error) {
	s := document.NewSection(name, 2)
	if err := s.Add(document.NewTextBlock("", content, 3)); err != nil {
		return nil, err
	}
	return s, nil
}

// generalInfoSection lists the report settings.
func (b *Builder) generalInfoSection() (document.Node, error) {
	var sb strings.Builder

	sb.WriteString("Report Type: " + b.reportType + "\n")
	sb.WriteString("Country: " + valueOr(b.country, "Corporate") + "\n")
	sb.WriteString("Currency: " + valueOr(b.currency, "Multiple") + "\n")
	if !b.start.IsZero() && !b.end.IsZero() {
		sb.WriteString("Period: " + b.start.Format(PeriodLayout) + " – " + b.end.Format(PeriodLayout) + "\n")
	}
	included := "All"
	if len(b.branches) > 0 {
		included = strconv.Itoa(len(b.branches))
	}
	sb.WriteString("Branches included: " + included + "\n")

	return textSection(SectionGeneralInfo, sb.String())
}

// summarySection holds the executive summary paragraph.
func (b *Builder) summarySection() (document.Node, error) {
	return textSection(SectionSummary, fmt.Sprintf(summaryText, b.companyName()))
}

// consolidatedSection holds the per-branch table.
func (b *Builder) consolidatedSection() (document.Node, error) {
	table := document.NewTable(BranchTableName, 3)
	if err := table.SetHeaders(BranchTableHeaders...); err != nil {
		return nil, err
	}

	var rows [][]string
	if len(b.branches) == 0 {
		rows = sampleRows()
	}
	for _, br := range b.branches {
		rows = append(rows, b.branchRow(br))
	}

	for _, row := range rows {
		if err := table.AddRow(row...); err != nil {
			return nil, err
		}
	}

	s := document.NewSection(SectionConsolidated, 2)
	if err := s.Add(table); err != nil {
		return nil, err
	}
	return s, nil
}

// branchRow formats one branch. Figures carry the report currency code
// when a country is set.
func (b *Builder) branchRow(br branch) []string {
	if br.data == nil {
		return []string{br.name, NotAvailable, NotAvailable, NotAvailable}
	}

	p := message.NewPrinter(language.English)
	amount := func(v int64) string {
		if b.currency == "" {
			return p.Sprintf("%d", v)
		}
		return p.Sprintf("%s %d", b.currency, v)
	}

	return []string{
		br.name,
		amount(br.data.Sales),
		amount(br.data.Inventory),
		p.Sprintf("%d%%", br.data.Performance),
	}
}

// sampleRows returns the illustrative rows shown when no branch was added.
func sampleRows() [][]string {
	p := message.NewPrinter(language.English)
	return [][]string{
		{"ES-001 España", p.Sprintf("€%d", 1250000), p.Sprintf("€%d", 450000), "85%"},
		{"MX-001 México", p.Sprintf("$%d", 850000), p.Sprintf("$%d", 320000), "78%"},
		{"AR-001 Argentina", p.Sprintf("ARS %d", 2100000), p.Sprintf("ARS %d", 780000), "72%"},
	}
}

func chartsSection() (document.Node, error) {
	return textSection(SectionCharts, chartsText)
}

func conclusionsSection() (document.Node, error) {
	return textSection(SectionConclusions, conclusionsText)
}

// valueOr returns v, or fallback when v is empty.
func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
