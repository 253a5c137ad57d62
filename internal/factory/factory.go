package factory

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/nao1215/finreport/internal/builder"
	"github.com/nao1215/finreport/internal/config"
	"github.com/nao1215/finreport/internal/report"
)

// Factory creates archetype reports.
// A Factory is safe for concurrent use; every call uses a new Builder.
type Factory struct {
	registry    *config.Registry
	logger      *slog.Logger
	clock       func() time.Time
	builderOpts []builder.Option
}

// Option configures a Factory.
type Option func(*Factory)

// WithRegistry sets the registry passed to every builder.
func WithRegistry(r *config.Registry) Option {
	return func(f *Factory) {
		if r != nil {
			f.registry = r
		}
	}
}

// WithLogger sets the logger used to trace report creation.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Factory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithClock sets the time source for CreateSimple periods and for the
// timestamps printed by the decorators.
func WithClock(clock func() time.Time) Option {
	return func(f *Factory) {
		if clock != nil {
			f.clock = clock
		}
	}
}

// WithBuilderOptions appends options passed to every builder.
func WithBuilderOptions(opts ...builder.Option) Option {
	return func(f *Factory) {
		f.builderOpts = append(f.builderOpts, opts...)
	}
}

// New creates a Factory.
func New(opts ...Option) *Factory {
	f := &Factory{
		logger: slog.Default(),
		clock:  time.Now,
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.registry == nil {
		f.registry = config.Default()
	}

	return f
}

// Create builds the report of archetype a for cfg.
func (f *Factory) Create(a Archetype, cfg ReportConfig) (report.Report, error) {
	plan, err := Resolve(a, cfg)
	if err != nil {
		return nil, err
	}

	return f.Apply(plan)
}

// CreateSimple builds the report of archetype a covering the last month.
func (f *Factory) CreateSimple(a Archetype, country, generatedBy string) (report.Report, error) {
	now := f.clock()
	return f.Create(a, ReportConfig{
		Country:     country,
		Start:       monthBefore(now),
		End:         now,
		GeneratedBy: generatedBy,
	})
}

// monthBefore returns t one calendar month earlier. A day missing from the
// earlier month is clamped to its last day, so 31 March gives 29 February.
func monthBefore(t time.Time) time.Time {
	y, m, d := t.Date()
	lastDay := time.Date(y, m, 0, 0, 0, 0, 0, t.Location()).Day()
	return time.Date(y, m-1, min(d, lastDay),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Apply builds a report from a resolved plan and logs its creation at debug
// level.
func (f *Factory) Apply(plan Plan) (report.Report, error) {
	opts := append([]builder.Option{
		builder.WithRegistry(f.registry),
		builder.WithClock(f.clock),
	}, f.builderOpts...)

	b := builder.New(opts...).
		SetTitle(plan.Title).
		SetType(plan.Type).
		SetCountry(plan.Country).
		SetPeriod(plan.Start, plan.End).
		IncludeCharts(plan.Charts).
		IncludeSummary(plan.Summary).
		WithHeader(plan.Header).
		WithFooter(plan.Footer, plan.GeneratedBy).
		WithWatermark(plan.Watermark).
		WithSignature(plan.Signature, plan.SignerName, plan.SignerRole).
		WithAudit(plan.Audit, plan.Auditor, plan.AuditNotes)

	for _, name := range plan.Branches {
		b.AddBranch(name)
	}

	r, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s report: %w", plan.Archetype, err)
	}

	f.logger.Debug("report created",
		"archetype", plan.Archetype.String(),
		"title", plan.Title,
		"country", plan.Country,
		"branches", len(plan.Branches),
		"layers", b.Layers(),
	)

	return r, nil
}

// unsupported wraps ErrUnsupportedArchetype with the offending value.
func unsupported(a Archetype) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedArchetype, string(a))
}
