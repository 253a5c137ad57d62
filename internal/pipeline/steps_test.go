package pipeline

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/finreport/internal/builder"
	"github.com/nao1215/finreport/internal/config"
	"github.com/nao1215/finreport/internal/factory"
	"github.com/nao1215/finreport/internal/log"
	"github.com/nao1215/finreport/internal/report"
)

// newTestFactory creates a factory with a private registry and fixed clock.
func newTestFactory() *factory.Factory {
	return factory.New(
		factory.WithRegistry(config.NewRegistry()),
		factory.WithClock(func() time.Time { return time.Date(2024, 6, 30, 18, 0, 0, 0, time.UTC) }),
		factory.WithBuilderOptions(builder.WithSignatureCode("SIG-PIPELINE01")),
	)
}

// TestResolveStep tests plan resolution.
func TestResolveStep(t *testing.T) {
	t.Parallel()

	t.Run("stores plan", func(t *testing.T) {
		t.Parallel()

		job := NewJob(factory.Branch, factory.ReportConfig{Branches: []string{"Rosario"}})
		if err := NewResolveStep().Do(t.Context(), job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Plan == nil || job.Plan.Title != "Branch Report: Rosario" {
			t.Errorf("plan = %+v", job.Plan)
		}
	})

	t.Run("rejects unknown archetype", func(t *testing.T) {
		t.Parallel()

		job := NewJob("payroll", factory.ReportConfig{})
		if err := NewResolveStep().Do(t.Context(), job); !errors.Is(err, factory.ErrUnsupportedArchetype) {
			t.Errorf("expected ErrUnsupportedArchetype, got %v", err)
		}
	})
}

// TestBuildStep tests report building.
func TestBuildStep(t *testing.T) {
	t.Parallel()

	t.Run("requires a plan", func(t *testing.T) {
		t.Parallel()

		job := NewJob(factory.Sales, factory.ReportConfig{})
		if err := NewBuildStep(newTestFactory()).Do(t.Context(), job); !errors.Is(err, ErrMissingPlan) {
			t.Errorf("expected ErrMissingPlan, got %v", err)
		}
	})

	t.Run("logs the created report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		f := factory.New(
			factory.WithRegistry(config.NewRegistry()),
			factory.WithLogger(log.NewSecureLogger(&buf, true)),
		)

		job := NewJob(factory.Financial, factory.ReportConfig{RequireSignature: true})
		if err := DefaultPipeline(f, nil).Execute(t.Context(), job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		for _, want := range []string{"report created", "archetype=financial", "layers=\"[watermark header signature footer]\""} {
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in log output: %s", want, out)
			}
		}
	})

	t.Run("builds from plan", func(t *testing.T) {
		t.Parallel()

		job := NewJob(factory.Inventory, factory.ReportConfig{Country: "Colombia"})
		p := DefaultPipeline(newTestFactory(), nil)

		if err := p.Execute(t.Context(), job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if job.Report == nil {
			t.Fatal("expected a report")
		}
		if job.Report.Type() != "Inventory Report" {
			t.Errorf("Type() = %q", job.Report.Type())
		}
		if !strings.Contains(job.Report.Generate(), "Currency: COP\n") {
			t.Error("expected COP currency")
		}
	})
}

// TestWriteStep tests report output.
func TestWriteStep(t *testing.T) {
	t.Parallel()

	t.Run("requires a report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		step := NewWriteStep(report.NewSimpleWriter(&buf))
		if err := step.Do(t.Context(), NewJob(factory.Sales, factory.ReportConfig{})); !errors.Is(err, ErrMissingReport) {
			t.Errorf("expected ErrMissingReport, got %v", err)
		}
	})

	t.Run("default pipeline with write step", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		p := DefaultPipeline(newTestFactory(), nil, NewWriteStep(report.NewSimpleWriter(&buf)))

		if got := strings.Join(p.StepNames(), ","); got != "resolve,build,write" {
			t.Errorf("StepNames() = %s", got)
		}

		job := NewJob(factory.Executive, factory.ReportConfig{})
		if err := p.Execute(t.Context(), job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "Signature code: SIG-PIPELINE01") {
			t.Errorf("expected written report, got:\n%s", buf.String())
		}
	})
}
