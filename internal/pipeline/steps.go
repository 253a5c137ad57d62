package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nao1215/finreport/internal/factory"
	"github.com/nao1215/finreport/internal/report"
)

// ErrMissingPlan is returned by BuildStep when no plan was resolved.
var ErrMissingPlan = errors.New("job has no resolved plan")

// ErrMissingReport is returned by WriteStep when no report was built.
var ErrMissingReport = errors.New("job has no report")

// ResolveStep applies the archetype policy to the job's config.
type ResolveStep struct{}

// NewResolveStep creates a ResolveStep.
func NewResolveStep() *ResolveStep {
	return &ResolveStep{}
}

// Name returns the step name.
func (s *ResolveStep) Name() string {
	return "resolve"
}

// Do stores the resolved plan in job.
func (s *ResolveStep) Do(_ context.Context, job *Job) error {
	plan, err := factory.Resolve(job.Archetype, job.Config)
	if err != nil {
		return err
	}
	job.Plan = &plan
	return nil
}

// BuildStep builds the report from the job's plan.
type BuildStep struct {
	factory *factory.Factory
}

// NewBuildStep creates a BuildStep using f.
func NewBuildStep(f *factory.Factory) *BuildStep {
	return &BuildStep{factory: f}
}

// Name returns the step name.
func (s *BuildStep) Name() string {
	return "build"
}

// Do stores the built report in job.
func (s *BuildStep) Do(_ context.Context, job *Job) error {
	if job.Plan == nil {
		return ErrMissingPlan
	}

	r, err := s.factory.Apply(*job.Plan)
	if err != nil {
		return err
	}
	job.Report = r
	return nil
}

// WriteStep outputs the job's report.
// Writes from concurrent pipelines sharing one WriteStep are serialized.
type WriteStep struct {
	writer report.Writer
	mu     sync.Mutex
}

// NewWriteStep creates a WriteStep writing to w.
func NewWriteStep(w report.Writer) *WriteStep {
	return &WriteStep{writer: w}
}

// Name returns the step name.
func (s *WriteStep) Name() string {
	return "write"
}

// Do writes the job's report.
func (s *WriteStep) Do(_ context.Context, job *Job) error {
	if job.Report == nil {
		return ErrMissingReport
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.writer.Write(job.Report); err != nil {
		return fmt.Errorf("failed to write %s report: %w", job.Archetype, err)
	}
	return nil
}

// DefaultPipeline creates a pipeline that resolves and builds a report with f.
// Extra steps, such as a WriteStep, run after the build.
func DefaultPipeline(f *factory.Factory, opts []Option, extra ...Step) *Pipeline {
	p := New(opts...)
	p.AddSteps(NewResolveStep(), NewBuildStep(f))
	p.AddSteps(extra...)
	return p
}
