package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of jobs run at once unless
// WithConcurrency says otherwise.
const DefaultConcurrency = 4

// BatchProcessor runs one pipeline per job concurrently.
// It uses errgroup to manage goroutines and respect concurrency limits.
type BatchProcessor struct {
	// pipelineFactory creates a new pipeline for each job.
	pipelineFactory func() *Pipeline

	// concurrency is the maximum number of jobs running at once.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent jobs.
// Non-positive values are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
// pipelineFactory is called once per job so that jobs never share a pipeline.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatchWithCallback runs every job concurrently. Results stay in
// jobs, in input order. A failing job records its error and does not stop
// the others.
//
// If callback is non-nil it is called as each job finishes. The callback runs
// on the job's goroutine, so it must be safe for concurrent use if it touches
// shared state.
//
// The returned error is non-nil only when ctx was cancelled before all jobs
// started.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	jobs []*Job,
	callback func(job *Job, index int),
) error {
	bp.logger.Info("starting batch processing",
		"total_jobs", len(jobs),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	err := bp.run(ctx, jobs, func(job *Job, index int) {
		if job.Failed() {
			bp.logger.Warn("report generation failed",
				"archetype", job.Archetype.String(),
				"index", index+1,
				"error", job.Err,
			)
		} else {
			bp.logger.Info("report generated",
				"archetype", job.Archetype.String(),
				"index", index+1,
				"steps", job.PerformedSteps,
			)
		}

		if callback != nil {
			callback(job, index)
		}
	})

	bp.logger.Info("batch processing complete",
		"total_jobs", len(jobs),
		"failed", countFailed(jobs),
		"elapsed", time.Since(startTime),
	)

	return err
}

// run executes the jobs with at most bp.concurrency in flight.
// Jobs that never started because ctx was cancelled record ctx's error.
func (bp *BatchProcessor) run(ctx context.Context, jobs []*Job, done func(job *Job, index int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, job := range jobs {
		if err := gctx.Err(); err != nil {
			job.recordError(err)
			continue
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				job.recordError(err)
				return err
			}

			// The failure is kept in the job; other jobs keep running.
			_ = bp.pipelineFactory().Execute(gctx, job) //nolint:errcheck // recorded in job

			done(job, i)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// countFailed returns the number of jobs that recorded an error.
func countFailed(jobs []*Job) int {
	n := 0
	for _, job := range jobs {
		if job.Failed() {
			n++
		}
	}
	return n
}
