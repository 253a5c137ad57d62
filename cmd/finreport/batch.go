package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/nao1215/finreport/internal/config"
	"github.com/nao1215/finreport/internal/factory"
	"github.com/nao1215/finreport/internal/pipeline"
	"github.com/spf13/cobra"
)

// allArchetypes is the argument that selects every archetype.
const allArchetypes = "all"

// errBatchFailed is returned when at least one report of a batch failed.
var errBatchFailed = errors.New("batch generation failed")

// NewBatchCmd creates the batch command.
func NewBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <archetype>... | all",
		Short: "Generate several standard reports concurrently",
		Long: `Batch composes several archetype reports with the same settings.

Reports are generated concurrently and written in the order the archetypes
were given, separated by a blank line. A failing report does not stop the
others; the command fails once all reports are done.

Examples:
  # Every archetype for Mexico
  finreport batch all --country Mexico

  # Sales and inventory reports, two at a time
  finreport batch sales inventory -n 2

  # JSON envelopes written to one file
  finreport batch all --json -o reports/all.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runBatchCmd,
	}

	addReportFlags(cmd)
	cmd.Flags().IntP("concurrency", "n", config.DefaultConcurrency,
		"Number of reports generated at the same time")

	return cmd
}

// runBatchCmd executes the batch command.
func runBatchCmd(cmd *cobra.Command, args []string) error {
	archetypes, err := parseArchetypes(args)
	if err != nil {
		return err
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	for _, a := range archetypes {
		cfg.Archetypes = append(cfg.Archetypes, a.String())
	}

	cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd)

	ctx, cancel := signalContext(cmd, logger)
	defer cancel()

	return runBatch(ctx, cmd, cfg, archetypes, logger)
}

// parseArchetypes expands "all" and removes duplicates, keeping the first
// occurrence of each archetype.
func parseArchetypes(args []string) ([]factory.Archetype, error) {
	var archetypes []factory.Archetype
	seen := make(map[factory.Archetype]bool)

	add := func(a factory.Archetype) {
		if !seen[a] {
			seen[a] = true
			archetypes = append(archetypes, a)
		}
	}

	for _, arg := range args {
		if strings.EqualFold(strings.TrimSpace(arg), allArchetypes) {
			for _, a := range factory.Archetypes() {
				add(a)
			}
			continue
		}

		a, err := factory.ParseArchetype(arg)
		if err != nil {
			return nil, err
		}
		add(a)
	}

	return archetypes, nil
}

// runBatch generates the reports concurrently and writes them in order.
func runBatch(ctx context.Context, cmd *cobra.Command, cfg *config.Config, archetypes []factory.Archetype, logger *slog.Logger) (err error) {
	writer, closeOutput := newReportWriter(cfg, cmd.OutOrStdout(), len(archetypes) > 1)
	defer func() {
		if cerr := closeOutput(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	f := factory.New(
		factory.WithRegistry(newRegistry(cfg, logger)),
		factory.WithLogger(logger),
	)

	processor := pipeline.NewBatchProcessor(
		func() *pipeline.Pipeline {
			return pipeline.DefaultPipeline(f, []pipeline.Option{pipeline.WithLogger(logger)})
		},
		pipeline.WithBatchLogger(logger),
		pipeline.WithConcurrency(cfg.Concurrency),
	)

	rc := reportConfig(cfg)
	jobs := make([]*pipeline.Job, len(archetypes))
	for i, a := range archetypes {
		jobs[i] = pipeline.NewJob(a, rc)
	}

	startTime := time.Now()

	progress := newBatchProgress(cmd.ErrOrStderr(), len(jobs))
	batchErr := processor.ProcessBatchWithCallback(ctx, jobs, progress.done)

	var failed []string
	for _, job := range jobs {
		if job.Failed() {
			failed = append(failed, fmt.Sprintf("%s: %s", job.Archetype, job.ErrorMessage))
			continue
		}
		if _, err := writer.Write(job.Report); err != nil {
			return fmt.Errorf("failed to write %s report: %w", job.Archetype, err)
		}
	}

	logger.Info("batch completed",
		"reports", len(jobs)-len(failed),
		"failed", len(failed),
		"elapsed", time.Since(startTime).Round(time.Millisecond),
		"output", outputName(cfg),
	)

	if batchErr != nil {
		return fmt.Errorf("%w: %w", errCancelled, batchErr)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%w: %d of %d reports: %s",
			errBatchFailed, len(failed), len(jobs), strings.Join(failed, "; "))
	}
	return nil
}

// batchProgress prints one line per finished report.
type batchProgress struct {
	mu       sync.Mutex
	w        io.Writer
	total    int
	finished int
}

func newBatchProgress(w io.Writer, total int) *batchProgress {
	return &batchProgress{w: w, total: total}
}

// done is the batch callback. Lines are numbered in completion order.
func (p *batchProgress) done(job *pipeline.Job, _ int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.finished++
	if job.Failed() {
		fmt.Fprintf(p.w, "[%d/%d] %s report failed: %s\n", p.finished, p.total, job.Archetype, job.ErrorMessage)
		return
	}
	fmt.Fprintf(p.w, "[%d/%d] %s report ready\n", p.finished, p.total, job.Archetype)
}
