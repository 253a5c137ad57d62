package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nao1215/finreport/internal/config"
	"github.com/nao1215/finreport/internal/factory"
	"github.com/nao1215/finreport/internal/pipeline"
	"github.com/spf13/cobra"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <archetype>",
		Short: "Generate a standard report",
		Long: `Generate composes one report of a standard archetype.

Archetypes:
` + archetypeHelp() + `
Examples:
  # Sales report for Spain covering the first quarter
  finreport generate sales --country Spain --start 2024-01-01 --end 2024-03-31

  # Branch report for Madrid
  finreport generate branch -b Madrid

  # Signed and audited financial report
  finreport generate financial --require-signature --signer-name "Ana García" \
    --require-audit --auditor Deloitte

  # Write a JSON envelope to a file
  finreport generate executive --json -o reports/executive.json`,
		Args: cobra.ExactArgs(1),
		RunE: runGenerateCmd,
	}

	addReportFlags(cmd)

	return cmd
}

// archetypeHelp lists the archetypes with their report types.
func archetypeHelp() string {
	var sb strings.Builder
	for _, a := range factory.Archetypes() {
		fmt.Fprintf(&sb, "  %-10s %s\n", a, a.Description())
	}
	return sb.String()
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, args []string) error {
	archetype, err := factory.ParseArchetype(args[0])
	if err != nil {
		return err
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Archetypes = []string{archetype.String()}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd)

	ctx, cancel := signalContext(cmd, logger)
	defer cancel()

	return generate(ctx, cmd, cfg, archetype, logger)
}

// generate runs one archetype through the default pipeline and writes the
// result.
func generate(ctx context.Context, cmd *cobra.Command, cfg *config.Config, archetype factory.Archetype, logger *slog.Logger) (err error) {
	writer, closeOutput := newReportWriter(cfg, cmd.OutOrStdout(), false)
	defer func() {
		if cerr := closeOutput(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	f := factory.New(
		factory.WithRegistry(newRegistry(cfg, logger)),
		factory.WithLogger(logger),
	)

	p := pipeline.DefaultPipeline(f,
		[]pipeline.Option{pipeline.WithLogger(logger)},
		pipeline.NewWriteStep(writer),
	)

	job := pipeline.NewJob(archetype, reportConfig(cfg))
	if err := p.Execute(ctx, job); err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("%w: %w", errCancelled, err)
		}
		return err
	}

	logger.Debug("report written",
		"archetype", archetype.String(),
		"steps", job.PerformedSteps,
		"output", outputName(cfg),
	)

	return nil
}

// outputName describes where reports go, for logging.
func outputName(cfg *config.Config) string {
	if cfg.ReportFile == "" {
		return "stdout"
	}
	return cfg.ReportFile
}
