package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nao1215/finreport/internal/builder"
	"github.com/nao1215/finreport/internal/config"
	"github.com/nao1215/finreport/internal/report"
	"github.com/spf13/cobra"
)

// errInvalidBranchData is returned when a --branch-data value is malformed.
var errInvalidBranchData = errors.New("invalid branch data: expected name:sales:inventory:performance")

// NewCustomCmd creates the custom command.
func NewCustomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "custom",
		Short: "Compose a free-form report",
		Long: `Custom assembles a report from explicit settings instead of an archetype.

Every optional part is controlled by a flag. The watermark, signature and
audit blocks are added with --confidential, --require-signature and
--require-audit.

Examples:
  # Quarterly review with charts and a watermark
  finreport custom --title "Q1 Review" --type "Quarterly Review" --charts --confidential

  # Bare report without summary, header or footer
  finreport custom --title Draft --type Draft --no-summary --no-header --no-footer

  # Branches with figures
  finreport custom --title "Iberia" --type "Regional Report" --country Spain \
    --branch-data Madrid:1250000:450000:85 --branch-data Sevilla:640000:210000:71`,
		Args: cobra.NoArgs,
		RunE: runCustomCmd,
	}

	cmd.Flags().StringP("title", "t", "", "Report title (required)")
	cmd.Flags().StringP("type", "T", "", "Report type label (required)")
	cmd.Flags().Bool("charts", false, "Include the graphic analysis section")
	cmd.Flags().Bool("no-summary", false, "Omit the executive summary")
	cmd.Flags().Bool("no-header", false, "Omit the corporate header")
	cmd.Flags().Bool("no-footer", false, "Omit the footer")
	cmd.Flags().StringArray("branch-data", nil,
		"Branch with figures as name:sales:inventory:performance (repeatable)")

	addReportFlags(cmd)

	return cmd
}

// runCustomCmd executes the custom command.
func runCustomCmd(cmd *cobra.Command, _ []string) (err error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Custom = true

	if err := readCustomFlags(cmd, cfg); err != nil {
		return err
	}

	rawData, err := cmd.Flags().GetStringArray("branch-data")
	if err != nil {
		return err
	}
	data, err := parseBranchData(rawData)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd)

	b := builder.New(builder.WithRegistry(newRegistry(cfg, logger)))
	r, err := buildCustom(b, cfg, data)
	if err != nil {
		return err
	}

	logger.Debug("custom report built",
		"title", r.Title(),
		"type", r.Type(),
		"country", b.Country(),
		"currency", b.Currency(),
		"layers", b.Layers(),
	)

	writer, closeOutput := newReportWriter(cfg, cmd.OutOrStdout(), false)
	defer func() {
		if cerr := closeOutput(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	if _, err := writer.Write(r); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// readCustomFlags copies the custom-only flags into cfg.
func readCustomFlags(cmd *cobra.Command, cfg *config.Config) error {
	var err error

	if cfg.Title, err = cmd.Flags().GetString("title"); err != nil {
		return err
	}
	if cfg.Type, err = cmd.Flags().GetString("type"); err != nil {
		return err
	}

	toggles := []struct {
		flag string
		dst  *bool
	}{
		{"charts", &cfg.Charts},
		{"no-summary", &cfg.NoSummary},
		{"no-header", &cfg.NoHeader},
		{"no-footer", &cfg.NoFooter},
	}
	for _, t := range toggles {
		if *t.dst, err = cmd.Flags().GetBool(t.flag); err != nil {
			return err
		}
	}

	return nil
}

// buildCustom configures b from cfg and builds the report.
func buildCustom(b *builder.Builder, cfg *config.Config, data []builder.BranchData) (report.Report, error) {
	b.SetTitle(cfg.Title).
		SetType(cfg.Type).
		SetCountry(cfg.Country).
		SetPeriod(cfg.Start, cfg.End).
		IncludeCharts(cfg.Charts).
		IncludeSummary(!cfg.NoSummary).
		WithHeader(!cfg.NoHeader).
		WithFooter(!cfg.NoFooter, cfg.GeneratedBy).
		WithWatermark(cfg.Confidential).
		WithSignature(cfg.RequireSignature, cfg.SignerName, cfg.SignerRole).
		WithAudit(cfg.RequireAudit, cfg.Auditor, cfg.AuditNotes)

	for _, name := range cfg.Branches {
		b.AddBranch(name)
	}
	for _, d := range data {
		b.AddBranchData(d)
	}

	return b.Build()
}

// parseBranchData parses name:sales:inventory:performance values.
// The name may itself contain colons; the last three fields are the figures.
func parseBranchData(values []string) ([]builder.BranchData, error) {
	data := make([]builder.BranchData, 0, len(values))
	for _, v := range values {
		fields := strings.Split(v, ":")
		if len(fields) < 4 {
			return nil, fmt.Errorf("%w: %q", errInvalidBranchData, v)
		}
		n := len(fields)
		name := strings.TrimSpace(strings.Join(fields[:n-3], ":"))
		if name == "" {
			return nil, fmt.Errorf("%w: %q has no branch name", errInvalidBranchData, v)
		}

		sales, err := strconv.ParseInt(strings.TrimSpace(fields[n-3]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: sales: %w", errInvalidBranchData, v, err)
		}
		inventory, err := strconv.ParseInt(strings.TrimSpace(fields[n-2]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: inventory: %w", errInvalidBranchData, v, err)
		}
		performance, err := strconv.Atoi(strings.TrimSpace(fields[n-1]))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: performance: %w", errInvalidBranchData, v, err)
		}

		data = append(data, builder.BranchData{
			Name:        name,
			Sales:       sales,
			Inventory:   inventory,
			Performance: performance,
		})
	}
	return data, nil
}
