package main

import (
	"fmt"

	"github.com/nao1215/finreport/internal/builder"
	"github.com/nao1215/finreport/internal/config"
	"github.com/spf13/cobra"
)

// NewStatsCmd creates the stats command.
func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the statistics block of one branch",
		Long: `Stats prints a framed summary of one branch: its identity, the number of
products and sales, and the total amount sold in the branch currency.

The currency follows the country unless --currency is given.

Examples:
  # Statistics of the Madrid branch
  finreport stats --code ES-001 --name "Madrid Centro" --country Spain --city Madrid \
    --products 1200 --sales 3450 --total 1250000

  # Same block as a JSON envelope in a file
  finreport stats --code MX-001 --name "CDMX Norte" --country Mexico -j -o stats/mx-001.json`,
		Args: cobra.NoArgs,
		RunE: runStatsCmd,
	}

	cmd.Flags().String("code", "", "Branch code (required)")
	cmd.Flags().String("name", "", "Branch name (required)")
	cmd.Flags().String("country", "", "Branch country")
	cmd.Flags().String("city", "", "Branch city")
	cmd.Flags().String("currency", "", "Currency code (default: currency of the country)")
	cmd.Flags().Int("products", 0, "Number of products")
	cmd.Flags().Int("sales", 0, "Number of sales")
	cmd.Flags().Float64("total", 0, "Total amount sold")

	addOutputFlags(cmd)

	return cmd
}

// runStatsCmd executes the stats command.
func runStatsCmd(cmd *cobra.Command, _ []string) (err error) {
	stats, err := readStatsFlags(cmd)
	if err != nil {
		return err
	}

	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)
	if err := readOutputFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.ValidateOutput(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	r, err := builder.NewStatistics(stats)
	if err != nil {
		return err
	}

	logger := setupLogger(cmd)
	logger.Debug("branch statistics built",
		"code", stats.Code,
		"country", stats.Country,
		"output", outputName(cfg),
	)

	writer, closeOutput := newReportWriter(cfg, cmd.OutOrStdout(), false)
	defer func() {
		if cerr := closeOutput(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	if _, err := writer.Write(r); err != nil {
		return fmt.Errorf("failed to write statistics: %w", err)
	}
	return nil
}

// readStatsFlags collects the branch figures from the flags.
func readStatsFlags(cmd *cobra.Command) (builder.BranchStatistics, error) {
	var (
		s   builder.BranchStatistics
		err error
	)

	text := []struct {
		flag string
		dst  *string
	}{
		{"code", &s.Code},
		{"name", &s.Name},
		{"country", &s.Country},
		{"city", &s.City},
		{"currency", &s.Currency},
	}
	for _, f := range text {
		if *f.dst, err = cmd.Flags().GetString(f.flag); err != nil {
			return s, err
		}
	}

	if s.Products, err = cmd.Flags().GetInt("products"); err != nil {
		return s, err
	}
	if s.Sales, err = cmd.Flags().GetInt("sales"); err != nil {
		return s, err
	}
	if s.Total, err = cmd.Flags().GetFloat64("total"); err != nil {
		return s, err
	}
	return s, nil
}
