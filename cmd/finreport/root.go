package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for finreport.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finreport",
		Short: "Compose structured financial reports",
		Long: `finreport composes corporate financial reports as plain text.

Standard archetypes (sales, inventory, financial, branch, executive,
consolidated) are generated with a fixed policy for charts, summary,
watermark, signature and audit. Free-form reports can be assembled with the
custom command, and the stats command prints the figures of one branch.

Settings are read from flags and completed from a .finreport configuration
file found in the current directory, the home directory or the XDG config
directory.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write log output as JSON")

	// Add subcommands
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewBatchCmd())
	cmd.AddCommand(NewCustomCmd())
	cmd.AddCommand(NewStatsCmd())
	cmd.AddCommand(NewConfigCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
