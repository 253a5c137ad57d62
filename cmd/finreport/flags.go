package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/finreport/internal/config"
	"github.com/nao1215/finreport/internal/factory"
	"github.com/nao1215/finreport/internal/log"
	"github.com/spf13/cobra"
)

// addReportFlags registers the flags shared by every command that produces
// reports.
func addReportFlags(cmd *cobra.Command) {
	// Scope flags
	cmd.Flags().String("country", "",
		"Country whose currency is used (empty: corporate scope, multiple currencies)")
	cmd.Flags().String("start", "",
		"Start of the reporting period (yyyy-mm-dd)")
	cmd.Flags().String("end", "",
		"End of the reporting period (yyyy-mm-dd)")
	cmd.Flags().StringSliceP("branch", "b", nil,
		"Branch to include (repeatable, empty: all branches)")

	// Decorator flags
	cmd.Flags().Bool("confidential", false,
		"Mark the report confidential (adds the watermark where the archetype allows it)")
	cmd.Flags().Bool("require-signature", false,
		"Require a digital signature where the archetype allows it")
	cmd.Flags().Bool("require-audit", false,
		"Require an audit block where the archetype allows it")

	// Identity flags
	cmd.Flags().String("generated-by", "",
		"Name printed in the footer (default: SERF System)")
	cmd.Flags().String("signer-name", "", "Name of the signer")
	cmd.Flags().String("signer-role", "", "Role of the signer")
	cmd.Flags().String("auditor", "", "Name of the auditor")
	cmd.Flags().String("audit-notes", "", "Notes printed in the audit block")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .finreport in current or home directory)")

	addOutputFlags(cmd)
}

// addOutputFlags registers the flags that select where reports are written.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Wrap each report in a JSON envelope")
	cmd.Flags().StringP("output", "o", "",
		"Write reports to specified file path (creates directories if needed)")
	cmd.Flags().Bool("tee", false,
		"With --output, also write reports to stdout")
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	return getPersistentBool(cmd, "verbose")
}

// getLogJSONFlag retrieves the log-json flag from the command or its parent.
func getLogJSONFlag(cmd *cobra.Command) bool {
	return getPersistentBool(cmd, "log-json")
}

// getPersistentBool looks a boolean flag up on cmd first and on the root
// command second. A flag defined on neither reads as false.
func getPersistentBool(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return false
		}
	}
	return v
}

// buildConfig creates a Config from the shared report flags.
// Values missing from the command line are completed from the config file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error

	cfg.Country, err = cmd.Flags().GetString("country")
	if err != nil {
		return nil, err
	}

	start, err := cmd.Flags().GetString("start")
	if err != nil {
		return nil, err
	}
	if cfg.Start, err = config.ParseDate(start); err != nil {
		return nil, err
	}

	end, err := cmd.Flags().GetString("end")
	if err != nil {
		return nil, err
	}
	if cfg.End, err = config.ParseDate(end); err != nil {
		return nil, err
	}

	cfg.Branches, err = cmd.Flags().GetStringSlice("branch")
	if err != nil {
		return nil, err
	}

	cfg.Confidential, err = cmd.Flags().GetBool("confidential")
	if err != nil {
		return nil, err
	}

	cfg.RequireSignature, err = cmd.Flags().GetBool("require-signature")
	if err != nil {
		return nil, err
	}

	cfg.RequireAudit, err = cmd.Flags().GetBool("require-audit")
	if err != nil {
		return nil, err
	}

	identity := []struct {
		flag string
		dst  *string
	}{
		{"generated-by", &cfg.GeneratedBy},
		{"signer-name", &cfg.SignerName},
		{"signer-role", &cfg.SignerRole},
		{"auditor", &cfg.Auditor},
		{"audit-notes", &cfg.AuditNotes},
	}
	for _, f := range identity {
		if *f.dst, err = cmd.Flags().GetString(f.flag); err != nil {
			return nil, err
		}
	}

	if err := readOutputFlags(cmd, cfg); err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	if err := loadConfigFile(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// readOutputFlags copies the output flags into cfg.
func readOutputFlags(cmd *cobra.Command, cfg *config.Config) error {
	var err error

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	cfg.Tee, err = cmd.Flags().GetBool("tee")
	return err
}

// loadConfigFile attaches the configuration file to cfg and applies its
// defaults.
// If the user explicitly specified a config file path, a missing file is an
// error. Otherwise an empty configuration is used when no file is found.
func loadConfigFile(cfg *config.Config) error {
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath == "" {
		if cfg.ConfigFilePath != "" {
			return fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
		}
		cfg.File = &config.File{Registry: make(map[string]any)}
		return nil
	}

	file, err := config.LoadConfigFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}
	cfg.File = file

	if err := file.ApplyTo(cfg); err != nil {
		return fmt.Errorf("invalid defaults in %s: %w", configPath, err)
	}
	return nil
}

// newRegistry returns a registry holding the built-in settings overridden by
// the configuration file.
func newRegistry(cfg *config.Config, logger *slog.Logger) *config.Registry {
	registry := config.NewRegistry()
	if cfg.File != nil {
		registry.Merge(cfg.File.Registry)
	}
	logger.Debug("configuration loaded", log.Settings("registry", registry.All()))
	return registry
}

// reportConfig converts the CLI settings into a factory report config.
func reportConfig(cfg *config.Config) factory.ReportConfig {
	return factory.ReportConfig{
		Country:          cfg.Country,
		Start:            cfg.Start,
		End:              cfg.End,
		Branches:         append([]string(nil), cfg.Branches...),
		Confidential:     cfg.Confidential,
		RequireSignature: cfg.RequireSignature,
		RequireAudit:     cfg.RequireAudit,
		GeneratedBy:      cfg.GeneratedBy,
		SignerName:       cfg.SignerName,
		SignerRole:       cfg.SignerRole,
		Auditor:          cfg.Auditor,
		AuditNotes:       cfg.AuditNotes,
	}
}

// setupLogger creates a structured logger that writes to the command's error
// stream and masks sensitive values.
func setupLogger(cmd *cobra.Command) *slog.Logger {
	verbose := getVerboseFlag(cmd)
	if getLogJSONFlag(cmd) {
		return log.NewSecureJSONLogger(cmd.ErrOrStderr(), verbose)
	}
	return log.NewSecureLogger(cmd.ErrOrStderr(), verbose)
}

// signalContext returns a context derived from the command's context that is
// cancelled on SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command, logger *slog.Logger) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// errCancelled is returned when generation was interrupted.
var errCancelled = errors.New("report generation cancelled")
