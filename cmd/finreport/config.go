package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/nao1215/finreport/internal/config"
	"github.com/nao1215/finreport/internal/factory"
	"github.com/nao1215/finreport/internal/log"
	"github.com/spf13/cobra"
)

// errUnknownSetting is returned when a registry key or country has no value.
var errUnknownSetting = errors.New("setting not found")

// NewConfigCmd creates the config command and its subcommands.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration registry",
		Long: `Config prints the settings of the configuration registry: the built-in
values merged with the registry section of the configuration file.

Values stored under sensitive keys such as passwords or tokens are masked.

Examples:
  # Show every setting
  finreport config show

  # Show one setting
  finreport config get company.name

  # Show the report format used for a country
  finreport config format Spain

  # Show the template title of an archetype
  finreport config template sales`,
	}

	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .finreport in current or home directory)")

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigFormatCmd())
	cmd.AddCommand(newConfigTemplateCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every registry setting",
		Args:  cobra.NoArgs,
		RunE:  runConfigShowCmd,
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one registry setting",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfigGetCmd,
	}
}

func newConfigFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <country>",
		Short: "Print the report format configured for a country",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfigFormatCmd,
	}
}

func newConfigTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template <archetype>",
		Short: "Print the template title configured for an archetype",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfigTemplateCmd,
	}
}

// loadRegistry builds the registry for the config subcommands.
func loadRegistry(cmd *cobra.Command) (*config.Registry, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.InheritedFlags().GetString("config")
	if err != nil {
		return nil, err
	}

	if err := loadConfigFile(cfg); err != nil {
		return nil, err
	}

	return newRegistry(cfg, setupLogger(cmd)), nil
}

// runConfigShowCmd prints every setting as "key = value", sorted by key.
func runConfigShowCmd(cmd *cobra.Command, _ []string) error {
	registry, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, key := range registry.Keys() {
		value, _ := registry.GetString(key)
		printSetting(out, key, value)
	}
	return nil
}

// runConfigGetCmd prints one setting.
func runConfigGetCmd(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	value, ok := registry.GetString(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownSetting, args[0])
	}
	printSetting(cmd.OutOrStdout(), args[0], value)
	return nil
}

// runConfigFormatCmd prints the report format of a country.
func runConfigFormatCmd(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	format, ok := registry.ReportFormatForCountry(args[0])
	if !ok {
		return fmt.Errorf("%w: no report format for country %q", errUnknownSetting, args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), format)
	return nil
}

// runConfigTemplateCmd prints the template title of an archetype.
func runConfigTemplateCmd(cmd *cobra.Command, args []string) error {
	archetype, err := factory.ParseArchetype(args[0])
	if err != nil {
		return err
	}

	registry, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	title, ok := registry.ReportTemplate(archetype.String())
	if !ok {
		return fmt.Errorf("%w: no template for archetype %q", errUnknownSetting, archetype)
	}
	fmt.Fprintln(cmd.OutOrStdout(), title)
	return nil
}

// printSetting writes one setting, masking sensitive values.
func printSetting(w io.Writer, key, value string) {
	if log.IsSensitiveKey(key) {
		value = log.MaskValue
	}
	fmt.Fprintf(w, "%s = %s\n", key, value)
}
