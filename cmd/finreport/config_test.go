package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/nao1215/finreport/internal/config"
	"github.com/nao1215/finreport/internal/factory"
	"github.com/nao1215/finreport/internal/log"
)

// TestNewConfigCmd tests the config command creation.
func TestNewConfigCmd(t *testing.T) {
	t.Parallel()

	cmd := NewConfigCmd()

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()
		names := make(map[string]bool)
		for _, sub := range cmd.Commands() {
			names[sub.Name()] = true
		}
		for _, want := range []string{"show", "get", "format", "template"} {
			if !names[want] {
				t.Errorf("expected subcommand %q", want)
			}
		}
	})

	t.Run("has persistent config flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("config")
		if flag == nil {
			t.Fatal("expected config flag")
		}
		if flag.Shorthand != "c" {
			t.Errorf("expected shorthand 'c', got %q", flag.Shorthand)
		}
	})
}

// TestRunConfigCmd tests the config subcommands.
func TestRunConfigCmd(t *testing.T) {
	t.Parallel()

	const overrides = `registry:
  company:
    name: "Acme Holdings"
  report:
    format:
      chile: "CLP - dd/MM/yyyy"
  integration:
    erp:
      password: "hunter2"
`

	t.Run("show lists merged settings sorted by key", func(t *testing.T) {
		t.Parallel()

		out, err := executeCommand(t, "config", "show", "-c", writeConfigFile(t, overrides))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, want := range []string{
			"company.name = Acme Holdings",
			"company.headquarters = España",
			"integration.max.branches = 50",
			"report.format.chile = CLP - dd/MM/yyyy",
			"integration.erp.password = " + log.MaskValue,
		} {
			if !strings.Contains(out, want+"\n") {
				t.Errorf("expected output to contain %q, got:\n%s", want, out)
			}
		}
		if strings.Contains(out, "hunter2") {
			t.Error("sensitive value was printed")
		}

		lines := strings.Split(strings.TrimSpace(out), "\n")
		for i := 1; i < len(lines); i++ {
			if lines[i-1] > lines[i] {
				t.Errorf("settings not sorted: %q before %q", lines[i-1], lines[i])
			}
		}
	})

	t.Run("get prints one setting", func(t *testing.T) {
		t.Parallel()

		out, err := executeCommand(t, "config", "get", "system.version", "-c", writeConfigFile(t, emptyConfig))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "system.version = 1.0.0\n" {
			t.Errorf("unexpected output: %q", out)
		}
	})

	t.Run("get fails for unknown key", func(t *testing.T) {
		t.Parallel()

		_, err := executeCommand(t, "config", "get", "no.such.key", "-c", writeConfigFile(t, emptyConfig))
		if !errors.Is(err, errUnknownSetting) {
			t.Errorf("expected errUnknownSetting, got %v", err)
		}
	})

	t.Run("format ignores case", func(t *testing.T) {
		t.Parallel()

		out, err := executeCommand(t, "config", "format", "SPAIN", "-c", writeConfigFile(t, emptyConfig))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "EUR - dd/MM/yyyy\n" {
			t.Errorf("unexpected output: %q", out)
		}
	})

	t.Run("format reads overrides", func(t *testing.T) {
		t.Parallel()

		out, err := executeCommand(t, "config", "format", "Chile", "-c", writeConfigFile(t, overrides))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "CLP - dd/MM/yyyy\n" {
			t.Errorf("unexpected output: %q", out)
		}
	})

	t.Run("format fails for unknown country", func(t *testing.T) {
		t.Parallel()

		_, err := executeCommand(t, "config", "format", "Atlantis", "-c", writeConfigFile(t, emptyConfig))
		if !errors.Is(err, errUnknownSetting) {
			t.Errorf("expected errUnknownSetting, got %v", err)
		}
	})

	t.Run("template prints the archetype title", func(t *testing.T) {
		t.Parallel()

		out, err := executeCommand(t, "config", "template", "sales", "-c", writeConfigFile(t, emptyConfig))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "Corporate Sales Report\n" {
			t.Errorf("unexpected output: %q", out)
		}
	})

	t.Run("template rejects unknown archetype", func(t *testing.T) {
		t.Parallel()

		_, err := executeCommand(t, "config", "template", "payroll", "-c", writeConfigFile(t, emptyConfig))
		if !errors.Is(err, factory.ErrUnsupportedArchetype) {
			t.Errorf("expected ErrUnsupportedArchetype, got %v", err)
		}
	})

	t.Run("explicit missing config file", func(t *testing.T) {
		t.Parallel()

		_, err := executeCommand(t, "config", "show", "-c", "/nonexistent/finreport.yaml")
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})
}
