package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nao1215/finreport/internal/config"
	"github.com/nao1215/finreport/internal/factory"
	"github.com/nao1215/finreport/internal/pipeline"
	"github.com/nao1215/finreport/internal/report"
)

// TestNewBatchCmd tests the batch command creation.
func TestNewBatchCmd(t *testing.T) {
	t.Parallel()

	cmd := NewBatchCmd()

	t.Run("requires at least one argument", func(t *testing.T) {
		t.Parallel()
		if cmd.Args == nil {
			t.Error("expected Args validator")
		}
	})

	t.Run("has concurrency flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("concurrency")
		if flag == nil {
			t.Fatal("expected concurrency flag")
		}
		if flag.Shorthand != "n" {
			t.Errorf("expected shorthand 'n', got %q", flag.Shorthand)
		}
		if flag.DefValue != "4" {
			t.Errorf("expected default '4', got %q", flag.DefValue)
		}
	})

	t.Run("shares the report flags", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"country", "branch", "json", "output", "config"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected %s flag", name)
			}
		}
	})
}

func TestParseArchetypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    []factory.Archetype
		wantErr error
	}{
		{
			name: "keeps argument order",
			args: []string{"inventory", "sales"},
			want: []factory.Archetype{factory.Inventory, factory.Sales},
		},
		{
			name: "expands all",
			args: []string{"all"},
			want: factory.Archetypes(),
		},
		{
			name: "removes duplicates",
			args: []string{"Sales", "sales", "ALL"},
			want: []factory.Archetype{
				factory.Sales, factory.Inventory, factory.Financial,
				factory.Branch, factory.Executive, factory.Consolidated,
			},
		},
		{
			name:    "rejects unknown archetype",
			args:    []string{"sales", "payroll"},
			wantErr: factory.ErrUnsupportedArchetype,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseArchetypes(tt.args)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseArchetypes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestRunBatchCmd tests the batch command execution.
func TestRunBatchCmd(t *testing.T) {
	t.Parallel()

	t.Run("writes every report in argument order", func(t *testing.T) {
		t.Parallel()

		cfgPath := writeConfigFile(t, emptyConfig)
		out, err := executeCommand(t, "batch", "executive", "sales", "inventory", "-c", cfgPath, "-n", "2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		executive := strings.Index(out, "# Executive Report")
		sales := strings.Index(out, "# Sales Report")
		inventory := strings.Index(out, "# Inventory Report")
		if executive < 0 || sales < 0 || inventory < 0 {
			t.Fatalf("expected all three reports, got:\n%s", out)
		}
		if !(executive < sales && sales < inventory) {
			t.Errorf("reports out of order: executive=%d sales=%d inventory=%d", executive, sales, inventory)
		}
	})

	t.Run("all archetypes as JSON", func(t *testing.T) {
		t.Parallel()

		cfgPath := writeConfigFile(t, emptyConfig)
		out, err := executeCommand(t, "batch", "all", "-c", cfgPath, "--json", "--country", "Argentina")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var types []string
		dec := json.NewDecoder(bytes.NewBufferString(out))
		for {
			var env report.Envelope
			if err := dec.Decode(&env); errors.Is(err, io.EOF) {
				break
			} else if err != nil {
				t.Fatalf("invalid JSON stream: %v", err)
			}
			if !strings.Contains(env.Text, "Currency: ARS") {
				t.Errorf("%s: expected ARS currency", env.Type)
			}
			types = append(types, env.Type)
		}

		want := []string{
			"Sales Report",
			"Inventory Report",
			"Consolidated Financial Report",
			"Branch Report",
			"Executive Report",
			"Corporate Consolidated Report",
		}
		if diff := cmp.Diff(want, types); diff != "" {
			t.Errorf("report types mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("prints progress to stderr", func(t *testing.T) {
		t.Parallel()

		cfgPath := writeConfigFile(t, emptyConfig)

		var stdout, stderr bytes.Buffer
		cmd := NewRootCmd()
		cmd.SetOut(&stdout)
		cmd.SetErr(&stderr)
		cmd.SetArgs([]string{"batch", "sales", "branch", "-c", cfgPath})
		if err := cmd.ExecuteContext(t.Context()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		progress := stderr.String()
		for _, want := range []string{"[1/2] ", "[2/2] ", "sales report ready", "branch report ready"} {
			if !strings.Contains(progress, want) {
				t.Errorf("expected %q in stderr, got:\n%s", want, progress)
			}
		}
		if strings.Contains(stdout.String(), "report ready") {
			t.Error("progress must not be mixed into the reports")
		}
	})

	t.Run("tee writes every report to the file and stdout", func(t *testing.T) {
		t.Parallel()

		cfgPath := writeConfigFile(t, emptyConfig)
		outPath := filepath.Join(t.TempDir(), "all.txt")
		out, err := executeCommand(t, "batch", "sales", "executive", "-c", cfgPath, "-o", outPath, "--tee")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("report file not created: %v", err)
		}
		for _, want := range []string{"# Sales Report", "# Executive Report"} {
			if !strings.Contains(out, want) || !strings.Contains(string(data), want) {
				t.Errorf("expected %q in both outputs", want)
			}
		}
	})

	t.Run("rejects non-positive concurrency", func(t *testing.T) {
		t.Parallel()

		cfgPath := writeConfigFile(t, emptyConfig)
		_, err := executeCommand(t, "batch", "sales", "-c", cfgPath, "-n", "0")
		if !errors.Is(err, config.ErrInvalidConcurrency) {
			t.Errorf("expected ErrInvalidConcurrency, got %v", err)
		}
	})

	t.Run("requires an archetype", func(t *testing.T) {
		t.Parallel()

		if _, err := executeCommand(t, "batch"); err == nil {
			t.Error("expected error without archetypes")
		}
	})
}


// TestBatchProgress tests the progress lines printed per finished report.
func TestBatchProgress(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := newBatchProgress(&buf, 2)

	ok := pipeline.NewJob(factory.Sales, factory.ReportConfig{})
	failed := pipeline.NewJob(factory.Branch, factory.ReportConfig{})
	failed.Err = errors.New("boom")
	failed.ErrorMessage = "boom"

	p.done(failed, 1)
	p.done(ok, 0)

	want := "[1/2] branch report failed: boom\n[2/2] sales report ready\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("progress mismatch (-want +got):\n%s", diff)
	}
}
