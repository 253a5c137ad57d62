package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nao1215/finreport/internal/config"
	"github.com/nao1215/finreport/internal/report"
)

// reportSeparator keeps consecutive plain-text reports apart.
const reportSeparator = "\n"

// reportFile is an io.Writer for the --output file. The file is created
// on the first write, so a run that produces no report leaves an existing
// file untouched.
type reportFile struct {
	path string
	f    *os.File
}

// Write creates the file if needed and appends p to it.
func (r *reportFile) Write(p []byte) (int, error) {
	if r.f == nil {
		f, err := createReportFile(r.path)
		if err != nil {
			return 0, err
		}
		r.f = f
	}
	return r.f.Write(p)
}

// Close closes the file if it was ever opened.
func (r *reportFile) Close() error {
	if r.f == nil {
		return nil
	}
	return r.f.Close()
}

// createReportFile creates path and its parent directories, truncating any
// existing file.
func createReportFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports may be confidential, so only the owner can read the file.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// newReportWriter returns the writer selected by cfg: stdout, the report
// file, or both with --tee. The returned close function must be called once
// writing is done.
// Several plain-text reports sharing one output are separated by a blank line.
func newReportWriter(cfg *config.Config, stdout io.Writer, multiple bool) (report.Writer, func() error) {
	if cfg.ReportFile == "" {
		return formatWriter(cfg, stdout, multiple), func() error { return nil }
	}

	file := &reportFile{path: cfg.ReportFile}
	w := formatWriter(cfg, file, multiple)
	if cfg.Tee {
		w = report.NewMultiWriter(w, formatWriter(cfg, stdout, multiple))
	}
	return w, file.Close
}

// formatWriter returns a plain-text or JSON writer on output.
func formatWriter(cfg *config.Config, output io.Writer, multiple bool) report.Writer {
	if cfg.JSONReport {
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	}

	var opts []report.SimpleWriterOption
	if multiple {
		opts = append(opts, report.WithSeparator(reportSeparator))
	}
	return report.NewSimpleWriter(output, opts...)
}
