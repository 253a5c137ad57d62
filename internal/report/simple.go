package report

import (
	"io"
	"strings"
)

// SimpleWriter outputs the generated report text as is.
type SimpleWriter struct {
	baseWriter

	// separator is written after each report when non-empty.
	separator string
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithSeparator writes sep after every report, which keeps several reports
// apart when they share one output.
func WithSeparator(sep string) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.separator = sep
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report text, ending it with a newline if it lacks one.
func (w *SimpleWriter) Write(report Report) (int, error) {
	var sb strings.Builder

	text := report.Generate()
	sb.WriteString(text)
	if !strings.HasSuffix(text, "\n") {
		sb.WriteString("\n")
	}
	if w.separator != "" {
		sb.WriteString(w.separator)
	}

	return io.WriteString(w.output, sb.String())
}
