package report

import (
	"encoding/json"
	"io"
)

// JSONWriter outputs reports wrapped in a JSON envelope.
// This format is designed for tool integration and programmatic processing;
// the report body stays plain text inside the "text" field.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Envelope is the JSON representation of a generated report.
type Envelope struct {
	// Title is the report title.
	Title string `json:"title"`

	// Type is the report type label.
	Type string `json:"type"`

	// Text is the full generated report text.
	Text string `json:"text"`
}

// NewEnvelope generates report and captures it in an Envelope.
func NewEnvelope(report Report) Envelope {
	return Envelope{
		Title: report.Title(),
		Type:  report.Type(),
		Text:  report.Generate(),
	}
}

// Write outputs the report envelope as JSON followed by a newline.
func (w *JSONWriter) Write(report Report) (int, error) {
	var data []byte
	var err error

	envelope := NewEnvelope(report)
	if w.indent {
		data, err = json.MarshalIndent(envelope, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(envelope)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
