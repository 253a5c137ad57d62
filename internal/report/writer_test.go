package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// TestSimpleWriter tests the plain text writer.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes generated text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		n, err := w.Write(NewBasic("T", "Sales", "body\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "body\n" {
			t.Errorf("output = %q, want %q", buf.String(), "body\n")
		}
		if n != buf.Len() {
			t.Errorf("n = %d, want %d", n, buf.Len())
		}
	})

	t.Run("adds missing newline", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(NewBasic("T", "Sales", "body")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "body\n" {
			t.Errorf("output = %q, want %q", buf.String(), "body\n")
		}
	})

	t.Run("writes separator", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithSeparator("---\n"))
		for range 2 {
			if _, err := w.Write(NewBasic("T", "Sales", "x\n")); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if buf.String() != "x\n---\nx\n---\n" {
			t.Errorf("output = %q", buf.String())
		}
	})
}

// TestJSONWriter tests the JSON envelope writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes valid compact JSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)

		if _, err := w.Write(NewBasic("Q1", "Sales", "body\n")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got Envelope
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if got.Title != "Q1" || got.Type != "Sales" || got.Text != "body\n" {
			t.Errorf("got %+v", got)
		}
		if strings.Count(buf.String(), "\n") != 1 {
			t.Error("expected compact output on a single line")
		}
	})

	t.Run("pretty print indents", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithPrettyPrint())

		if _, err := w.Write(NewBasic("Q1", "Sales", "")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"title\": \"Q1\"") {
			t.Errorf("expected indented output, got:\n%s", buf.String())
		}
	})
}

// failingWriter always fails.
type failingWriter struct{}

func (failingWriter) Write(Report) (int, error) {
	return 0, errors.New("write failed")
}

// TestMultiWriter tests fan-out to several writers.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		var a, b bytes.Buffer
		m := NewMultiWriter(NewSimpleWriter(&a), NewJSONWriter(&b))

		n, err := m.Write(NewBasic("T", "Sales", "body\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Len() == 0 || b.Len() == 0 {
			t.Error("expected both writers to receive the report")
		}
		if n != a.Len()+b.Len() {
			t.Errorf("n = %d, want %d", n, a.Len()+b.Len())
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var after bytes.Buffer
		m := NewMultiWriter(failingWriter{}, NewSimpleWriter(&after))

		if _, err := m.Write(NewBasic("T", "Sales", "body\n")); err == nil {
			t.Fatal("expected error")
		}
		if after.Len() != 0 {
			t.Error("expected later writers to be skipped")
		}
	})
}
