package document

import (
	"fmt"
	"slices"
	"strings"
)

// TableTitlePrefix precedes the title line of a named table.
const TableTitlePrefix = "📊 "

// Table is a leaf node holding a header row and data rows.
// Every row has exactly one cell per header; rows that do not are rejected
// when they are added, never at render time.
type Table struct {
	nodeBase
	leaf
	headers []string
	rows    [][]string
}

// NewTable creates a table without headers or rows.
func NewTable(name string, level int) *Table {
	return &Table{
		nodeBase: newNodeBase(name, level),
		leaf:     leaf{kind: "table"},
	}
}

// SetHeaders sets the column headers, which fixes the column count.
// It fails with ErrValidation if rows were already added with a different length.
func (t *Table) SetHeaders(headers ...string) error {
	for i, row := range t.rows {
		if len(row) != len(headers) {
			return fmt.Errorf("%w: table %q: existing row %d has %d cells, new headers have %d",
				ErrValidation, t.name, i, len(row), len(headers))
		}
	}
	t.headers = slices.Clone(headers)
	return nil
}

// AddRow appends a data row.
// It fails with ErrValidation unless the row has one cell per header.
func (t *Table) AddRow(cells ...string) error {
	if len(cells) != len(t.headers) {
		return fmt.Errorf("%w: table %q: row has %d cells, expected %d",
			ErrValidation, t.name, len(cells), len(t.headers))
	}
	t.rows = append(t.rows, slices.Clone(cells))
	return nil
}

// Headers returns a copy of the column headers.
func (t *Table) Headers() []string {
	return slices.Clone(t.headers)
}

// Rows returns a copy of the data rows.
func (t *Table) Rows() [][]string {
	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		rows[i] = slices.Clone(row)
	}
	return rows
}

// ColumnWidths returns, for every column, the longest of its header and its
// cells, measured in code points.
func (t *Table) ColumnWidths() []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = runeLen(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runeLen(cell))
		}
	}
	return widths
}

// Render returns the optional title line and the box-drawn grid followed by
// a blank line.
func (t *Table) Render() string {
	var sb strings.Builder

	indent := t.indent()
	widths := t.ColumnWidths()

	if t.name != "" {
		sb.WriteString(indent + TableTitlePrefix + t.name + "\n")
	}

	sb.WriteString(indent + rule(widths, "┌", "┬", "┐") + "\n")
	sb.WriteString(indent + cells(t.headers, widths) + "\n")
	sb.WriteString(indent + rule(widths, "├", "┼", "┤") + "\n")
	for _, row := range t.rows {
		sb.WriteString(indent + cells(row, widths) + "\n")
	}
	sb.WriteString(indent + rule(widths, "└", "┴", "┘") + "\n\n")

	return sb.String()
}

// rule draws a horizontal grid line using the given corner and junction glyphs.
func rule(widths []int, left, junction, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for i, w := range widths {
		sb.WriteString(strings.Repeat("─", w+2))
		if i < len(widths)-1 {
			sb.WriteString(junction)
		}
	}
	sb.WriteString(right)
	return sb.String()
}

// cells draws one grid row, each value left-justified in its column.
func cells(values []string, widths []int) string {
	var sb strings.Builder
	sb.WriteString("│")
	for i, v := range values {
		sb.WriteString(" " + padRight(v, widths[i]) + " │")
	}
	return sb.String()
}
