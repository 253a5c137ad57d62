package document

import "strings"

// TextBulletPrefix precedes the title line of a named text block.
const TextBulletPrefix = "• "

// TextBlock is a leaf node holding literal text.
type TextBlock struct {
	nodeBase
	leaf
	content string
}

// NewTextBlock creates a text block. An empty name renders the content only.
func NewTextBlock(name, content string, level int) *TextBlock {
	return &TextBlock{
		nodeBase: newNodeBase(name, level),
		leaf:     leaf{kind: "text block"},
		content:  content,
	}
}

// Content returns the block's text.
func (t *TextBlock) Content() string {
	return t.content
}

// Render returns the optional bullet title, the content and a blank line.
// Only the first line of multi-line content is indented.
func (t *TextBlock) Render() string {
	var sb strings.Builder
	indent := t.indent()

	if t.name != "" {
		sb.WriteString(indent + TextBulletPrefix + t.name + "\n")
	}
	sb.WriteString(indent + t.content + "\n\n")

	return sb.String()
}
