package document

import (
	"fmt"
	"slices"
	"strings"
)

// SectionBorder is the glyph used for the rules above and below a section header.
const SectionBorder = "═"

// sectionRuleBase is the border width of a hypothetical level-0 section.
// Each level narrows the border by two glyphs.
const sectionRuleBase = 50

// Section is a named container node.
// It exclusively owns its children and renders them in insertion order
// below its own header.
type Section struct {
	nodeBase
	children []Node
}

// NewSection creates an empty section at the given level.
func NewSection(name string, level int) *Section {
	return &Section{nodeBase: newNodeBase(name, level)}
}

// Add appends child to the section.
// It fails if child is nil, already belongs to a section, or is this section
// or one of its ancestors.
func (s *Section) Add(child Node) error {
	if isNil(child) {
		return ErrNilNode
	}

	cb := child.base()
	if cb.parent != nil {
		return fmt.Errorf("%w: %q is owned by %q", ErrNodeOwned, cb.name, cb.parent.name)
	}

	if sec, ok := child.(*Section); ok {
		for p := s; p != nil; p = p.parent {
			if p == sec {
				return fmt.Errorf("%w: %q", ErrCycle, sec.name)
			}
		}
	}

	cb.parent = s
	s.children = append(s.children, child)
	return nil
}

// Remove detaches child from the section.
// The removed node can then be added to another section.
func (s *Section) Remove(child Node) error {
	if isNil(child) {
		return ErrNilNode
	}

	i := slices.Index(s.children, child)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, child.Name())
	}

	s.children = slices.Delete(s.children, i, i+1)
	child.base().parent = nil
	return nil
}

// Child returns the child at index.
func (s *Section) Child(index int) (Node, error) {
	if index < 0 || index >= len(s.children) {
		return nil, fmt.Errorf("%w: %d (section %q has %d children)",
			ErrIndexOutOfRange, index, s.name, len(s.children))
	}
	return s.children[index], nil
}

// ChildCount returns the number of direct children.
func (s *Section) ChildCount() (int, error) {
	return len(s.children), nil
}

// Children returns a copy of the section's direct children.
func (s *Section) Children() []Node {
	return slices.Clone(s.children)
}

// Render returns the section header followed by every child's rendering.
func (s *Section) Render() string {
	var sb strings.Builder

	indent := s.indent()
	border := strings.Repeat(SectionBorder, s.borderWidth())

	sb.WriteString(indent + border + "\n")
	sb.WriteString(indent + headerPrefix(s.level) + s.name + "\n")
	sb.WriteString(indent + border + "\n\n")

	for _, child := range s.children {
		sb.WriteString(child.Render())
	}

	return sb.String()
}

// borderWidth returns 50 - 2*level, never less than zero.
func (s *Section) borderWidth() int {
	return max(sectionRuleBase-2*s.level, 0)
}

// headerPrefix returns the markdown-like weight marker for a header level.
func headerPrefix(level int) string {
	switch level {
	case 1:
		return "# "
	case 2:
		return "## "
	case 3:
		return "### "
	default:
		return "#### "
	}
}
