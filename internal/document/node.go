package document

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Node is an element of a document tree.
// It is implemented by *Section, *TextBlock and *Table only.
type Node interface {
	// Name returns the node's display name. It may be empty for leaves.
	Name() string

	// Level returns the nesting depth, starting at 1 for the root.
	Level() int

	// Render returns the node and all of its descendants as text.
	// Render is deterministic: it returns the same text until the tree is mutated.
	Render() string

	// Add appends child to the node's children.
	Add(child Node) error

	// Remove detaches child from the node's children.
	Remove(child Node) error

	// Child returns the child at index.
	Child(index int) (Node, error)

	// ChildCount returns the number of children.
	ChildCount() (int, error)

	// base gives the package access to the shared node state and keeps the
	// interface closed to the three node kinds.
	base() *nodeBase
}

// nodeBase holds the state shared by every node kind.
type nodeBase struct {
	name  string
	level int

	// parent is the section that owns this node, or nil for a detached node.
	parent *Section
}

// newNodeBase creates a nodeBase, clamping level to at least 1.
func newNodeBase(name string, level int) nodeBase {
	if level < 1 {
		level = 1
	}
	return nodeBase{name: name, level: level}
}

// Name returns the node's display name.
func (b *nodeBase) Name() string {
	return b.name
}

// Level returns the node's nesting depth.
func (b *nodeBase) Level() int {
	return b.level
}

func (b *nodeBase) base() *nodeBase {
	return b
}

// isNil reports whether n is nil or a nil pointer of one of the node kinds.
func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Section:
		return v == nil
	case *TextBlock:
		return v == nil
	case *Table:
		return v == nil
	default:
		return false
	}
}

// indent returns two spaces per level below the root.
func (b *nodeBase) indent() string {
	return strings.Repeat("  ", b.level-1)
}

// leaf implements the child operations of nodes that cannot have children.
type leaf struct {
	// kind names the node type in error messages.
	kind string
}

// Add always fails: leaves have no children.
func (l leaf) Add(Node) error {
	return fmt.Errorf("%w: cannot add a child to a %s", ErrUnsupportedOperation, l.kind)
}

// Remove always fails: leaves have no children.
func (l leaf) Remove(Node) error {
	return fmt.Errorf("%w: cannot remove a child from a %s", ErrUnsupportedOperation, l.kind)
}

// Child always fails: leaves have no children.
func (l leaf) Child(int) (Node, error) {
	return nil, fmt.Errorf("%w: a %s has no children", ErrUnsupportedOperation, l.kind)
}

// ChildCount always fails: leaves have no children to count.
func (l leaf) ChildCount() (int, error) {
	return 0, fmt.Errorf("%w: a %s has no children", ErrUnsupportedOperation, l.kind)
}

// runeLen returns the display length of s in code points.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// padRight left-justifies s in a field of width code points.
func padRight(s string, width int) string {
	n := runeLen(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
