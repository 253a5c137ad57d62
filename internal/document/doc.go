// Package document provides the node tree that a financial report is assembled from.
//
// A tree is made of three node kinds:
//   - Section: a named container holding an ordered list of child nodes
//   - TextBlock: a leaf holding literal text, optionally preceded by a bullet title
//   - Table: a leaf holding a header row and data rows, rendered as a box-drawn grid
//
// Every node renders itself to fixed-width monospace text. Indentation and the
// weight of section headers are driven by the node's level (1 is the root).
//
// Node is a closed interface: only the three kinds above implement it. Leaves
// reject child operations with ErrUnsupportedOperation, and a Section owns its
// children exclusively, so a node can belong to at most one parent and a
// section can never contain itself.
//
// Trees are not safe for concurrent mutation. Build a tree, render it, and
// share only the rendered text.
package document
