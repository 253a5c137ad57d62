package document

import "errors"

// Node operation errors.
// Callers match them with errors.Is; the returned errors wrap these sentinels
// with details about the offending node or row.
var (
	// ErrUnsupportedOperation is returned when a child operation is attempted
	// on a leaf node (TextBlock or Table).
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrValidation is returned when a table row does not have exactly one
	// cell per header.
	ErrValidation = errors.New("validation failed")

	// ErrNilNode is returned when nil is passed where a node is required.
	ErrNilNode = errors.New("nil node")

	// ErrNodeOwned is returned when a node that already belongs to a section
	// is added to another one.
	ErrNodeOwned = errors.New("node already belongs to a section")

	// ErrCycle is returned when a section is added to itself or to one of its
	// own descendants.
	ErrCycle = errors.New("section cannot contain itself")

	// ErrNodeNotFound is returned when removing a node that is not a direct
	// child of the section.
	ErrNodeNotFound = errors.New("node is not a child of this section")

	// ErrIndexOutOfRange is returned by Child for an index outside [0, count).
	ErrIndexOutOfRange = errors.New("child index out of range")
)
