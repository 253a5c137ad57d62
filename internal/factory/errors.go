package factory

import "errors"

// ErrUnsupportedArchetype is returned for an unknown report archetype.
var ErrUnsupportedArchetype = errors.New("unsupported report archetype")
