package factory

import (
	"fmt"
	"strings"
)

// Archetype names a standard report kind.
type Archetype string

// Supported archetypes.
const (
	Sales     Archetype = "sales"
	Inventory Archetype = "inventory"
	Financial Archetype = "financial"
	Branch    Archetype = "branch"
	Executive Archetype = "executive"

	// Consolidated is the corporate-wide financial report, always
	// watermarked, audited and signed.
	Consolidated Archetype = "consolidated"
)

// Archetypes returns every supported archetype in display order.
func Archetypes() []Archetype {
	return []Archetype{Sales, Inventory, Financial, Branch, Executive, Consolidated}
}

// ParseArchetype converts s to an Archetype, ignoring case and surrounding
// spaces.
func ParseArchetype(s string) (Archetype, error) {
	a := Archetype(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := presets[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedArchetype, s)
	}
	return a, nil
}

// String returns the archetype name.
func (a Archetype) String() string {
	return string(a)
}

// Description returns the report type label of the archetype, or "" for an
// unsupported one.
func (a Archetype) Description() string {
	return presets[a].typeLabel
}
