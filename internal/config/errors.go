package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and the file loader so
// callers can use errors.Is() for programmatic handling.
var (
	// ErrNoArchetype is returned when neither an archetype nor a custom
	// report was requested.
	ErrNoArchetype = errors.New("no report archetype specified")

	// ErrInvalidPeriod is returned when a period bound cannot be parsed or
	// the start falls after the end.
	ErrInvalidPeriod = errors.New("invalid reporting period")

	// ErrInvalidConcurrency is returned when the batch concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrTeeWithoutOutput is returned when stdout tee is requested without an
	// output file.
	ErrTeeWithoutOutput = errors.New("tee requires an output file")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
