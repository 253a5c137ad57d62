package builder

import "errors"

// ErrConfiguration is returned by Build when a required field is missing.
var ErrConfiguration = errors.New("invalid report configuration")
