package bits

import "errors"

// Standard errors for argument validation.
var (
	ErrOutOfRange   = errors.New("argument out of range")
	ErrMissingInput = errors.New("required input missing")
)
