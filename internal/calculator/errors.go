package calculator

import "errors"

// Client-input error taxonomy. Every one of these surfaces as HTTP 400;
// none is fatal to the process.
var (
	ErrMissingParameter = errors.New("missing parameter")
	ErrInvalidNumber    = errors.New("invalid number")
	ErrDivisionByZero   = errors.New("division by zero")
)
