package jsonvalue

import "errors"

var (
	// ErrMalformed indicates the input is not a single well-formed document.
	ErrMalformed = errors.New("jsonvalue: malformed document")

	// ErrDepthExceeded indicates containers are nested deeper than allowed.
	ErrDepthExceeded = errors.New("jsonvalue: maximum nesting depth exceeded")
)
