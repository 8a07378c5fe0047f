package input

import "errors"

var (
	// ErrZeroViewport indicates touches arrived before the viewport had a size.
	ErrZeroViewport = errors.New("input: viewport has zero width or height")

	// ErrUnknownPolicy indicates a touch policy name that is not single or multi.
	ErrUnknownPolicy = errors.New("input: unknown touch policy")

	// ErrInvalidLayout indicates layout thresholds outside (0, 1).
	ErrInvalidLayout = errors.New("input: layout threshold out of range")
)
