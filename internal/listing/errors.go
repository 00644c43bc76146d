package listing

import "errors"

// Controller errors.
var (
	// ErrConfig reports an invalid construction parameter. A controller is
	// never returned alongside it.
	ErrConfig = errors.New("invalid list configuration")

	// ErrOutOfRange reports an explicit page request outside [0, TotalPages).
	ErrOutOfRange = errors.New("page index out of range")
)
