package field

import "errors"

// Domain errors for field generation.
var (
	// ErrInvalidArgument indicates a non-positive size or iteration
	// budget, or an output buffer shorter than size*size. It is
	// reported before any cell is written.
	ErrInvalidArgument = errors.New("field: invalid argument")

	// ErrCanceled indicates generation was interrupted by context
	// cancellation. Rows completed before the interrupt are written;
	// the rest of the buffer is left as the caller provided it.
	ErrCanceled = errors.New("field: generation canceled")
)
