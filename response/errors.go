package response

import "errors"

// ErrInvalidWriterState is returned when the response writer state is not what is called.
var ErrInvalidWriterState = errors.New("invalid writer state")

// ErrNilWriter is returned by every write on a writer built around a nil io.Writer.
var ErrNilWriter = errors.New("writer is nil")
