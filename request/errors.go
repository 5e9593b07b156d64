package request

import "errors"

// ErrMalformedRequestLine is returned when the first line of a request is
// missing or has no target token.
var ErrMalformedRequestLine = errors.New("malformed request line")
