package request

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// parseRequestLine returns the second space separated token of a request
// line. Method and version are never looked at, so "POST /" and "GET /"
// resolve to the same route.
func parseRequestLine(line string) (string, error) {
	parts := strings.Split(line, " ")
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: %q", ErrMalformedRequestLine, line)
	}
	return parts[1], nil
}

// RouteFromReader reads the request line from reader and returns the
// requested route. The header section is read and discarded up to the blank
// line that ends it, or until the stream ends. Any body is left unread.
func RouteFromReader(reader io.Reader) (string, error) {
	br := getLineReader(reader)

	line, err := readLine(br)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: connection closed before request line", ErrMalformedRequestLine)
		}
		return "", fmt.Errorf("%w: %w", ErrMalformedRequestLine, err)
	}

	route, err := parseRequestLine(string(line))
	if err != nil {
		return "", err
	}

	if err := discardHeaders(br); err != nil {
		return "", fmt.Errorf("reading headers: %w", err)
	}
	return route, nil
}
