package response

import (
	"fmt"
	"io"

	"github.com/shravanasati/zattiri/headers"
)

// StatusLine is sent for every response, resolved or not.
const StatusLine = "HTTP/1.1 200 OK"

const crlf = "\r\n"

// ResponseWriter writes the parts of a response in order: status line,
// headers, then body.
type ResponseWriter struct {
	conn  io.Writer
	state responseState
}

func NewResponseWriter(conn io.Writer) *ResponseWriter {
	return &ResponseWriter{conn: conn, state: stateStatusLine}
}

func (rw *ResponseWriter) expect(state responseState) error {
	if rw.conn == nil {
		return ErrNilWriter
	}
	if rw.state != state {
		return fmt.Errorf("%w: want %s, at %s", ErrInvalidWriterState, state, rw.state)
	}
	return nil
}

func (rw *ResponseWriter) WriteStatusLine() error {
	if err := rw.expect(stateStatusLine); err != nil {
		return err
	}
	if _, err := io.WriteString(rw.conn, StatusLine+crlf); err != nil {
		return err
	}

	rw.state = rw.state.advance()
	return nil
}

func (rw *ResponseWriter) WriteHeaders(h *headers.Headers) error {
	if err := rw.expect(stateHeaders); err != nil {
		return err
	}
	for k, v := range h.All() {
		if _, err := fmt.Fprintf(rw.conn, "%s: %s\r\n", k, v); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(rw.conn, crlf); err != nil {
		return err
	}
	rw.state = rw.state.advance()
	return nil
}

// WriteBody writes body followed by the blank line that closes the response.
func (rw *ResponseWriter) WriteBody(body string) error {
	if err := rw.expect(stateBody); err != nil {
		return err
	}
	if _, err := io.WriteString(rw.conn, body+crlf+crlf); err != nil {
		return err
	}
	rw.state = rw.state.advance()
	return nil
}
