package response

import (
	"errors"
	"strings"
	"testing"

	"github.com/shravanasati/zattiri/headers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter(t *testing.T) {
	var buf strings.Builder
	rw := NewResponseWriter(&buf)
	require.NotNil(t, rw)

	err := rw.WriteStatusLine()
	require.NoError(t, err)
	assert.Equal(t, "HTTP/1.1 200 OK\r\n", buf.String())

	// Test WriteStatusLine again (should fail)
	err = rw.WriteStatusLine()
	assert.Error(t, err)
	assert.Equal(t, errors.Unwrap(err), ErrInvalidWriterState)
}

func TestResponseWriterHeaders(t *testing.T) {
	var buf strings.Builder
	rw := NewResponseWriter(&buf)

	err := rw.WriteStatusLine()
	require.NoError(t, err)

	h := headers.NewHeaders()
	h.Add("Content-Type", "text/html")
	h.Add("Content-Length", "13")

	err = rw.WriteHeaders(h)
	require.NoError(t, err)

	assert.Equal(t, "HTTP/1.1 200 OK\r\nContent-Type: text/html\r\nContent-Length: 13\r\n\r\n", buf.String())

	// Test WriteHeaders again (should fail)
	err = rw.WriteHeaders(h)
	assert.Error(t, err)
	assert.Equal(t, errors.Unwrap(err), ErrInvalidWriterState)
}

func TestResponseWriterBody(t *testing.T) {
	var buf strings.Builder
	rw := NewResponseWriter(&buf)

	require.NoError(t, rw.WriteStatusLine())
	require.NoError(t, rw.WriteHeaders(headers.NewHeaders()))
	require.NoError(t, rw.WriteBody("Hello, World!"))

	assert.True(t, strings.HasSuffix(buf.String(), "\r\n\r\nHello, World!\r\n\r\n"))

	// done, nothing more may be written
	err := rw.WriteBody("again")
	assert.ErrorIs(t, err, ErrInvalidWriterState)
}

func TestResponseWriterStateMachine(t *testing.T) {
	var buf strings.Builder
	rw := NewResponseWriter(&buf)

	// Test writing headers before status line (should fail)
	err := rw.WriteHeaders(headers.NewHeaders())
	assert.Error(t, err)
	assert.Equal(t, errors.Unwrap(err), ErrInvalidWriterState)

	// Test writing body before headers (should fail)
	err = rw.WriteBody("test")
	assert.Error(t, err)
	assert.Equal(t, errors.Unwrap(err), ErrInvalidWriterState)
	assert.Empty(t, buf.String())
}

func TestResponseWriterNilWriter(t *testing.T) {
	rw := NewResponseWriter(nil)

	// All operations should fail with nil writer
	err := rw.WriteStatusLine()
	assert.ErrorIs(t, err, ErrNilWriter)
	assert.Contains(t, err.Error(), "writer is nil")

	err = rw.WriteHeaders(headers.NewHeaders())
	assert.ErrorIs(t, err, ErrNilWriter)

	err = rw.WriteBody("test")
	assert.ErrorIs(t, err, ErrNilWriter)
}

func TestResponseWriterPropagatesWriteErrors(t *testing.T) {
	rw := NewResponseWriter(errWriter{})
	err := rw.WriteStatusLine()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidWriterState)
}
