package response

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/shravanasati/zattiri/headers"
)

// DefaultServerName is sent in the Server header unless overridden.
const DefaultServerName = "Zattiri Web 2K24"

var lineBreaks = strings.NewReplacer("\n", "", "\r", "")

// Normalize trims surrounding whitespace from html and removes every line
// break inside it, collapsing multi-line pages onto a single line.
func Normalize(html string) string {
	return lineBreaks.Replace(strings.TrimSpace(html))
}

// HTMLResponse is a complete text/html response. The body is normalized on
// construction and Content-Length always matches it.
type HTMLResponse struct {
	Headers *headers.Headers
	Body    string
}

// NewHTMLResponse creates a new HTML response.
func NewHTMLResponse(html string) *HTMLResponse {
	body := Normalize(html)

	hs := headers.NewHeaders()
	hs.Add("Server", DefaultServerName)
	hs.Add("Content-Type", "text/html")
	hs.Add("Connection", "Closed")
	hs.Add("Content-Length", strconv.Itoa(len(body)))

	return &HTMLResponse{
		Headers: hs,
		Body:    body,
	}
}

// WithServerName replaces the Server header value. Names that are not valid
// header values are ignored, see [headers.ValidValue].
func (r *HTMLResponse) WithServerName(name string) *HTMLResponse {
	r.Headers.Set("Server", name)
	return r
}

// Bytes returns the serialized response.
func (r *HTMLResponse) Bytes() []byte {
	var b bytes.Buffer
	// writes to a bytes.Buffer cannot fail
	_ = r.writeTo(&b)
	return b.Bytes()
}

func (r *HTMLResponse) writeTo(w io.Writer) error {
	rw := NewResponseWriter(w)
	if err := rw.WriteStatusLine(); err != nil {
		return err
	}
	if err := rw.WriteHeaders(r.Headers); err != nil {
		return err
	}
	return rw.WriteBody(r.Body)
}

// Write sends the whole response to w in a single write.
func (r *HTMLResponse) Write(w io.Writer) error {
	if w == nil {
		return ErrNilWriter
	}
	_, err := w.Write(r.Bytes())
	return err
}
