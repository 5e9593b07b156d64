package server

import (
	"log"
	"runtime/debug"
	"time"

	"github.com/shravanasati/zattiri/router"
	"go.opentelemetry.io/otel/metric"
)

// Mode selects how accepted connections are handled.
type Mode uint8

const (
	// Concurrent handles every connection on its own goroutine. There is no
	// cap on the number of connections handled at once.
	Concurrent Mode = iota
	// Sequential handles each connection on the accept loop before accepting
	// the next one. A client that stalls blocks every other client.
	Sequential
)

func (m Mode) String() string {
	switch m {
	case Concurrent:
		return "concurrent"
	case Sequential:
		return "sequential"
	default:
		return "unknown"
	}
}

type ServerOpts struct {
	// The host to bind. Empty binds all interfaces.
	Address string

	// The TCP port to listen on. Zero lets the OS pick one, see [Server.Addr].
	Port uint16

	// Routes registered before the server starts. The map is copied.
	Routes map[string]router.Handler

	// Connection handling mode, Concurrent by default.
	Mode Mode

	// Route rendered for unregistered routes. Empty leaves it unset.
	NotFoundRoute string

	// Value of the Server response header. Defaults to
	// response.DefaultServerName, which also replaces a name that is not a
	// valid header value (control characters such as CR or LF).
	ServerName string

	// Read and write deadlines per connection. Zero, the default, means
	// connections never time out and a silent client holds its connection
	// (and in Sequential mode the whole server) indefinitely.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Logger for server events. Defaults to log.Default().
	Logger *log.Logger

	// Meter for connection metrics. Nil disables them.
	Meter metric.Meter

	// Recovery is called with the value recovered from a panic while handling a connection. The connection is closed without a response afterwards.
	Recovery func(any)
}

func defaultRecovery(logger *log.Logger) func(any) {
	return func(r any) {
		logger.Println("recovered from panic:", r)
		logger.Printf("%s", debug.Stack())
	}
}
