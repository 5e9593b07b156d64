package server

import (
	"errors"
	"log"
	"net"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/shravanasati/zattiri/headers"
	"github.com/shravanasati/zattiri/response"
	"github.com/shravanasati/zattiri/router"
)

const maxAcceptDelay = time.Second

type Server struct {
	opts     ServerOpts
	listener net.Listener
	routes   *router.Table
	closed   atomic.Bool
	logger   *log.Logger
	metrics  *serverMetrics
}

// Shutdown the server. Connections already accepted are still answered.
func (s *Server) Close() error {
	s.closed.Store(true)
	return s.listener.Close()
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// AddRoute registers h for route, replacing any earlier handler. It is safe
// to call while connections are being served.
func (s *Server) AddRoute(route string, h router.Handler) {
	s.routes.Add(route, h)
}

// SetNotFoundRoute makes unregistered routes render the handler of route.
func (s *Server) SetNotFoundRoute(route string) {
	s.routes.SetNotFoundRoute(route)
}

// Use adds resolver middleware, see [router.Table.Use].
func (s *Server) Use(m ...router.Middleware) {
	s.routes.Use(m...)
}

// Routes returns the route table backing the server.
func (s *Server) Routes() *router.Table {
	return s.routes
}

// Serve accepts connections until the listener is closed, then returns
// ErrServerClosed. Failing to accept a single connection never stops the
// loop: the error is logged and accepting is retried after a short backoff.
func (s *Server) Serve() error {
	var delay time.Duration
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.closed.Load() || errors.Is(err, net.ErrClosed) {
				return ErrServerClosed
			}

			s.metrics.connFailed(stageAccept)
			if delay == 0 {
				delay = 5 * time.Millisecond
			} else {
				delay = min(delay*2, maxAcceptDelay)
			}
			s.logger.Printf("unable to accept connection: %v; retrying in %v", err, delay)
			time.Sleep(delay)
			continue
		}
		delay = 0
		s.metrics.connAccepted()

		if s.opts.Mode == Sequential {
			s.handle(conn)
			continue
		}
		go s.handle(conn)
	}
}

func newServer(opts ServerOpts) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Recovery == nil {
		opts.Recovery = defaultRecovery(opts.Logger)
	}
	if opts.ServerName == "" {
		opts.ServerName = response.DefaultServerName
	} else if !headers.ValidValue(opts.ServerName) {
		opts.Logger.Printf("invalid server name %q, using %q", opts.ServerName, response.DefaultServerName)
		opts.ServerName = response.DefaultServerName
	}

	s := &Server{
		opts:   opts,
		routes: router.NewTable(opts.Routes),
		logger: opts.Logger,
	}
	if opts.NotFoundRoute != "" {
		s.routes.SetNotFoundRoute(opts.NotFoundRoute)
	}

	metrics, err := newServerMetrics(opts.Meter)
	if err != nil {
		s.logger.Println("unable to create connection metrics, disabling them:", err)
		metrics, _ = newServerMetrics(nil)
	}
	s.metrics = metrics

	return s
}

// Launch binds the listening socket and returns a server ready to Serve.
// A *BindError is returned when the address cannot be bound.
func Launch(opts ServerOpts) (*Server, error) {
	s := newServer(opts)

	addr := net.JoinHostPort(opts.Address, strconv.Itoa(int(opts.Port)))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, &BindError{Address: addr, Err: err}
	}
	s.listener = listener

	return s, nil
}
