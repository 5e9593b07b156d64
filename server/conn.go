package server

import (
	"net"
	"time"

	"github.com/shravanasati/zattiri/request"
	"github.com/shravanasati/zattiri/response"
)

// handle answers a single request on conn and closes it. Every failure is
// contained here: it is logged and the connection is dropped.
func (s *Server) handle(conn net.Conn) {
	// defers are stacked

	defer func() {
		if err := conn.Close(); err != nil {
			s.logger.Println("unable to close connection:", err)
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			s.metrics.connFailed(stagePanic)
			s.opts.Recovery(r)
		}
	}()

	if s.opts.ReadTimeout != 0 {
		if err := conn.SetReadDeadline(time.Now().Add(s.opts.ReadTimeout)); err != nil {
			s.metrics.connFailed(stageRead)
			s.logger.Println("unable to set read deadline:", err)
			return
		}
	}

	route, err := request.RouteFromReader(conn)
	if err != nil {
		s.metrics.connFailed(stageRead)
		s.logger.Printf("dropping connection from %s: %v", conn.RemoteAddr(), err)
		return
	}

	res := s.routes.Resolver().Resolve(route)
	resp := response.NewHTMLResponse(res.Body).WithServerName(s.opts.ServerName)

	if s.opts.WriteTimeout != 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(s.opts.WriteTimeout)); err != nil {
			s.metrics.connFailed(stageWrite)
			s.logger.Println("unable to set write deadline:", err)
			return
		}
	}

	if err := resp.Write(conn); err != nil {
		s.metrics.connFailed(stageWrite)
		s.logger.Println("unable to write response to connection:", err)
	}
}
