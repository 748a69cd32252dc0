// Package tcp implements the registry's transport: a plain TCP listener
// handling exactly one request/response exchange per connection, and the
// dispatcher mapping decoded requests onto the registry service.
package tcp

import (
	"context"
	"errors"
	"net"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/medregistry/internal/logging"
)

type Server struct {
	address         string
	handler         *Handler
	logger          logging.Logger
	maxRequestBytes int
}

func NewServer(address string, h *Handler, l logging.Logger, maxRequestBytes int) *Server {
	return &Server{
		address:         address,
		handler:         h,
		logger:          l.With("module", "tcp_server"),
		maxRequestBytes: maxRequestBytes,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections from listener until ctx is cancelled. Each
// connection is handled in its own goroutine; the registry service
// serializes store access internally.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping registry server...")
		_ = listener.Close()
	}()

	s.logger.Info(ctx, "Starting registry server", "address", listener.Addr().String())

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.logger.Error(ctx, "accept failed", "error", err.Error())
			continue
		}

		go s.serveConn(ctx, conn)
	}
}

func (s *Server) serveConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	logger := s.logger.With("conn_id", uuid.NewString(), "remote", conn.RemoteAddr().String())

	// The protocol assumes the whole request arrives in one receive; there
	// is no framing to read against.
	buf := make([]byte, s.maxRequestBytes)
	n, err := conn.Read(buf)
	if n == 0 {
		if err != nil {
			logger.Warn(ctx, "failed to read request", "error", err.Error())
		}
		return
	}

	resp := s.handler.Handle(ctx, logger, buf[:n])
	if resp == nil {
		// favicon probe: drop the connection without a response
		return
	}

	if _, err := conn.Write(resp.Encode()); err != nil {
		logger.Error(ctx, "failed to write response", "error", err.Error())
		return
	}

	// half-close the write side so the client sees a complete message
	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.CloseWrite()
	}
}
