package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/pysugar/backend/errors"
	"github.com/pysugar/backend/task"
)

const (
	DefaultPort = 3000
	// ShutdownTimeout bounds how long in-flight requests may run once serving is cancelled.
	ShutdownTimeout = 5 * time.Second
)

var DefaultAddr = fmt.Sprintf(":%d", DefaultPort)

var (
	ErrListen       = errors.New("failed to listen")
	ErrNotListening = errors.New("server is not listening")
)

// Server owns one listening socket and the http.Server answering on it.
type Server struct {
	addr     string
	srv      *http.Server
	listener net.Listener
}

func New(addr string, handler http.Handler) *Server {
	return &Server{
		addr: addr,
		srv: &http.Server{
			Addr:    addr,
			Handler: handler,
		},
	}
}

// Listen binds the TCP socket. A bind failure matches ErrListen.
func (s *Server) Listen() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return errors.Single(ErrListen, err)
	}
	s.listener = lis
	return nil
}

// Addr is the bound address, nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve blocks until the listener fails or ctx is done, in which case the
// server is shut down gracefully and nil is returned.
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		return ErrNotListening
	}

	stopped := make(chan struct{})
	return task.Run(context.Background(),
		func() error {
			defer close(stopped)
			if err := s.srv.Serve(s.listener); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
		func() error {
			select {
			case <-stopped:
				return nil
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
			defer cancel()
			if err := s.srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			log.Printf("Backend server on %s stopped", s.listener.Addr())
			return nil
		})
}

// ListenAndServe binds addr, announces the port and serves handler until ctx is done.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	s := New(addr, handler)
	if err := s.Listen(); err != nil {
		return err
	}

	port := DefaultPort
	if tcpAddr, ok := s.Addr().(*net.TCPAddr); ok {
		port = tcpAddr.Port
	}
	log.Printf("Backend server is running on port %d", port)

	return s.Serve(ctx)
}
