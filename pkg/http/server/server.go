package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultShutdownTimeout = time.Second * 5

type Server struct {
	http            *http.Server
	listener        net.Listener
	shutdownTimeout time.Duration
	readySignal     func()
}

type Option func(*Server)

func WithHandler(handler http.Handler) Option {
	return func(s *Server) {
		s.http.Handler = handler
	}
}

func WithReadTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.http.ReadTimeout = timeout
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.http.WriteTimeout = timeout
	}
}

func WithShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = timeout
	}
}

// WithReadySignal configures a callback that is invoked as soon as
// the server has bound its listen address
func WithReadySignal(ready func()) Option {
	return func(s *Server) {
		s.readySignal = ready
	}
}

// New binds a listener on the given address and prepares an http server
// around it. The server does not accept connections until ListenAndServe
// is called
func New(addr string, opts ...Option) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	svr := &Server{
		http:            &http.Server{}, // nolint: gosec
		listener:        listener,
		shutdownTimeout: DefaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(svr)
	}
	return svr, nil
}

// ListenAndServe serves requests until the context is cancelled,
// then shuts the server down gracefully within the configured timeout
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		log.Info().Stringer("addr", s.ListenAddr()).Msg("Starting HTTP server")
		if s.readySignal != nil {
			s.readySignal()
		}
		if err := s.http.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info().Dur("timeout", s.shutdownTimeout).Msg("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
	}
}

// Stop closes the server immediately, interrupting any active connections
func (s *Server) Stop() error {
	return s.http.Close()
}

func (s *Server) ListenAddr() net.Addr {
	return s.listener.Addr()
}
