package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/holectl/holectl/src/internal/domain"
	"github.com/holectl/holectl/src/internal/log"
)

// Server represents the API server
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new API server listening on bindAddr.
func NewServer(bindAddr string, deps *domain.AppDependencies, opts RouterOptions) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              bindAddr,
			Handler:           NewRouter(deps, opts),
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			// gravity reloads can take minutes
			WriteTimeout: 10 * time.Minute,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Start starts the API server and blocks until it is stopped.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(listener)
}

// Serve serves the API on listener and blocks until the server is stopped.
func (s *Server) Serve(listener net.Listener) error {
	log.Infof("[API] Starting server on %s", listener.Addr())
	log.Infof("[API] Example: curl http://%s/api/v1/lists/blacklist", listener.Addr())

	if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Stop gracefully stops the API server
func (s *Server) Stop(ctx context.Context) error {
	log.Infof("[API] Shutting down server...")
	return s.httpServer.Shutdown(ctx)
}
