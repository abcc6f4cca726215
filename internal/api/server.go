package api

import (
	"context"
	"net/http"
	"time"
)

// Server wraps the HTTP server around the configured routes.
type Server struct {
	handler  http.Handler
	handlers *Handlers
	server   *http.Server
}

// NewServer creates a new API server.
func NewServer(handlers *Handlers) *Server {
	return &Server{
		handler:  SetupRoutes(handlers),
		handlers: handlers,
	}
}

// Handler exposes the configured router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
