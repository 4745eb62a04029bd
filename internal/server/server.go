// Package server implements the greeter HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"greeter/internal/config"
	"greeter/internal/logging"
	"greeter/internal/telemetry"
	"greeter/internal/version"
)

// Server represents the HTTP server
type Server struct {
	config     *config.Config
	version    version.Info
	handler    http.Handler
	httpServer *http.Server
}

// New creates a new server instance
func New(cfg *config.Config, versionInfo version.Info) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Server{
		config:  cfg,
		version: versionInfo,
	}
	s.handler = s.routes()
	s.httpServer = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)

	// Outermost first
	var h http.Handler = mux
	h = AccessLogMiddleware(h)
	h = RequestIDMiddleware(h)
	h = telemetry.Middleware("greeter")(h)
	return h
}

// Handler returns the full middleware chain, for in-process use
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start binds the configured address and serves until Shutdown is called
func (s *Server) Start() error {
	addr := s.config.ListenAddr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	logging.Printf("Server is running on %s", s.config.URL())
	return s.Serve(ln)
}

// Serve accepts connections on ln. It returns nil after a graceful Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	logging.Debug("Serving version %s on %s", s.version.Version, ln.Addr())
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
