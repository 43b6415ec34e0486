// Package server exposes the arrangement solver over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/napolitain/ageofwar/internal/config"
	"github.com/napolitain/ageofwar/internal/solver/arrangement"
)

// Server is the stateless battle API. Each request is independent; the only
// shared value is the immutable advantage table behind the solver.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// New creates a Server with all routes and middleware registered.
func New(cfg config.ServerConfig, solver *arrangement.Solver, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &handler{solver: solver, logger: logger}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      routes(h, cfg.CORSOrigins, logger),
		ReadTimeout:  cfg.ReadTimeout.Duration,
		WriteTimeout: cfg.WriteTimeout.Duration,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{httpServer: srv, logger: logger}
}

// routes builds the request multiplexer wrapped in the middleware chain.
func routes(h *handler, corsOrigins []string, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.health)
	mux.HandleFunc("GET /api/advantages", h.advantages)
	mux.HandleFunc("POST /api/battle", h.battle)

	var chain http.Handler = mux
	chain = logging(logger)(chain)
	chain = requestID(chain)
	chain = cors(corsOrigins)(chain)
	return chain
}

// Handler returns the fully wired http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Serve accepts connections on l until the server is shut down.
func (s *Server) Serve(l net.Listener) error {
	s.logger.Info("server: starting", zap.String("addr", l.Addr().String()))
	if err := s.httpServer.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: serve: %w", err)
	}
	return nil
}

// ListenAndServe listens on the configured port. It blocks until the server
// encounters an error or is shut down.
func (s *Server) ListenAndServe() error {
	l, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("server: listen: %w", err)
	}
	return s.Serve(l)
}

// Shutdown gracefully stops the server, waiting for in-flight requests
// within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server: shutting down")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
