// Package http exposes lumi services as a JSON gateway for desktop clients.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/fwojciec/lumi"
)

// DefaultSearchResults is the result count for direct search requests.
const DefaultSearchResults = 30

// ShutdownTimeout bounds graceful shutdown.
const ShutdownTimeout = 5 * time.Second

// Server is the HTTP gateway. Collaborators are set before the first request.
type Server struct {
	Agent     lumi.Agent
	Asker     lumi.Asker
	Searcher  lumi.Searcher
	Documents lumi.DocumentReader

	// ModelHealth and SearchHealth feed GET /api/health.
	ModelHealth  lumi.HealthChecker
	SearchHealth lumi.HealthChecker

	// RateLimit is the per-client request rate; zero disables limiting.
	RateLimit float64

	// SearchResults caps POST /api/search; zero selects DefaultSearchResults.
	SearchResults int

	logger  *slog.Logger
	router  *http.ServeMux
	server  *http.Server
	once    sync.Once
	handler http.Handler
}

// NewServer creates a Server that will listen on addr.
func NewServer(addr string, logger *slog.Logger) *Server {
	s := &Server{
		logger: logger,
		router: http.NewServeMux(),
	}
	s.registerRoutes()

	s.server = &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Model calls may take up to a minute.
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.once.Do(func() {
		s.handler = s.applyMiddleware(s.router)
	})
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("http server started", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	s.logger.Info("http server stopped")
	return nil
}

// applyMiddleware wraps the handler with middleware; the last one applied
// runs first.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	if s.RateLimit > 0 {
		handler = RateLimitMiddleware(NewClientLimiter(s.RateLimit))(handler)
	}
	handler = RecoveryMiddleware(s.logger)(handler)
	handler = LoggingMiddleware(s.logger)(handler)
	handler = RequestIDMiddleware()(handler)
	handler = CORSMiddleware()(handler)
	return handler
}

func (s *Server) registerRoutes() {
	s.router.HandleFunc("GET /api/health", s.handleHealth)
	s.router.HandleFunc("POST /api/ask", s.handleAsk)
	s.router.HandleFunc("POST /api/search", s.handleSearch)
	s.router.HandleFunc("POST /api/process_document", s.handleProcessDocument)
	s.router.HandleFunc("POST /api/chat_with_file", s.handleChatWithFile)
	s.router.HandleFunc("POST /api/agent", s.handleAgent)
}
