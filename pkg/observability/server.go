package observability

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Server serves /health, /health/live and /metrics.
type Server struct {
	httpServer *http.Server
	port       int
	stats      StatsFunc
}

// NewServer creates an observability server on the given port.
func NewServer(port int, stats StatsFunc) *Server {
	return &Server{port: port, stats: stats}
}

// Start blocks serving HTTP until Shutdown or a listener error.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", HealthHandler(s.stats))
	mux.HandleFunc("/health/live", LivenessHandler())
	mux.Handle("/metrics", MetricsHandler())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
