// Package server wires the query connections to the HTTP surface: routing,
// JSON responses, logging, rate limiting, and metrics.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cfb-nil-service/config"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

const (
	readTimeout     = 5 * time.Second
	writeTimeout    = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

type Server struct {
	cfg     config.Config
	logger  *log.Logger
	httpSrv *http.Server
}

func New(cfg config.Config, logger *log.Logger, store Store) *Server {
	metrics := NewMetrics()
	handler := NewHandler(store, logger)

	mux := http.NewServeMux()
	mux.Handle("/", handler.Routes())
	mux.Handle("GET /metrics", metrics.Handler())

	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	wrapped := loggingMiddleware(logger, metrics,
		rateLimitMiddleware(limiter, logger,
			timeoutMiddleware(cfg.RequestTimeout, mux)))

	return &Server{
		cfg:    cfg,
		logger: logger,
		httpSrv: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      wrapped,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
	}
}

// Run serves until the context is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.httpSrv.Addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpSrv.Shutdown(shutdownCtx)
}
