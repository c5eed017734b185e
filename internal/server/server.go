// Package server exposes leaderboards over a small read-only HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"github.com/abhisek/hanjaolympics/internal/logger"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 10 * time.Second

// Options configures the API server.
type Options struct {
	Addr string
	// RateLimit is the allowed requests per minute per client IP.
	RateLimit int
}

// NewRouter builds the API router with request ids, logging, panic
// recovery and per-IP rate limiting.
func NewRouter(h *Handler, l *zap.Logger, rateLimit int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logger.Middleware(l))
	r.Use(middleware.Recoverer)
	r.Use(httprate.LimitByIP(rateLimit, time.Minute))
	h.RegisterRoutes(r)
	return r
}

// Run serves boards on opts.Addr until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context, boards Boards, opts Options) error {
	l := logger.Named("server")
	srv := &http.Server{
		Addr:         opts.Addr,
		Handler:      NewRouter(NewHandler(boards, l), l, opts.RateLimit),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info("Server starting", zap.String("addr", opts.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	l.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error("Server forced to shutdown", zap.Error(err))
		return err
	}
	l.Info("Server exited")
	return nil
}
