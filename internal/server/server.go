// Package server exposes the live game service over HTTP: a JSON lookup
// endpoint, a websocket feed, cache statistics, health and metrics.
package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Guliveer/livegame-go/internal/config"
	"github.com/Guliveer/livegame-go/internal/constants"
	"github.com/Guliveer/livegame-go/internal/livegame"
	"github.com/Guliveer/livegame-go/internal/logger"
	"github.com/Guliveer/livegame-go/internal/model"
)

// LiveGameService is the part of *livegame.Service the server uses.
type LiveGameService interface {
	LiveGame(ctx context.Context, viewerID int64, platform model.PlatformRoute) (*model.LiveGame, error)
	Watch(ctx context.Context, viewerID int64, platform model.PlatformRoute, interval time.Duration, send func(context.Context, livegame.Update) error) error
}

// Options are the collaborators of a Server.
type Options struct {
	Service    LiveGameService
	CacheStats func() livegame.CacheStats
	// CacheLen reports the number of cached keys for /health.
	CacheLen func() int
	// Gatherer backs /metrics. The endpoint is not registered when nil.
	Gatherer     prometheus.Gatherer
	FeedInterval time.Duration
}

// Server serves the live game API.
type Server struct {
	addr string
	log  *logger.Logger
	srv  *http.Server

	service      LiveGameService
	cacheStats   func() livegame.CacheStats
	cacheLen     func() int
	feedInterval time.Duration
}

// New creates a Server bound to cfg.Addr.
func New(cfg config.ServerConfig, opts Options, log *logger.Logger) *Server {
	s := &Server{
		addr:         cfg.Addr,
		log:          log.WithComponent("http"),
		service:      opts.Service,
		cacheStats:   opts.CacheStats,
		cacheLen:     opts.CacheLen,
		feedInterval: opts.FeedInterval,
	}
	if s.cacheStats == nil {
		s.cacheStats = func() livegame.CacheStats { return livegame.CacheStats{} }
	}
	if s.cacheLen == nil {
		s.cacheLen = func() int { return 0 }
	}
	if s.feedInterval <= 0 {
		s.feedInterval = constants.DefaultLiveFeedInterval
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/live/{platform}/{playerID}", s.handleLiveGame)
	mux.HandleFunc("GET /api/cache/stats", s.handleCacheStats)
	mux.HandleFunc("GET /ws/live/{platform}/{playerID}", s.handleLiveFeed)
	if opts.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	s.srv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           withLogging(s.log, mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return context.Background()
		},
	}

	return s
}

// Handler returns the root handler, middleware included.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run starts the HTTP server and blocks until the context is cancelled.
// It performs graceful shutdown when the context is done.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("HTTP server starting", "addr", s.addr)

	errCh := make(chan error, 1)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.log.Info("HTTP server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.DefaultGracefulShutdownTimeout)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

const requestIDHeader = "X-Request-ID"

func withLogging(log *logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		reqID := r.Header.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, reqID)

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)
		log.Debug("HTTP request",
			"request_id", reqID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration", time.Since(start).String(),
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code before writing it.
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Hijack lets websocket upgrades through the logging wrapper.
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	return hj.Hijack()
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
