package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
)

// Server wires the tournament service, the WebSocket feed and the
// metrics endpoint into one HTTP server.
type Server struct {
	cfg     *Config
	logger  *log.Logger
	service *Service
	feed    *Feed
	metrics *Metrics
	httpSrv *http.Server
}

// New creates a fully wired server from configuration.
func New(cfg *Config, logger *log.Logger) *Server {
	clock := quartz.NewReal()
	metrics := NewMetrics()
	service := NewService(logger, clock, metrics)
	feed := NewFeed(logger, clock)
	service.SetFeed(feed)

	s := &Server{
		cfg:     cfg,
		logger:  logger.WithPrefix("server"),
		service: service,
		feed:    feed,
		metrics: metrics,
	}
	s.httpSrv = &http.Server{
		Addr:    cfg.ListenAddr(),
		Handler: s.routes(),
	}
	return s
}

// Service exposes the underlying tournament service, mainly for tests.
func (s *Server) Service() *Service {
	return s.service
}

// Handler returns the HTTP handler, mainly for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Post("/api/player/register", s.handleRegister)
	r.Post("/api/game/start", s.handleStartMatch)
	r.Post("/api/game/play_round", s.handlePlayRound)
	r.Get("/api/leaderboard", s.handleLeaderboard)

	r.Get("/ws", s.handleWS)
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("Starting server", "addr", s.cfg.ListenAddr())

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.feed.Run(ctx); !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		if err := s.httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("Request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}
