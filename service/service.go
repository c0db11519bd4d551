package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/viant/gpmldiff/config"
	"github.com/viant/gpmldiff/diff"
	"github.com/viant/gpmldiff/diff/output"
	"go.uber.org/zap"
)

// Service exposes diff and patch over HTTP
type Service struct {
	config   *config.Config
	differ   *diff.Differ
	logger   *zap.Logger
	registry *prometheus.Registry
	stats    *output.Stats
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// Handler returns HTTP routes
func (s *Service) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(logging(s.logger))
	router.Use(instrument(s.requests, s.duration))

	router.Get("/health", s.health)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	router.Route("/v1", func(r chi.Router) {
		r.Post("/diff", s.diff)
		r.Post("/patch", s.patch)
	})
	return router
}

// Run serves until context is cancelled
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Service.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errs := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", zap.String("addr", server.Addr))
		errs <- server.ListenAndServe()
	}()
	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// New creates a service
func New(cfg *config.Config, logger *zap.Logger) *Service {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Service{
		config:   cfg,
		differ:   diff.New(diff.WithConfig(cfg), diff.WithLogger(logger)),
		logger:   logger,
		registry: registry,
		stats:    output.NewStats(registry, ""),
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gpmldiff_http_requests_total",
				Help: "Total number of HTTP requests processed",
			},
			[]string{"method", "path", "status"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gpmldiff_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
	}
}
