package server

import (
	"log/slog"
	"net/http"

	"github.com/mohamadkhanafer/fitnessapp/internal/repository"
	"github.com/mohamadkhanafer/fitnessapp/internal/storage"
	"github.com/mohamadkhanafer/fitnessapp/internal/xhttp/middleware"
	"github.com/mohamadkhanafer/fitnessapp/internal/xsync"
)

// Server exposes the daily record store and the insight pipeline over HTTP.
type Server struct {
	repo       *repository.Repository
	sync       *xsync.Service
	cache      *storage.SnapshotCache // nil when no cache backend is configured
	logger     *slog.Logger
	windowDays int
	threshold  int
}

type serverConfig struct {
	cache      *storage.SnapshotCache
	windowDays int
	threshold  int
}

type Option func(*serverConfig)

func WithSnapshotCache(cache *storage.SnapshotCache) Option {
	return func(c *serverConfig) {
		c.cache = cache
	}
}

func WithWindowDays(days int) Option {
	return func(c *serverConfig) {
		if days > 0 {
			c.windowDays = days
		}
	}
}

func WithBaselineThreshold(threshold int) Option {
	return func(c *serverConfig) {
		if threshold > 0 {
			c.threshold = threshold
		}
	}
}

func New(repo *repository.Repository, sync *xsync.Service, logger *slog.Logger, opts ...Option) *Server {
	cfg := serverConfig{
		windowDays: defaultWindowDays,
		threshold:  defaultThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Server{
		repo:       repo,
		sync:       sync,
		cache:      cfg.cache,
		logger:     logger,
		windowDays: cfg.windowDays,
		threshold:  cfg.threshold,
	}
}

// Routes builds the full handler chain for the server.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /v1/records", s.handleListRecords)
	mux.HandleFunc("GET /v1/records/{day}", s.handleGetRecord)
	mux.HandleFunc("GET /v1/baselines", s.handleBaselines)
	mux.HandleFunc("GET /v1/insights", s.handleInsights)
	mux.HandleFunc("POST /v1/sync", s.handleSync)

	return middleware.Chain(mux,
		middleware.Recovery,
		middleware.Logging,
		middleware.Logger(s.logger),
		middleware.RequestID(),
		middleware.SecurityHeaders,
	)
}
