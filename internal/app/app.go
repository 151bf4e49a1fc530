package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/iplt20-stats/internal/config"
	"github.com/riskibarqy/iplt20-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/iplt20-stats/internal/platform/cache"
	"github.com/riskibarqy/iplt20-stats/internal/platform/logging"
	"github.com/riskibarqy/iplt20-stats/internal/usecase"
)

// Server bundles the HTTP server with the services it needs at startup and shutdown.
type Server struct {
	HTTP    *http.Server
	Stats   *usecase.StatsService
	sources Sources
}

// NewStatsService wires the dataset loader and the memoizing stats service over sources.
func NewStatsService(cfg config.Config, sources Sources, logger *logging.Logger) *usecase.StatsService {
	loader := usecase.NewDatasetService(sources.Matches, sources.Deliveries, logger)

	var memo *cache.Store
	if cfg.CacheEnabled {
		memo = cache.NewStore(cfg.CacheTTL)
	}

	return usecase.NewStatsService(loader, memo, usecase.StatsOptions{
		DefaultLimit:     cfg.LeaderboardDefaultLimit,
		DashboardWorkers: cfg.DashboardWorkers,
	}, logger)
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	sources, err := NewSources(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	statsSvc := NewStatsService(cfg, sources, logger)
	handler := httpapi.NewHandler(statsSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	return &Server{
		HTTP: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		Stats:   statsSvc,
		sources: sources,
	}, nil
}

// Warm loads the dataset so a broken source fails startup instead of the first request.
func (s *Server) Warm(ctx context.Context) error {
	_, err := s.Stats.Dataset(ctx)
	return err
}

func (s *Server) Close() error {
	return s.sources.Close()
}
