package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/iplt20-stats/internal/config"
	"github.com/riskibarqy/iplt20-stats/internal/domain/delivery"
	"github.com/riskibarqy/iplt20-stats/internal/domain/match"
	"github.com/riskibarqy/iplt20-stats/internal/infrastructure/repository/csvfile"
	"github.com/riskibarqy/iplt20-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/iplt20-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/iplt20-stats/internal/platform/logging"
)

// Sources are the repositories the dataset is loaded from.
type Sources struct {
	Matches    match.Repository
	Deliveries delivery.Repository
	close      func() error
}

func (s Sources) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// NewSources picks the repositories configured by DATA_SOURCE.
func NewSources(ctx context.Context, cfg config.Config, logger *logging.Logger) (Sources, error) {
	if logger == nil {
		logger = logging.Default()
	}

	switch cfg.DataSource {
	case config.SourceCSV:
		logger.Info("using csv data source", "matches", cfg.MatchesCSVPath, "deliveries", cfg.DeliveriesCSVPath)
		return Sources{
			Matches:    csvfile.NewMatchRepository(cfg.MatchesCSVPath),
			Deliveries: csvfile.NewDeliveryRepository(cfg.DeliveriesCSVPath),
		}, nil
	case config.SourcePostgres:
		db, err := OpenDB(ctx, cfg)
		if err != nil {
			return Sources{}, err
		}
		logger.Info("using postgres data source")
		return Sources{
			Matches:    postgres.NewMatchRepository(db),
			Deliveries: postgres.NewDeliveryRepository(db),
			close:      db.Close,
		}, nil
	case config.SourceMemory:
		logger.Info("using in-memory demo data source")
		return Sources{
			Matches:    memory.NewMatchRepository(memory.SeedMatches()),
			Deliveries: memory.NewDeliveryRepository(memory.SeedDeliveries()),
		}, nil
	default:
		return Sources{}, fmt.Errorf("unsupported data source %q", cfg.DataSource)
	}
}
