package usecase

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/iplt20-stats/internal/domain/delivery"
	"github.com/riskibarqy/iplt20-stats/internal/domain/match"
	"github.com/riskibarqy/iplt20-stats/internal/domain/stats"
	"github.com/riskibarqy/iplt20-stats/internal/platform/logging"
)

// DatasetService reads the base tables from their source and builds the
// normalized, read-only Dataset every aggregate works from.
type DatasetService struct {
	matchRepo    match.Repository
	deliveryRepo delivery.Repository
	logger       *logging.Logger
}

func NewDatasetService(matchRepo match.Repository, deliveryRepo delivery.Repository, logger *logging.Logger) *DatasetService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DatasetService{
		matchRepo:    matchRepo,
		deliveryRepo: deliveryRepo,
		logger:       logger,
	}
}

// Load reads both tables concurrently. Any failure is marked with
// ErrDatasetUnavailable and keeps its cause; an empty source is not a failure.
func (s *DatasetService) Load(ctx context.Context) (stats.Dataset, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DatasetService.Load")
	defer span.End()

	start := time.Now()
	var (
		matches    []match.Match
		deliveries []delivery.Delivery
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		rows, err := s.matchRepo.ListMatches(ctx)
		if err != nil {
			return crerr.Wrap(err, "load matches")
		}
		matches = rows
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.deliveryRepo.ListDeliveries(ctx)
		if err != nil {
			return crerr.Wrap(err, "load deliveries")
		}
		deliveries = rows
		return nil
	})
	if err := p.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "dataset load failed", "error", err)
		return stats.Dataset{}, crerr.Mark(err, ErrDatasetUnavailable)
	}

	ds, err := stats.NewDataset(matches, deliveries)
	if err != nil {
		s.logger.ErrorContext(ctx, "dataset rejected", "error", err)
		return stats.Dataset{}, crerr.Mark(crerr.Wrap(err, "build dataset"), ErrDatasetUnavailable)
	}

	annotateDataset(span, ds)
	s.logger.InfoContext(ctx, "dataset loaded",
		"matches", ds.Report.MatchRows,
		"deliveries", ds.Report.DeliveryRows,
		"duration", time.Since(start),
	)
	for _, issue := range ds.Report.Issues() {
		s.logger.WarnContext(ctx, "dataset issue", "detail", issue)
	}

	return ds, nil
}
