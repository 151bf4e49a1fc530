package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/iplt20-stats/internal/domain/season"
	"github.com/riskibarqy/iplt20-stats/internal/domain/stats"
	"github.com/riskibarqy/iplt20-stats/internal/domain/team"
	"github.com/riskibarqy/iplt20-stats/internal/platform/cache"
	"github.com/riskibarqy/iplt20-stats/internal/platform/logging"
)

const (
	MaxLeaderboardLimit  = 100
	defaultDashboardPool = 4
	datasetCacheKey      = "dataset"
	aggregateCachePrefix = "stats"
	leaderboardBatters   = "batters"
	leaderboardBowlers   = "bowlers"
)

type datasetLoader interface {
	Load(ctx context.Context) (stats.Dataset, error)
}

// RangeQuery selects a season range. A zero bound falls back to the dataset bound.
type RangeQuery struct {
	From int
	To   int
}

type PivotInput struct {
	RangeQuery
	Rows []string
	Cols []string
}

type LeaderboardInput struct {
	RangeQuery
	Limit int
}

type Seasons struct {
	HasData bool
	Bounds  season.Range
	Labels  []string
}

type SummaryResult struct {
	Range   season.Range
	Summary stats.Summary
}

type PivotResult struct {
	Range season.Range
	Table stats.PivotTable
}

type SeasonWinsResult struct {
	Range season.Range
	Wins  []stats.SeasonWin
}

type LeaderboardResult struct {
	Range   season.Range
	Limit   int
	Entries []stats.LeaderboardEntry
}

type Dashboard struct {
	Range   season.Range
	Summary stats.Summary
	Wins    []stats.SeasonWin
	Batters []stats.LeaderboardEntry
	Bowlers []stats.LeaderboardEntry
}

type StatsOptions struct {
	DefaultLimit     int
	DashboardWorkers int
}

// StatsService is the single entry point for the dashboard views. The dataset
// is loaded once and aggregates are memoized per range and grouping.
type StatsService struct {
	loader   datasetLoader
	datasets *cache.Store
	memo     *cache.Store
	opts     StatsOptions
	logger   *logging.Logger
}

// NewStatsService builds the service. A nil memo store disables aggregate memoization.
func NewStatsService(loader datasetLoader, memo *cache.Store, opts StatsOptions, logger *logging.Logger) *StatsService {
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = stats.DefaultLeaderboardSize
	}
	if opts.DashboardWorkers <= 0 {
		opts.DashboardWorkers = defaultDashboardPool
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &StatsService{
		loader:   loader,
		datasets: cache.NewStore(0),
		memo:     memo,
		opts:     opts,
		logger:   logger,
	}
}

// Dataset returns the loaded dataset, loading it on first use.
func (s *StatsService) Dataset(ctx context.Context) (stats.Dataset, error) {
	v, err := s.datasets.GetOrLoad(ctx, datasetCacheKey, func(ctx context.Context) (any, error) {
		return s.loader.Load(ctx)
	})
	if err != nil {
		return stats.Dataset{}, err
	}
	ds, _ := v.(stats.Dataset)
	return ds, nil
}

// Invalidate drops the loaded dataset and every memoized aggregate.
func (s *StatsService) Invalidate(ctx context.Context) {
	s.datasets.Purge(ctx)
	if s.memo != nil {
		s.memo.DeletePrefix(ctx, aggregateCachePrefix+":")
	}
	s.logger.InfoContext(ctx, "stats cache invalidated")
}

func (s *StatsService) Seasons(ctx context.Context) (Seasons, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Seasons")
	defer span.End()

	ds, err := s.Dataset(ctx)
	if err != nil {
		return Seasons{}, err
	}
	bounds, ok := stats.Bounds(ds)
	return Seasons{
		HasData: ok,
		Bounds:  bounds,
		Labels:  stats.Labels(ds),
	}, nil
}

func (s *StatsService) Summary(ctx context.Context, q RangeQuery) (SummaryResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Summary")
	defer span.End()

	r, err := s.resolveRange(ctx, q)
	if err != nil {
		return SummaryResult{}, err
	}
	summary, err := s.summary(ctx, r)
	if err != nil {
		return SummaryResult{}, err
	}
	return SummaryResult{Range: r, Summary: summary}, nil
}

func (s *StatsService) Pivot(ctx context.Context, input PivotInput) (PivotResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Pivot")
	defer span.End()

	r, err := s.resolveRange(ctx, input.RangeQuery)
	if err != nil {
		return PivotResult{}, err
	}
	rows := splitFields(input.Rows)
	cols := splitFields(input.Cols)

	key := cache.Key(aggregateCachePrefix, "pivot", r.String(), strings.Join(rows, ","), strings.Join(cols, ","))
	v, err := s.memoize(ctx, key, func(ctx context.Context) (any, error) {
		f, err := s.filtered(ctx, r)
		if err != nil {
			return nil, err
		}
		table, err := stats.CrossTab(f, rows, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return table, nil
	})
	if err != nil {
		return PivotResult{}, err
	}
	table, _ := v.(stats.PivotTable)
	return PivotResult{Range: r, Table: table}, nil
}

func (s *StatsService) SeasonWins(ctx context.Context, q RangeQuery) (SeasonWinsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.SeasonWins")
	defer span.End()

	r, err := s.resolveRange(ctx, q)
	if err != nil {
		return SeasonWinsResult{}, err
	}
	wins, err := s.seasonWins(ctx, r)
	if err != nil {
		return SeasonWinsResult{}, err
	}
	return SeasonWinsResult{Range: r, Wins: wins}, nil
}

func (s *StatsService) TopBatters(ctx context.Context, input LeaderboardInput) (LeaderboardResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TopBatters")
	defer span.End()

	return s.leaderboardResult(ctx, leaderboardBatters, input)
}

func (s *StatsService) TopBowlers(ctx context.Context, input LeaderboardInput) (LeaderboardResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.TopBowlers")
	defer span.End()

	return s.leaderboardResult(ctx, leaderboardBowlers, input)
}

// Teams returns the legend of franchise codes present in the first team column.
func (s *StatsService) Teams(ctx context.Context) ([]team.LegendEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Teams")
	defer span.End()

	ds, err := s.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	return team.Legend(stats.TeamCodes(ds)), nil
}

func (s *StatsService) Report(ctx context.Context) (stats.LoadReport, error) {
	ds, err := s.Dataset(ctx)
	if err != nil {
		return stats.LoadReport{}, err
	}
	return ds.Report, nil
}

// Dashboard computes the headline views of one range on a bounded worker pool.
func (s *StatsService) Dashboard(ctx context.Context, q RangeQuery, limit int) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Dashboard")
	defer span.End()

	r, err := s.resolveRange(ctx, q)
	if err != nil {
		return Dashboard{}, err
	}
	limit, err = s.resolveLimit(limit)
	if err != nil {
		return Dashboard{}, err
	}
	if _, err := s.filtered(ctx, r); err != nil {
		return Dashboard{}, err
	}

	out := Dashboard{Range: r}
	tasks := []func() error{
		func() (err error) {
			out.Summary, err = s.summary(ctx, r)
			return err
		},
		func() (err error) {
			out.Wins, err = s.seasonWins(ctx, r)
			return err
		},
		func() (err error) {
			out.Batters, err = s.leaderboard(ctx, leaderboardBatters, r, limit)
			return err
		},
		func() (err error) {
			out.Bowlers, err = s.leaderboard(ctx, leaderboardBowlers, r, limit)
			return err
		},
	}

	workerCount := s.opts.DashboardWorkers
	if workerCount > len(tasks) {
		workerCount = len(tasks)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return Dashboard{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		workers  sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if err := task(); err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
			}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return Dashboard{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	if firstErr != nil {
		return Dashboard{}, firstErr
	}
	return out, nil
}

func (s *StatsService) leaderboardResult(ctx context.Context, kind string, input LeaderboardInput) (LeaderboardResult, error) {
	r, err := s.resolveRange(ctx, input.RangeQuery)
	if err != nil {
		return LeaderboardResult{}, err
	}
	limit, err := s.resolveLimit(input.Limit)
	if err != nil {
		return LeaderboardResult{}, err
	}
	entries, err := s.leaderboard(ctx, kind, r, limit)
	if err != nil {
		return LeaderboardResult{}, err
	}
	return LeaderboardResult{Range: r, Limit: limit, Entries: entries}, nil
}

func (s *StatsService) summary(ctx context.Context, r season.Range) (stats.Summary, error) {
	v, err := s.memoize(ctx, cache.Key(aggregateCachePrefix, "summary", r.String()), func(ctx context.Context) (any, error) {
		f, err := s.filtered(ctx, r)
		if err != nil {
			return nil, err
		}
		return stats.Summarize(f), nil
	})
	if err != nil {
		return stats.Summary{}, err
	}
	summary, _ := v.(stats.Summary)
	return summary, nil
}

func (s *StatsService) seasonWins(ctx context.Context, r season.Range) ([]stats.SeasonWin, error) {
	v, err := s.memoize(ctx, cache.Key(aggregateCachePrefix, "wins", r.String()), func(ctx context.Context) (any, error) {
		f, err := s.filtered(ctx, r)
		if err != nil {
			return nil, err
		}
		return stats.SeasonWins(f), nil
	})
	if err != nil {
		return nil, err
	}
	wins, _ := v.([]stats.SeasonWin)
	return append([]stats.SeasonWin(nil), wins...), nil
}

func (s *StatsService) leaderboard(ctx context.Context, kind string, r season.Range, limit int) ([]stats.LeaderboardEntry, error) {
	key := cache.Key(aggregateCachePrefix, kind, r.String(), strconv.Itoa(limit))
	v, err := s.memoize(ctx, key, func(ctx context.Context) (any, error) {
		f, err := s.filtered(ctx, r)
		if err != nil {
			return nil, err
		}
		if kind == leaderboardBowlers {
			return stats.TopBowlers(f, limit), nil
		}
		return stats.TopBatters(f, limit), nil
	})
	if err != nil {
		return nil, err
	}
	entries, _ := v.([]stats.LeaderboardEntry)
	return append([]stats.LeaderboardEntry(nil), entries...), nil
}

func (s *StatsService) filtered(ctx context.Context, r season.Range) (stats.Filtered, error) {
	v, err := s.memoize(ctx, cache.Key(aggregateCachePrefix, "filtered", r.String()), func(ctx context.Context) (any, error) {
		ds, err := s.Dataset(ctx)
		if err != nil {
			return nil, err
		}
		return stats.FilterBySeason(ds, r), nil
	})
	if err != nil {
		return stats.Filtered{}, err
	}
	f, _ := v.(stats.Filtered)
	return f, nil
}

func (s *StatsService) memoize(ctx context.Context, key string, compute func(context.Context) (any, error)) (any, error) {
	if s.memo == nil {
		return compute(ctx)
	}
	return s.memo.GetOrLoad(ctx, key, compute)
}

// resolveRange fills unset bounds from the dataset. Min > Max is allowed and
// selects nothing.
func (s *StatsService) resolveRange(ctx context.Context, q RangeQuery) (season.Range, error) {
	r, err := s.rangeBounds(ctx, q)
	if err != nil {
		return season.Range{}, err
	}
	annotateRange(ctx, r)
	return r, nil
}

func (s *StatsService) rangeBounds(ctx context.Context, q RangeQuery) (season.Range, error) {
	if q.From < 0 || q.To < 0 {
		return season.Range{}, fmt.Errorf("%w: season bounds must be positive years", ErrInvalidInput)
	}
	r := season.Range{Min: q.From, Max: q.To}
	if q.From != 0 && q.To != 0 {
		return r, nil
	}

	ds, err := s.Dataset(ctx)
	if err != nil {
		return season.Range{}, err
	}
	bounds, ok := stats.Bounds(ds)
	if !ok {
		return r, nil
	}
	if r.Min == 0 {
		r.Min = bounds.Min
	}
	if r.Max == 0 {
		r.Max = bounds.Max
	}
	return r, nil
}

func (s *StatsService) resolveLimit(limit int) (int, error) {
	switch {
	case limit < 0:
		return 0, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	case limit == 0:
		return s.opts.DefaultLimit, nil
	case limit > MaxLeaderboardLimit:
		return 0, fmt.Errorf("%w: limit must be at most %d", ErrInvalidInput, MaxLeaderboardLimit)
	}
	return limit, nil
}

// splitFields accepts repeated values as well as comma separated lists.
func splitFields(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
