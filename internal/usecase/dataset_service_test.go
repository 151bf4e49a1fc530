package usecase

import (
	"context"
	"errors"
	"os"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/iplt20-stats/internal/domain/delivery"
	"github.com/riskibarqy/iplt20-stats/internal/domain/match"
	"github.com/riskibarqy/iplt20-stats/internal/domain/stats"
	"github.com/riskibarqy/iplt20-stats/internal/infrastructure/repository/memory"
	deliverymock "github.com/riskibarqy/iplt20-stats/internal/mocks/domain/delivery"
	matchmock "github.com/riskibarqy/iplt20-stats/internal/mocks/domain/match"
)

func TestDatasetService_Load_FromMemory(t *testing.T) {
	t.Parallel()

	svc := NewDatasetService(
		memory.NewMatchRepository(memory.SeedMatches()),
		memory.NewDeliveryRepository(memory.SeedDeliveries()),
		nil,
	)

	ds, err := svc.Load(t.Context())
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	if len(ds.Matches) != 10 || len(ds.Deliveries) != 15 {
		t.Fatalf("unexpected sizes: matches=%d deliveries=%d", len(ds.Matches), len(ds.Deliveries))
	}
	if !ds.Report.Clean() {
		t.Fatalf("expected a clean report, got %v", ds.Report.Issues())
	}
	if ds.Matches[6].Team2Code != "SRH" {
		t.Fatalf("expected Deccan Chargers to normalize to SRH, got %q", ds.Matches[6].Team2Code)
	}
}

func TestDatasetService_Load_MissingSourceUsingMockery(t *testing.T) {
	t.Parallel()

	matchRepo := matchmock.NewRepository(t)
	deliveryRepo := deliverymock.NewRepository(t)

	matchRepo.
		On("ListMatches", mock.Anything).
		Return(nil, &os.PathError{Op: "open", Path: "matches.csv", Err: os.ErrNotExist}).
		Once()
	deliveryRepo.
		On("ListDeliveries", mock.Anything).
		Return([]delivery.Delivery{}, nil).
		Maybe()

	_, err := NewDatasetService(matchRepo, deliveryRepo, nil).Load(context.Background())
	if err == nil {
		t.Fatalf("expected an error for a missing source")
	}
	if !crerr.Is(err, ErrDatasetUnavailable) {
		t.Fatalf("expected ErrDatasetUnavailable, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected cause os.ErrNotExist to be kept, got %v", err)
	}
}

func TestDatasetService_Load_DuplicateMatchIDUsingMockery(t *testing.T) {
	t.Parallel()

	matchRepo := matchmock.NewRepository(t)
	deliveryRepo := deliverymock.NewRepository(t)

	matchRepo.
		On("ListMatches", mock.Anything).
		Return([]match.Match{{ID: 1, RawDate: "2008-04-18"}, {ID: 1, RawDate: "2008-04-19"}}, nil).
		Once()
	deliveryRepo.
		On("ListDeliveries", mock.Anything).
		Return([]delivery.Delivery{}, nil).
		Once()

	_, err := NewDatasetService(matchRepo, deliveryRepo, nil).Load(context.Background())
	if !crerr.Is(err, ErrDatasetUnavailable) {
		t.Fatalf("expected ErrDatasetUnavailable, got %v", err)
	}
	if !errors.Is(err, stats.ErrDuplicateMatchID) {
		t.Fatalf("expected ErrDuplicateMatchID cause, got %v", err)
	}
}

func TestDatasetService_Load_EmptySourceIsNotAnError(t *testing.T) {
	t.Parallel()

	svc := NewDatasetService(memory.NewMatchRepository(nil), memory.NewDeliveryRepository(nil), nil)
	ds, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("expected empty dataset to load, got %v", err)
	}
	if len(ds.Matches) != 0 || len(ds.Deliveries) != 0 {
		t.Fatalf("expected empty dataset")
	}
}
