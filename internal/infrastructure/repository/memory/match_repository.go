package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/iplt20-stats/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches []match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	return &MatchRepository{matches: append([]match.Match(nil), matches...)}
}

func (r *MatchRepository) ListMatches(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	out = append(out, r.matches...)
	return out, nil
}

// Replace swaps the stored rows, as an import into the memory source would.
func (r *MatchRepository) Replace(_ context.Context, matches []match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches = append([]match.Match(nil), matches...)
	return nil
}
