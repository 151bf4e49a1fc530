package match

import "context"

// Repository exposes the match table.
type Repository interface {
	ListMatches(ctx context.Context) ([]Match, error)
}
