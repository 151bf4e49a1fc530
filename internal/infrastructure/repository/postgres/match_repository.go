package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/iplt20-stats/internal/domain/match"
	qb "github.com/riskibarqy/iplt20-stats/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListMatches(ctx context.Context) ([]match.Match, error) {
	cols, err := qb.Columns(matchTableModel{})
	if err != nil {
		return nil, fmt.Errorf("resolve match columns: %w", err)
	}
	query, args, err := qb.Select(cols...).From("matches").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// SeasonCount is the number of stored matches per calendar year.
type SeasonCount struct {
	Year    int `db:"year"`
	Matches int `db:"matches"`
}

// CountBySeason counts stored matches per year within [from, to]; undated rows are left out.
func (r *MatchRepository) CountBySeason(ctx context.Context, from, to int) ([]SeasonCount, error) {
	query, args, err := qb.Select("EXTRACT(YEAR FROM match_date)::int AS year", "COUNT(1) AS matches").
		From("matches").
		Where(
			qb.Expr("match_date IS NOT NULL"),
			qb.Between("EXTRACT(YEAR FROM match_date)", from, to),
		).
		GroupBy("year").
		OrderBy("year").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build count matches by season query: %w", err)
	}

	var rows []SeasonCount
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("count matches by season: %w", err)
	}
	return rows, nil
}
