package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/iplt20-stats/internal/domain/delivery"
	"github.com/riskibarqy/iplt20-stats/internal/domain/match"
	qb "github.com/riskibarqy/iplt20-stats/internal/platform/querybuilder"
)

// ImportRepository replaces the stored base tables in one transaction.
type ImportRepository struct {
	db *sqlx.DB
}

func NewImportRepository(db *sqlx.DB) *ImportRepository {
	return &ImportRepository{db: db}
}

// Replace truncates both tables and bulk loads the given rows with COPY.
// Match dates are parsed before storing so the database can filter by year.
func (r *ImportRepository) Replace(ctx context.Context, source string, matches []match.Match, deliveries []delivery.Delivery) (ImportRecord, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return ImportRecord{}, fmt.Errorf("begin import tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `TRUNCATE deliveries, matches RESTART IDENTITY`); err != nil {
		return ImportRecord{}, fmt.Errorf("truncate base tables: %w", err)
	}

	matchRows := make([]any, 0, len(matches))
	for _, m := range matches {
		matchRows = append(matchRows, matchModelFromDomain(m.Normalize()))
	}
	if err := copyRows(ctx, tx, "matches", matchTableModel{}, matchRows); err != nil {
		return ImportRecord{}, err
	}

	deliveryRows := make([]any, 0, len(deliveries))
	for _, d := range deliveries {
		deliveryRows = append(deliveryRows, deliveryModelFromDomain(d))
	}
	if err := copyRows(ctx, tx, "deliveries", deliveryTableModel{}, deliveryRows); err != nil {
		return ImportRecord{}, err
	}

	audit := importTableModel{
		Source:       source,
		MatchRows:    len(matches),
		DeliveryRows: len(deliveries),
		ImportedAt:   time.Now().UTC(),
	}
	query, args, err := qb.InsertModel("dataset_imports", audit, "RETURNING id")
	if err != nil {
		return ImportRecord{}, fmt.Errorf("build insert import query: %w", err)
	}
	var id int64
	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return ImportRecord{}, fmt.Errorf("insert import record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return ImportRecord{}, fmt.Errorf("commit import tx: %w", err)
	}

	return ImportRecord{
		ID:           id,
		Source:       audit.Source,
		MatchRows:    audit.MatchRows,
		DeliveryRows: audit.DeliveryRows,
		ImportedAt:   audit.ImportedAt,
	}, nil
}

// LatestImport returns the most recent import, if any.
func (r *ImportRepository) LatestImport(ctx context.Context) (ImportRecord, bool, error) {
	cols, err := qb.Columns(ImportRecord{})
	if err != nil {
		return ImportRecord{}, false, fmt.Errorf("resolve import columns: %w", err)
	}
	query, args, err := qb.Select(cols...).From("dataset_imports").OrderBy("id DESC").Limit(1).ToSQL()
	if err != nil {
		return ImportRecord{}, false, fmt.Errorf("build select latest import query: %w", err)
	}

	var out ImportRecord
	if err := r.db.GetContext(ctx, &out, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ImportRecord{}, false, nil
		}
		return ImportRecord{}, false, fmt.Errorf("select latest import: %w", err)
	}
	return out, true, nil
}

func copyRows(ctx context.Context, tx *sqlx.Tx, table string, model any, rows []any) error {
	cols, err := qb.Columns(model)
	if err != nil {
		return fmt.Errorf("resolve %s columns: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, cols...))
	if err != nil {
		return fmt.Errorf("prepare copy into %s: %w", table, err)
	}
	defer stmt.Close()

	for i, row := range rows {
		vals, err := qb.Values(row)
		if err != nil {
			return fmt.Errorf("resolve %s row %d values: %w", table, i, err)
		}
		if _, err := stmt.ExecContext(ctx, vals...); err != nil {
			return fmt.Errorf("copy %s row %d: %w", table, i, err)
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		return fmt.Errorf("flush copy into %s: %w", table, err)
	}
	return nil
}
