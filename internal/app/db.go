package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/iplt20-stats/internal/config"
	"github.com/riskibarqy/iplt20-stats/internal/platform/dburl"
)

const dbPingTimeout = 5 * time.Second

// OpenDB opens a traced PostgreSQL handle and checks connectivity.
func OpenDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := dburl.Normalize(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dburl.Name(dsn)),
		otelsql.WithQueryFormatter(dburl.FormatQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}
