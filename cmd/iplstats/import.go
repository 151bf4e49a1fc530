package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/iplt20-stats/internal/app"
	"github.com/riskibarqy/iplt20-stats/internal/domain/stats"
	"github.com/riskibarqy/iplt20-stats/internal/infrastructure/repository/csvfile"
	"github.com/riskibarqy/iplt20-stats/internal/infrastructure/repository/postgres"
)

func newImportCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Replace the PostgreSQL base tables with the CSV files",
		Long: "Reads --matches and --deliveries, validates the match table and bulk loads both " +
			"tables into PostgreSQL in one transaction. Rows are stored as read; team names are folded at load time.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := env.cfg
			if cfg.DBURL == "" {
				return errors.New("import needs --db-url or DB_URL")
			}

			matches, err := csvfile.NewMatchRepository(cfg.MatchesCSVPath).ListMatches(ctx)
			if err != nil {
				return fmt.Errorf("read matches: %w", err)
			}
			deliveries, err := csvfile.NewDeliveryRepository(cfg.DeliveriesCSVPath).ListDeliveries(ctx)
			if err != nil {
				return fmt.Errorf("read deliveries: %w", err)
			}

			ds, err := stats.NewDataset(matches, deliveries)
			if err != nil {
				return err
			}
			for _, issue := range ds.Report.Issues() {
				env.logger.Warn("dataset issue", "issue", issue)
			}

			db, err := app.OpenDB(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			source := cfg.MatchesCSVPath + "," + cfg.DeliveriesCSVPath
			record, err := postgres.NewImportRepository(db).Replace(ctx, source, matches, deliveries)
			if err != nil {
				return err
			}
			env.logger.Info("import complete",
				"import_id", record.ID,
				"matches", record.MatchRows,
				"deliveries", record.DeliveryRows,
			)

			counts, err := postgres.NewMatchRepository(db).CountBySeason(ctx, 0, 9999)
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			writeRow(tw, "SEASON", "MATCHES")
			for _, c := range counts {
				writeRow(tw, c.Year, c.Matches)
			}
			writeRow(tw, "imported", record.ImportedAt.Format("2006-01-02 15:04:05"))
			return tw.Flush()
		},
	}
}
