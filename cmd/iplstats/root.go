package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/iplt20-stats/internal/app"
	"github.com/riskibarqy/iplt20-stats/internal/config"
	"github.com/riskibarqy/iplt20-stats/internal/platform/logging"
	"github.com/riskibarqy/iplt20-stats/internal/usecase"
)

// cliEnv holds what every command resolves once in PersistentPreRunE.
type cliEnv struct {
	matchesPath    string
	deliveriesPath string
	source         string
	envFile        string
	dbURL          string
	from           int
	to             int

	cfg    config.Config
	logger *logging.Logger
}

func newRootCmd() *cobra.Command {
	env := &cliEnv{}

	root := &cobra.Command{
		Use:          "iplstats",
		Short:        "IPL match and delivery statistics",
		Long:         "Loads IPL match and ball-by-ball delivery tables and prints season summaries, pivots, win tallies and leaderboards.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return env.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if env.logger != nil {
				_ = env.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&env.matchesPath, "matches", "", "path to matches.csv (default MATCHES_CSV_PATH or ./matches.csv)")
	flags.StringVar(&env.deliveriesPath, "deliveries", "", "path to deliveries.csv (default DELIVERIES_CSV_PATH or ./deliveries.csv)")
	flags.StringVar(&env.source, "source", "", "data source: csv, postgres or memory (default DATA_SOURCE or csv)")
	flags.StringVar(&env.dbURL, "db-url", "", "PostgreSQL URL for --source postgres and import (default DB_URL)")
	flags.StringVar(&env.envFile, "env-file", "", "optional .env file to load before reading the environment")
	flags.IntVar(&env.from, "from", 0, "first season year (default: first season in the data)")
	flags.IntVar(&env.to, "to", 0, "last season year (default: last season in the data)")

	root.AddCommand(
		newSummaryCmd(env),
		newPivotCmd(env),
		newWinsCmd(env),
		newLeaderboardCmd(env, "batters", "Top run scorers", "RUNS"),
		newLeaderboardCmd(env, "bowlers", "Top wicket takers (run outs excluded)", "WICKETS"),
		newTeamsCmd(env),
		newReportCmd(env),
		newImportCmd(env),
	)

	return root
}

func (e *cliEnv) init(cmd *cobra.Command) error {
	if e.envFile != "" {
		if config.LoadDotEnv(e.envFile) == "" {
			return fmt.Errorf("env file %q not found", e.envFile)
		}
	} else {
		config.LoadDotEnv()
	}

	cfg, err := config.LoadWith(map[string]string{
		"DATA_SOURCE":         e.source,
		"MATCHES_CSV_PATH":    e.matchesPath,
		"DELIVERIES_CSV_PATH": e.deliveriesPath,
		"DB_URL":              e.dbURL,
	})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	e.cfg = cfg
	e.logger = logging.NewConsole(cmd.ErrOrStderr(), cfg.LogLevel)
	logging.SetDefault(e.logger)
	return nil
}

func (e *cliEnv) rangeQuery() usecase.RangeQuery {
	return usecase.RangeQuery{From: e.from, To: e.to}
}

// statsService opens the configured source. The caller must call the returned close func.
func (e *cliEnv) statsService(cmd *cobra.Command) (*usecase.StatsService, func(), error) {
	sources, err := app.NewSources(cmd.Context(), e.cfg, e.logger)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := sources.Close(); err != nil {
			e.logger.Warn("close data source", "error", err)
		}
	}
	return app.NewStatsService(e.cfg, sources, e.logger), closeFn, nil
}
