package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/iplt20-stats/internal/domain/stats"
	"github.com/riskibarqy/iplt20-stats/internal/usecase"
)

func newSummaryCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Headline counters for the season range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := env.statsService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			res, err := svc.Summary(cmd.Context(), env.rangeQuery())
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			s := res.Summary
			writeRow(tw, "Range", res.Range)
			writeRow(tw, "Matches", s.Matches)
			writeRow(tw, "Seasons", s.Seasons)
			writeRow(tw, "Venues", s.Venues)
			writeRow(tw, "Total runs", s.TotalRuns)
			writeRow(tw, "Wickets", s.Wickets)
			writeRow(tw, "First match", formatDay(s.FirstMatch))
			writeRow(tw, "Last match", formatDay(s.LastMatch))
			return tw.Flush()
		},
	}
}

func newPivotCmd(env *cliEnv) *cobra.Command {
	var rows, cols []string

	cmd := &cobra.Command{
		Use:   "pivot",
		Short: "Count matches by row and column fields",
		Long:  "Counts matches per combination of row and column field values. Fields: " + strings.Join(stats.PivotFields(), ", ") + ".",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := env.statsService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			res, err := svc.Pivot(cmd.Context(), usecase.PivotInput{
				RangeQuery: env.rangeQuery(),
				Rows:       rows,
				Cols:       cols,
			})
			if err != nil {
				return err
			}

			table := res.Table
			tw := newTable(cmd.OutOrStdout())
			header := make([]any, 0, len(table.RowFields)+len(table.ColKeys))
			for _, f := range table.RowFields {
				header = append(header, strings.ToUpper(f))
			}
			for _, ck := range table.ColKeys {
				header = append(header, strings.Join(ck, " / "))
			}
			writeRow(tw, header...)

			for i, rk := range table.RowKeys {
				cells := make([]any, 0, len(rk)+len(table.ColKeys))
				for _, v := range rk {
					cells = append(cells, v)
				}
				for _, n := range table.Counts[i] {
					cells = append(cells, n)
				}
				writeRow(tw, cells...)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringSliceVar(&rows, "rows", []string{"season"}, "row fields")
	cmd.Flags().StringSliceVar(&cols, "cols", []string{"winner"}, "column fields")
	return cmd
}

func newWinsCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "wins",
		Short: "Wins per team per season",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := env.statsService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			res, err := svc.SeasonWins(cmd.Context(), env.rangeQuery())
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			writeRow(tw, "SEASON", "TEAM", "WINS")
			for _, w := range res.Wins {
				writeRow(tw, w.Season, w.Team, w.Wins)
			}
			return tw.Flush()
		},
	}
}

func newLeaderboardCmd(env *cliEnv, use, short, metric string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := env.statsService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			input := usecase.LeaderboardInput{RangeQuery: env.rangeQuery(), Limit: limit}
			var res usecase.LeaderboardResult
			if use == "bowlers" {
				res, err = svc.TopBowlers(cmd.Context(), input)
			} else {
				res, err = svc.TopBatters(cmd.Context(), input)
			}
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			writeRow(tw, "RANK", "PLAYER", metric)
			for i, e := range res.Entries {
				writeRow(tw, i+1, e.Name, e.Value)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "number of players to list (default LEADERBOARD_DEFAULT_LIMIT)")
	return cmd
}

func newTeamsCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "Franchise codes present in the data and the names they fold",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := env.statsService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			legend, err := svc.Teams(cmd.Context())
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			writeRow(tw, "CODE", "NAMES")
			for _, entry := range legend {
				names := strings.Join(entry.Names, ", ")
				if names == "" {
					names = "-"
				}
				writeRow(tw, entry.Code, names)
			}
			return tw.Flush()
		},
	}
}

func newReportCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Row-level diagnostics from loading the tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, closeFn, err := env.statsService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			report, err := svc.Report(cmd.Context())
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			writeRow(tw, "Match rows", report.MatchRows)
			writeRow(tw, "Delivery rows", report.DeliveryRows)
			writeRow(tw, "Invalid dates", len(report.InvalidDates))
			writeRow(tw, "Unmapped teams", len(report.UnmappedTeams))
			writeRow(tw, "Orphan deliveries", report.OrphanDeliveries)
			if report.Clean() {
				writeRow(tw, "Status", "clean")
			}
			for _, issue := range report.Issues() {
				writeRow(tw, "Issue", issue)
			}
			return tw.Flush()
		},
	}
}
