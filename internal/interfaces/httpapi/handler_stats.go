package httpapi

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/iplt20-stats/internal/domain/stats"
	"github.com/riskibarqy/iplt20-stats/internal/usecase"
)

func (h *Handler) GetSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasons")
	defer span.End()

	seasons, err := h.statsService.Seasons(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonsToDTO(seasons))
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSummary")
	defer span.End()

	req, err := parseRangeRequest(r)
	if err == nil {
		err = h.validateRequest(ctx, req)
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.statsService.Summary(ctx, req.toQuery())
	if err != nil {
		h.logger.WarnContext(ctx, "get summary failed", "from", req.From, "to", req.To, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summaryToDTO(result))
}

func (h *Handler) GetPivot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPivot")
	defer span.End()

	req, err := parsePivotRequest(r)
	if err == nil {
		err = h.validateRequest(ctx, req)
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.statsService.Pivot(ctx, usecase.PivotInput{
		RangeQuery: req.toQuery(),
		Rows:       req.Rows,
		Cols:       req.Cols,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get pivot failed", "rows", req.Rows, "cols", req.Cols, "error", err)
		writeError(ctx, w, err)
		return
	}

	annotateSpan(ctx, exportAttrs(req.Format,
		attribute.StringSlice("ipl.pivot.rows", result.Table.RowFields),
		attribute.StringSlice("ipl.pivot.cols", result.Table.ColFields),
	)...)
	if req.Format == formatCSV {
		writeCSV(ctx, w, "pivot.csv", func(cw *csv.Writer) error {
			return writePivotCSV(cw, result.Table)
		})
		return
	}
	writeSuccess(ctx, w, http.StatusOK, pivotToDTO(result))
}

func (h *Handler) GetSeasonWins(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonWins")
	defer span.End()

	req, err := parseRangeRequest(r)
	if err == nil {
		err = h.validateRequest(ctx, req)
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.statsService.SeasonWins(ctx, req.toQuery())
	if err != nil {
		h.logger.WarnContext(ctx, "get season wins failed", "from", req.From, "to", req.To, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonWinsResultDTO{
		Range: rangeToDTO(result.Range),
		Wins:  seasonWinsToDTO(result.Wins),
	})
}

func (h *Handler) GetTopBatters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTopBatters")
	defer span.End()

	req, err := parseLeaderboardRequest(r)
	if err == nil {
		err = h.validateRequest(ctx, req)
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.statsService.TopBatters(ctx, usecase.LeaderboardInput{RangeQuery: req.toQuery(), Limit: req.Limit})
	if err != nil {
		h.logger.WarnContext(ctx, "get top batters failed", "limit", req.Limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.writeLeaderboard(w, r.WithContext(ctx), req.Format, "runs", result)
}

func (h *Handler) GetTopBowlers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTopBowlers")
	defer span.End()

	req, err := parseLeaderboardRequest(r)
	if err == nil {
		err = h.validateRequest(ctx, req)
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.statsService.TopBowlers(ctx, usecase.LeaderboardInput{RangeQuery: req.toQuery(), Limit: req.Limit})
	if err != nil {
		h.logger.WarnContext(ctx, "get top bowlers failed", "limit", req.Limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.writeLeaderboard(w, r.WithContext(ctx), req.Format, "wickets", result)
}

func (h *Handler) writeLeaderboard(w http.ResponseWriter, r *http.Request, format, valueLabel string, result usecase.LeaderboardResult) {
	ctx := r.Context()
	annotateSpan(ctx, exportAttrs(format,
		attribute.String("ipl.leaderboard.metric", valueLabel),
		attribute.Int("ipl.leaderboard.limit", result.Limit),
	)...)
	if format == formatCSV {
		writeCSV(ctx, w, valueLabel+".csv", func(cw *csv.Writer) error {
			return writeLeaderboardCSV(cw, valueLabel, result.Entries)
		})
		return
	}
	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(result, valueLabel))
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	req, err := parseDashboardRequest(r)
	if err == nil {
		err = h.validateRequest(ctx, req)
	}
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	dashboard, err := h.statsService.Dashboard(ctx, req.toQuery(), req.Limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(dashboard))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	legend, err := h.statsService.Teams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamLegendDTO, 0, len(legend))
	for _, entry := range legend {
		names := entry.Names
		if names == nil {
			names = []string{}
		}
		items = append(items, teamLegendDTO{Code: entry.Code, Names: names})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetDatasetReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDatasetReport")
	defer span.End()

	report, err := h.statsService.Report(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dataset report failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reportToDTO(report))
}

func writePivotCSV(cw *csv.Writer, table stats.PivotTable) error {
	header := append([]string(nil), table.RowFields...)
	for _, col := range table.ColKeys {
		header = append(header, strings.Join(col, " / "))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, row := range table.RowKeys {
		record := append([]string(nil), row...)
		for _, count := range table.Counts[i] {
			record = append(record, strconv.Itoa(count))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeLeaderboardCSV(cw *csv.Writer, valueLabel string, entries []stats.LeaderboardEntry) error {
	if err := cw.Write([]string{"rank", "name", valueLabel}); err != nil {
		return err
	}
	for i, entry := range entries {
		if err := cw.Write([]string{strconv.Itoa(i + 1), entry.Name, strconv.Itoa(entry.Value)}); err != nil {
			return err
		}
	}
	return nil
}
