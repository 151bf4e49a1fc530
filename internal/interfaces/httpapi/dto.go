package httpapi

import (
	"time"

	"github.com/riskibarqy/iplt20-stats/internal/domain/season"
	"github.com/riskibarqy/iplt20-stats/internal/domain/stats"
	"github.com/riskibarqy/iplt20-stats/internal/usecase"
)

const dateLayout = "2006-01-02"

type rangeDTO struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type seasonsDTO struct {
	HasData bool     `json:"hasData"`
	From    int      `json:"from"`
	To      int      `json:"to"`
	Labels  []string `json:"labels"`
}

type summaryDTO struct {
	Range      rangeDTO `json:"range"`
	Matches    int      `json:"matches"`
	Seasons    int      `json:"seasons"`
	Venues     int      `json:"venues"`
	TotalRuns  int64    `json:"totalRuns"`
	Wickets    int      `json:"wickets"`
	FirstMatch *string  `json:"firstMatch"`
	LastMatch  *string  `json:"lastMatch"`
}

type pivotDTO struct {
	Range     rangeDTO   `json:"range"`
	RowFields []string   `json:"rowFields"`
	ColFields []string   `json:"colFields"`
	Rows      [][]string `json:"rows"`
	Cols      [][]string `json:"cols"`
	Counts    [][]int    `json:"counts"`
	Total     int        `json:"total"`
}

type seasonWinDTO struct {
	Season string `json:"season"`
	Team   string `json:"team"`
	Wins   int    `json:"wins"`
}

type seasonWinsResultDTO struct {
	Range rangeDTO       `json:"range"`
	Wins  []seasonWinDTO `json:"wins"`
}

type leaderboardEntryDTO struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type leaderboardDTO struct {
	Range   rangeDTO              `json:"range"`
	Metric  string                `json:"metric"`
	Limit   int                   `json:"limit"`
	Entries []leaderboardEntryDTO `json:"entries"`
}

type dashboardDTO struct {
	Range   rangeDTO              `json:"range"`
	Summary summaryDTO            `json:"summary"`
	Wins    []seasonWinDTO        `json:"wins"`
	Batters []leaderboardEntryDTO `json:"batters"`
	Bowlers []leaderboardEntryDTO `json:"bowlers"`
}

type teamLegendDTO struct {
	Code  string   `json:"code"`
	Names []string `json:"names"`
}

type reportDTO struct {
	MatchRows        int      `json:"matchRows"`
	DeliveryRows     int      `json:"deliveryRows"`
	InvalidDates     []int64  `json:"invalidDates"`
	UnmappedTeams    []string `json:"unmappedTeams"`
	OrphanDeliveries int      `json:"orphanDeliveries"`
	Clean            bool     `json:"clean"`
	Issues           []string `json:"issues"`
}

func rangeToDTO(r season.Range) rangeDTO {
	return rangeDTO{From: r.Min, To: r.Max}
}

func seasonsToDTO(v usecase.Seasons) seasonsDTO {
	labels := v.Labels
	if labels == nil {
		labels = []string{}
	}
	return seasonsDTO{
		HasData: v.HasData,
		From:    v.Bounds.Min,
		To:      v.Bounds.Max,
		Labels:  labels,
	}
}

func summaryToDTO(v usecase.SummaryResult) summaryDTO {
	return summaryFieldsToDTO(v.Range, v.Summary)
}

func summaryFieldsToDTO(r season.Range, s stats.Summary) summaryDTO {
	return summaryDTO{
		Range:      rangeToDTO(r),
		Matches:    s.Matches,
		Seasons:    s.Seasons,
		Venues:     s.Venues,
		TotalRuns:  s.TotalRuns,
		Wickets:    s.Wickets,
		FirstMatch: formatDate(s.FirstMatch),
		LastMatch:  formatDate(s.LastMatch),
	}
}

func pivotToDTO(v usecase.PivotResult) pivotDTO {
	return pivotDTO{
		Range:     rangeToDTO(v.Range),
		RowFields: nonNilStrings(v.Table.RowFields),
		ColFields: nonNilStrings(v.Table.ColFields),
		Rows:      nonNilTuples(v.Table.RowKeys),
		Cols:      nonNilTuples(v.Table.ColKeys),
		Counts:    nonNilCounts(v.Table.Counts),
		Total:     v.Table.Total,
	}
}

func seasonWinsToDTO(wins []stats.SeasonWin) []seasonWinDTO {
	out := make([]seasonWinDTO, 0, len(wins))
	for _, w := range wins {
		out = append(out, seasonWinDTO{Season: w.Season, Team: w.Team, Wins: w.Wins})
	}
	return out
}

func leaderboardEntriesToDTO(entries []stats.LeaderboardEntry) []leaderboardEntryDTO {
	out := make([]leaderboardEntryDTO, 0, len(entries))
	for i, e := range entries {
		out = append(out, leaderboardEntryDTO{Rank: i + 1, Name: e.Name, Value: e.Value})
	}
	return out
}

func leaderboardToDTO(v usecase.LeaderboardResult, metric string) leaderboardDTO {
	return leaderboardDTO{
		Range:   rangeToDTO(v.Range),
		Metric:  metric,
		Limit:   v.Limit,
		Entries: leaderboardEntriesToDTO(v.Entries),
	}
}

func dashboardToDTO(v usecase.Dashboard) dashboardDTO {
	return dashboardDTO{
		Range:   rangeToDTO(v.Range),
		Summary: summaryFieldsToDTO(v.Range, v.Summary),
		Wins:    seasonWinsToDTO(v.Wins),
		Batters: leaderboardEntriesToDTO(v.Batters),
		Bowlers: leaderboardEntriesToDTO(v.Bowlers),
	}
}

func reportToDTO(r stats.LoadReport) reportDTO {
	invalid := r.InvalidDates
	if invalid == nil {
		invalid = []int64{}
	}
	return reportDTO{
		MatchRows:        r.MatchRows,
		DeliveryRows:     r.DeliveryRows,
		InvalidDates:     invalid,
		UnmappedTeams:    nonNilStrings(r.UnmappedTeams),
		OrphanDeliveries: r.OrphanDeliveries,
		Clean:            r.Clean(),
		Issues:           nonNilStrings(r.Issues()),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.UTC().Format(dateLayout)
	return &s
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func nonNilTuples(v [][]string) [][]string {
	if v == nil {
		return [][]string{}
	}
	return v
}

func nonNilCounts(v [][]int) [][]int {
	if v == nil {
		return [][]int{}
	}
	return v
}
