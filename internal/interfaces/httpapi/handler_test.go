package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/iplt20-stats/internal/domain/stats"
	"github.com/riskibarqy/iplt20-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/iplt20-stats/internal/platform/cache"
	"github.com/riskibarqy/iplt20-stats/internal/platform/logging"
	"github.com/riskibarqy/iplt20-stats/internal/usecase"
)

type envelope[T any] struct {
	APIVersion string           `json:"apiVersion"`
	Data       T                `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func newSeededRouter(t *testing.T) http.Handler {
	t.Helper()

	loader := usecase.NewDatasetService(
		memory.NewMatchRepository(memory.SeedMatches()),
		memory.NewDeliveryRepository(memory.SeedDeliveries()),
		logging.NewNop(),
	)
	svc := usecase.NewStatsService(loader, cache.NewStore(time.Minute), usecase.StatsOptions{}, logging.NewNop())
	return NewRouter(NewHandler(svc, logging.NewNop()), logging.NewNop(), []string{"*"})
}

func serve(t *testing.T, router http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var body envelope[T]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.Nil(t, body.Error)
	assert.Equal(t, googleAPIVersion, body.APIVersion)
	return body.Data
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) googleErrorBody {
	t.Helper()
	var body envelope[any]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return *body.Error
}

func TestHandler_Healthz(t *testing.T) {
	rec := serve(t, newSeededRouter(t), http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"status": "ok"}, decodeData[map[string]string](t, rec))
}

func TestHandler_Seasons(t *testing.T) {
	rec := serve(t, newSeededRouter(t), http.MethodGet, "/v1/seasons")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeData[seasonsDTO](t, rec)
	assert.True(t, got.HasData)
	assert.Equal(t, 2008, got.From)
	assert.Equal(t, 2010, got.To)
	assert.Equal(t, []string{"2008", "2009", "2010"}, got.Labels)
}

func TestHandler_Summary(t *testing.T) {
	router := newSeededRouter(t)

	rec := serve(t, router, http.MethodGet, "/v1/summary")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[summaryDTO](t, rec)
	assert.Equal(t, rangeDTO{From: 2008, To: 2010}, got.Range)
	assert.Equal(t, 10, got.Matches)
	assert.Equal(t, 3, got.Seasons)
	assert.Equal(t, 7, got.Venues)
	assert.EqualValues(t, 38, got.TotalRuns)
	assert.Equal(t, 6, got.Wickets)
	require.NotNil(t, got.FirstMatch)
	require.NotNil(t, got.LastMatch)
	assert.Equal(t, "2008-04-18", *got.FirstMatch)
	assert.Equal(t, "2010-03-14", *got.LastMatch)

	rec = serve(t, router, http.MethodGet, "/v1/summary?from=2010&to=2008")
	require.Equal(t, http.StatusOK, rec.Code)
	empty := decodeData[summaryDTO](t, rec)
	assert.Equal(t, 0, empty.Matches)
	assert.Nil(t, empty.FirstMatch)
}

func TestHandler_SummaryRejectsBadRange(t *testing.T) {
	router := newSeededRouter(t)

	for _, target := range []string{"/v1/summary?from=abc", "/v1/summary?to=-1", "/v1/summary?from=20080"} {
		rec := serve(t, router, http.MethodGet, target)
		require.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, "INVALID_ARGUMENT", decodeError(t, rec).Status, target)
	}
}

func TestHandler_PivotJSON(t *testing.T) {
	rec := serve(t, newSeededRouter(t), http.MethodGet, "/v1/pivot?rows=season&cols=winner&from=2010&to=2010")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeData[pivotDTO](t, rec)
	assert.Equal(t, []string{"season"}, got.RowFields)
	assert.Equal(t, []string{"winner"}, got.ColFields)
	assert.Equal(t, [][]string{{"2010"}}, got.Rows)
	assert.Equal(t, [][]string{{stats.NullLabel}, {"DD"}, {"KKR"}, {"MI"}}, got.Cols)
	assert.Equal(t, [][]int{{1, 1, 1, 1}}, got.Counts)
	assert.Equal(t, 4, got.Total)
}

func TestHandler_PivotCSV(t *testing.T) {
	rec := serve(t, newSeededRouter(t), http.MethodGet, "/v1/pivot?rows=season&cols=winner&from=2010&to=2010&format=csv")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "pivot.csv")
	assert.Equal(t, "season,(none),DD,KKR,MI\n2010,1,1,1,1\n", rec.Body.String())
}

func TestHandler_PivotRejectsBadSelection(t *testing.T) {
	router := newSeededRouter(t)

	for _, target := range []string{
		"/v1/pivot",
		"/v1/pivot?rows=season",
		"/v1/pivot?rows=umpire&cols=winner",
		"/v1/pivot?rows=season&cols=winner&format=xml",
	} {
		rec := serve(t, router, http.MethodGet, target)
		require.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestHandler_SeasonWins(t *testing.T) {
	rec := serve(t, newSeededRouter(t), http.MethodGet, "/v1/season-wins?from=2009&to=2009")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeData[seasonWinsResultDTO](t, rec)
	require.Len(t, got.Wins, 3)
	teams := make([]string, 0, len(got.Wins))
	for _, w := range got.Wins {
		assert.Equal(t, "2009", w.Season)
		assert.Equal(t, 1, w.Wins)
		teams = append(teams, w.Team)
	}
	assert.ElementsMatch(t, []string{"DD", "MI", "RCB"}, teams)
}

func TestHandler_TopBatters(t *testing.T) {
	rec := serve(t, newSeededRouter(t), http.MethodGet, "/v1/leaderboards/batters?limit=3")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeData[leaderboardDTO](t, rec)
	assert.Equal(t, "runs", got.Metric)
	assert.Equal(t, 3, got.Limit)
	assert.Equal(t, []leaderboardEntryDTO{
		{Rank: 1, Name: "BB McCullum", Value: 10},
		{Rank: 2, Name: "SR Tendulkar", Value: 8},
		{Rank: 3, Name: "G Gambhir", Value: 6},
	}, got.Entries)
}

func TestHandler_TopBattersCSV(t *testing.T) {
	rec := serve(t, newSeededRouter(t), http.MethodGet, "/v1/leaderboards/batters?limit=2&format=csv")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rank,name,runs\n1,BB McCullum,10\n2,SR Tendulkar,8\n", rec.Body.String())
}

func TestHandler_TopBowlers(t *testing.T) {
	router := newSeededRouter(t)

	rec := serve(t, router, http.MethodGet, "/v1/leaderboards/bowlers")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[leaderboardDTO](t, rec)
	assert.Equal(t, "wickets", got.Metric)
	assert.Equal(t, stats.DefaultLeaderboardSize, got.Limit)
	require.NotEmpty(t, got.Entries)
	assert.Equal(t, "AB Agarkar", got.Entries[0].Name)

	rec = serve(t, router, http.MethodGet, "/v1/leaderboards/bowlers?limit=101")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Dashboard(t *testing.T) {
	rec := serve(t, newSeededRouter(t), http.MethodGet, "/v1/dashboard?from=2009&to=2009")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeData[dashboardDTO](t, rec)
	assert.Equal(t, rangeDTO{From: 2009, To: 2009}, got.Range)
	assert.Equal(t, 3, got.Summary.Matches)
	assert.Len(t, got.Wins, 3)
	require.NotEmpty(t, got.Batters)
	assert.Equal(t, leaderboardEntryDTO{Rank: 1, Name: "R Dravid", Value: 6}, got.Batters[0])
	require.NotEmpty(t, got.Bowlers)
	assert.Equal(t, "Harbhajan Singh", got.Bowlers[0].Name)
}

func TestHandler_Teams(t *testing.T) {
	rec := serve(t, newSeededRouter(t), http.MethodGet, "/v1/teams")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeData[[]teamLegendDTO](t, rec)
	codes := make([]string, 0, len(got))
	for _, entry := range got {
		codes = append(codes, entry.Code)
	}
	assert.Equal(t, []string{"CSK", "DD", "KKR", "MI", "PBKS", "RCB"}, codes)
}

func TestHandler_DatasetReport(t *testing.T) {
	rec := serve(t, newSeededRouter(t), http.MethodGet, "/v1/dataset/report")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeData[reportDTO](t, rec)
	assert.Equal(t, 10, got.MatchRows)
	assert.Equal(t, 15, got.DeliveryRows)
	assert.True(t, got.Clean)
	assert.Empty(t, got.Issues)
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	rec := serve(t, newSeededRouter(t), http.MethodPost, "/v1/summary")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

type failingLoader struct{}

func (failingLoader) Load(context.Context) (stats.Dataset, error) {
	return stats.Dataset{}, crerr.Mark(crerr.Wrap(os.ErrNotExist, "open ./matches.csv"), usecase.ErrDatasetUnavailable)
}

func TestHandler_DatasetUnavailable(t *testing.T) {
	svc := usecase.NewStatsService(failingLoader{}, nil, usecase.StatsOptions{}, logging.NewNop())
	router := NewRouter(NewHandler(svc, logging.NewNop()), logging.NewNop(), []string{"*"})

	for _, target := range []string{"/v1/summary", "/v1/seasons", "/v1/dashboard"} {
		rec := serve(t, router, http.MethodGet, target)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code, target)
		assert.Equal(t, "UNAVAILABLE", decodeError(t, rec).Status, target)
	}
}

func TestRecoverPanic(t *testing.T) {
	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/summary", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
