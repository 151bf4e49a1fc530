package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/iplt20-stats/internal/platform/logging"
	"github.com/riskibarqy/iplt20-stats/internal/usecase"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

type Handler struct {
	statsService *usecase.StatsService
	logger       *logging.Logger
	validator    *validator.Validate
}

func NewHandler(statsService *usecase.StatsService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		statsService: statsService,
		logger:       logger,
		validator:    validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type rangeRequest struct {
	From int `validate:"gte=0,lte=9999"`
	To   int `validate:"gte=0,lte=9999"`
}

type exportRequest struct {
	Format string `validate:"omitempty,oneof=json csv"`
}

type leaderboardRequest struct {
	rangeRequest
	exportRequest
	Limit int `validate:"gte=0,lte=100"`
}

type pivotRequest struct {
	rangeRequest
	exportRequest
	Rows []string `validate:"dive,max=64"`
	Cols []string `validate:"dive,max=64"`
}

type dashboardRequest struct {
	rangeRequest
	Limit int `validate:"gte=0,lte=100"`
}

func parseRangeRequest(r *http.Request) (rangeRequest, error) {
	from, err := queryInt(r, "from")
	if err != nil {
		return rangeRequest{}, err
	}
	to, err := queryInt(r, "to")
	if err != nil {
		return rangeRequest{}, err
	}
	return rangeRequest{From: from, To: to}, nil
}

func parseLeaderboardRequest(r *http.Request) (leaderboardRequest, error) {
	rng, err := parseRangeRequest(r)
	if err != nil {
		return leaderboardRequest{}, err
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		return leaderboardRequest{}, err
	}
	return leaderboardRequest{
		rangeRequest:  rng,
		exportRequest: exportRequest{Format: queryFormat(r)},
		Limit:         limit,
	}, nil
}

func parsePivotRequest(r *http.Request) (pivotRequest, error) {
	rng, err := parseRangeRequest(r)
	if err != nil {
		return pivotRequest{}, err
	}
	query := r.URL.Query()
	return pivotRequest{
		rangeRequest:  rng,
		exportRequest: exportRequest{Format: queryFormat(r)},
		Rows:          query["rows"],
		Cols:          query["cols"],
	}, nil
}

func parseDashboardRequest(r *http.Request) (dashboardRequest, error) {
	rng, err := parseRangeRequest(r)
	if err != nil {
		return dashboardRequest{}, err
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		return dashboardRequest{}, err
	}
	return dashboardRequest{rangeRequest: rng, Limit: limit}, nil
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, key, raw)
	}
	return value, nil
}

func queryFormat(r *http.Request) string {
	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		return formatJSON
	}
	return format
}

func (q rangeRequest) toQuery() usecase.RangeQuery {
	return usecase.RangeQuery{From: q.From, To: q.To}
}
