package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons", handler.GetSeasons)
	mux.HandleFunc("GET /v1/summary", handler.GetSummary)
	mux.HandleFunc("GET /v1/pivot", handler.GetPivot)
	mux.HandleFunc("GET /v1/season-wins", handler.GetSeasonWins)
	mux.HandleFunc("GET /v1/leaderboards/batters", handler.GetTopBatters)
	mux.HandleFunc("GET /v1/leaderboards/bowlers", handler.GetTopBowlers)
	mux.HandleFunc("GET /v1/dashboard", handler.GetDashboard)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/dataset/report", handler.GetDatasetReport)
}
