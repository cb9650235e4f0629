package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerTallyRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/stats", handler.ListStats)
	mux.HandleFunc("GET /v1/tally", handler.GetTally)
	mux.HandleFunc("GET /v1/tally/teams/{team}", handler.GetTeamRecord)
	mux.HandleFunc("PUT /v1/tally/active-team", handler.SetActiveTeam)
	mux.HandleFunc("POST /v1/tally/stats/{stat}/increment", handler.IncrementStat)
	mux.HandleFunc("POST /v1/tally/stats/{stat}/decrement", handler.DecrementStat)
	mux.HandleFunc("POST /v1/tally/teams/{team}/reset", handler.ResetTeam)
}
