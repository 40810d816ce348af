package rest

import (
	"net/http"

	"github.com/heartmarshall/reinafiec-backend/internal/transport/middleware"
)

// Handlers bundles the REST handlers for route registration.
type Handlers struct {
	Auth       *AuthHandler
	Voting     *VotingHandler
	Results    *ResultsHandler
	Candidates *CandidateHandler
	Health     *HealthHandler
}

// NewRouter registers all routes and wraps them with the given middleware
// chain. The health probes are registered alongside the API so they share
// the request id and recovery middleware.
func NewRouter(h Handlers, mws ...middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)

	mux.HandleFunc("GET /api/v1/eligibility", h.Voting.Eligibility)
	mux.HandleFunc("POST /api/v1/votes", h.Voting.CastVote)

	mux.HandleFunc("GET /api/v1/results/{category}", h.Results.Results)
	mux.HandleFunc("GET /api/v1/results/{category}/winner", h.Results.Winner)
	mux.HandleFunc("GET /api/v1/statistics", h.Results.Statistics)

	mux.HandleFunc("GET /api/v1/candidates", h.Candidates.List)
	mux.HandleFunc("POST /api/v1/candidates", h.Candidates.Register)
	mux.HandleFunc("GET /api/v1/candidates/{id}", h.Candidates.Get)
	mux.HandleFunc("DELETE /api/v1/candidates/{id}", h.Candidates.Deactivate)

	return middleware.Chain(mws...)(mux)
}
