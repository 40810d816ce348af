package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

// tallyService defines the minimal interface needed by ResultsHandler.
type tallyService interface {
	ComputeResults(ctx context.Context, category domain.Category) ([]domain.TallyRow, error)
	GetWinner(ctx context.Context, category domain.Category) (*domain.TallyRow, error)
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}

// ResultsHandler serves the read-side tally endpoints.
type ResultsHandler struct {
	svc tallyService
	log *slog.Logger
}

// NewResultsHandler creates a ResultsHandler.
func NewResultsHandler(svc tallyService, logger *slog.Logger) *ResultsHandler {
	return &ResultsHandler{svc: svc, log: logger.With("handler", "results")}
}

type tallyRowResponse struct {
	CandidateID string  `json:"candidateId"`
	FullName    string  `json:"fullName"`
	Program     string  `json:"program"`
	PhotoURL    *string `json:"photoUrl,omitempty"`
	Votes       int     `json:"votes"`
	Rank        int     `json:"rank"`
	Share       float64 `json:"share"`
	Winner      bool    `json:"winner"`
}

type resultsResponse struct {
	Category   string             `json:"category"`
	TotalVotes int                `json:"totalVotes"`
	Results    []tallyRowResponse `json:"results"`
}

type categoryStatsResponse struct {
	Votes         int               `json:"votes"`
	Participation float64           `json:"participation"`
	Winner        *tallyRowResponse `json:"winner,omitempty"`
}

type statisticsResponse struct {
	ActiveCandidates int                   `json:"activeCandidates"`
	Queen            categoryStatsResponse `json:"queen"`
	Photogenic       categoryStatsResponse `json:"photogenic"`
}

// Results handles GET /results/{category}.
func (h *ResultsHandler) Results(w http.ResponseWriter, r *http.Request) {
	category, err := domain.ParseCategory(r.PathValue("category"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := h.svc.ComputeResults(r.Context(), category)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := resultsResponse{
		Category: category.String(),
		Results:  make([]tallyRowResponse, len(rows)),
	}
	for i, row := range rows {
		resp.TotalVotes += row.Votes
		resp.Results[i] = toTallyRowResponse(row)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Winner handles GET /results/{category}/winner.
func (h *ResultsHandler) Winner(w http.ResponseWriter, r *http.Request) {
	category, err := domain.ParseCategory(r.PathValue("category"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	winner, err := h.svc.GetWinner(r.Context(), category)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTallyRowResponse(*winner))
}

// Statistics handles GET /statistics.
func (h *ResultsHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStatistics(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statisticsResponse{
		ActiveCandidates: stats.ActiveCandidates,
		Queen:            toCategoryStatsResponse(stats.Queen),
		Photogenic:       toCategoryStatsResponse(stats.Photogenic),
	})
}

func (h *ResultsHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "no candidates in category")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toTallyRowResponse(row domain.TallyRow) tallyRowResponse {
	return tallyRowResponse{
		CandidateID: row.CandidateID.String(),
		FullName:    row.FullName,
		Program:     row.Program,
		PhotoURL:    row.PhotoURL,
		Votes:       row.Votes,
		Rank:        row.Rank,
		Share:       row.Share,
		Winner:      row.Winner,
	}
}

func toCategoryStatsResponse(cs domain.CategoryStats) categoryStatsResponse {
	resp := categoryStatsResponse{
		Votes:         cs.Votes,
		Participation: cs.Participation,
	}
	if cs.Winner != nil {
		row := toTallyRowResponse(*cs.Winner)
		resp.Winner = &row
	}
	return resp
}
