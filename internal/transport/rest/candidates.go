package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
	"github.com/heartmarshall/reinafiec-backend/internal/service/candidate"
)

// candidateService defines the minimal interface needed by CandidateHandler.
type candidateService interface {
	Register(ctx context.Context, input candidate.RegisterInput) (*domain.Candidate, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.CandidateFilter) ([]*domain.Candidate, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Candidate, error)
}

// CandidateHandler serves the candidate registry endpoints. Listing is
// public; registration and deactivation require an administrator token.
type CandidateHandler struct {
	svc candidateService
	log *slog.Logger
}

// NewCandidateHandler creates a CandidateHandler.
func NewCandidateHandler(svc candidateService, logger *slog.Logger) *CandidateHandler {
	return &CandidateHandler{svc: svc, log: logger.With("handler", "candidates")}
}

type registerCandidateRequest struct {
	FullName   string  `json:"fullName"`
	NationalID string  `json:"nationalId"`
	BirthDate  string  `json:"birthDate"`
	Program    string  `json:"program"`
	Semester   int     `json:"semester"`
	Email      string  `json:"email"`
	PhotoURL   *string `json:"photoUrl,omitempty"`
}

type candidateResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Program   string    `json:"program"`
	Semester  int       `json:"semester"`
	Email     string    `json:"email"`
	PhotoURL  *string   `json:"photoUrl,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type candidateListResponse struct {
	Candidates []candidateResponse `json:"candidates"`
}

// List handles GET /candidates?status=ACTIVE&program=Systems&limit=50&offset=0.
// The status filter defaults to ACTIVE so retired candidates stay hidden
// unless asked for explicitly.
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.CandidateFilter{
		Status:  domain.StatusActive,
		Program: r.URL.Query().Get("program"),
	}
	if s := domain.ActivityStatus(r.URL.Query().Get("status")); s.IsValid() {
		filter.Status = s
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		json.Unmarshal([]byte(v), &filter.Limit) //nolint:errcheck
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		json.Unmarshal([]byte(v), &filter.Offset) //nolint:errcheck
	}

	candidates, err := h.svc.List(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := candidateListResponse{Candidates: make([]candidateResponse, len(candidates))}
	for i, c := range candidates {
		resp.Candidates[i] = toCandidateResponse(c)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /candidates/{id}.
func (h *CandidateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCandidateResponse(c))
}

// Register handles POST /candidates.
func (h *CandidateHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "birthDate must be YYYY-MM-DD")
		return
	}

	created, err := h.svc.Register(r.Context(), candidate.RegisterInput{
		FullName:   req.FullName,
		NationalID: req.NationalID,
		BirthDate:  birthDate,
		Program:    req.Program,
		Semester:   req.Semester,
		Email:      req.Email,
		PhotoURL:   req.PhotoURL,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCandidateResponse(created))
}

// Deactivate handles DELETE /candidates/{id}. The delete is logical; the
// row survives so historical votes stay attributable.
func (h *CandidateHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	if err := h.svc.Deactivate(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CandidateHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "administrator access required")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "candidate not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "candidate already registered")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toCandidateResponse(c *domain.Candidate) candidateResponse {
	return candidateResponse{
		ID:        c.ID.String(),
		FullName:  c.FullName,
		Program:   c.Program,
		Semester:  c.Semester,
		Email:     c.Email,
		PhotoURL:  c.PhotoURL,
		Status:    c.Status.String(),
		CreatedAt: c.CreatedAt,
	}
}
