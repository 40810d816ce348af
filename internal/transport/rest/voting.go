package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
	"github.com/heartmarshall/reinafiec-backend/internal/service/voting"
)

// votingService defines the minimal interface needed by VotingHandler.
type votingService interface {
	CheckEligibility(ctx context.Context, category domain.Category) (voting.Eligibility, error)
	CastVote(ctx context.Context, input voting.CastVoteInput) (*domain.Vote, error)
}

// VotingHandler serves the eligibility check and the vote commit endpoint.
type VotingHandler struct {
	svc votingService
	log *slog.Logger
}

// NewVotingHandler creates a VotingHandler.
func NewVotingHandler(svc votingService, logger *slog.Logger) *VotingHandler {
	return &VotingHandler{svc: svc, log: logger.With("handler", "voting")}
}

type castVoteRequest struct {
	CandidateID string `json:"candidateId"`
	Category    string `json:"category"`
}

type voteResponse struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidateId"`
	Category    string    `json:"category"`
	CastAt      time.Time `json:"castAt"`
}

type eligibilityResponse struct {
	Eligible bool       `json:"eligible"`
	Reason   string     `json:"reason,omitempty"`
	Message  string     `json:"message,omitempty"`
	VotedAt  *time.Time `json:"votedAt,omitempty"`
}

// Eligibility handles GET /eligibility?category=QUEEN.
// A denial is a normal 200 response with eligible=false, not an error.
func (h *VotingHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(r.URL.Query().Get("category"))

	elig, err := h.svc.CheckEligibility(r.Context(), category)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEligibilityResponse(elig))
}

// CastVote handles POST /votes.
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req castVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	vote, err := h.svc.CastVote(r.Context(), voting.CastVoteInput{
		CandidateID: candidateID,
		Category:    domain.Category(req.Category),
		OriginIP:    clientIP(r),
		UserAgent:   r.UserAgent(),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, voteResponse{
		ID:          vote.ID.String(),
		CandidateID: vote.CandidateID.String(),
		Category:    vote.Category.String(),
		CastAt:      vote.CastAt,
	})
}

func (h *VotingHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var alreadyVoted *domain.AlreadyVotedError
	if errors.As(err, &alreadyVoted) {
		body := map[string]any{
			"error":    "you have already voted in this category",
			"category": alreadyVoted.Category.String(),
		}
		if !alreadyVoted.VotedAt.IsZero() {
			body["votedAt"] = alreadyVoted.VotedAt
		}
		writeJSON(w, http.StatusConflict, body)
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "candidate not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toEligibilityResponse(elig voting.Eligibility) eligibilityResponse {
	resp := eligibilityResponse{Eligible: elig.Eligible}
	if !elig.Eligible {
		resp.Reason = string(elig.Reason)
		resp.Message = elig.Reason.Message()
		resp.VotedAt = elig.VotedAt
	}
	return resp
}

// clientIP prefers the first X-Forwarded-For hop, falling back to the
// connection's remote address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
