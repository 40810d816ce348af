package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
	"github.com/heartmarshall/reinafiec-backend/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type authResponse struct {
	AccessToken string        `json:"accessToken"`
	Voter       voterResponse `json:"voter"`
}

type voterResponse struct {
	ID       string            `json:"id"`
	Username string            `json:"username"`
	FullName string            `json:"fullName"`
	Email    string            `json:"email"`
	Role     string            `json:"role"`
	Votes    voteStateResponse `json:"votes"`
}

type voteStateResponse struct {
	Queen      categoryVoteResponse `json:"queen"`
	Photogenic categoryVoteResponse `json:"photogenic"`
}

type categoryVoteResponse struct {
	HasVoted bool       `json:"hasVoted"`
	VotedAt  *time.Time `json:"votedAt,omitempty"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

func (h *AuthHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "account is deactivated")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "username already taken")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		AccessToken: result.AccessToken,
		Voter:       toVoterResponse(result.Voter),
	}
}

func toVoterResponse(v *domain.Voter) voterResponse {
	return voterResponse{
		ID:       v.ID.String(),
		Username: v.Username,
		FullName: v.FullName,
		Email:    v.Email,
		Role:     v.Role.String(),
		Votes: voteStateResponse{
			Queen:      toCategoryVoteResponse(v.Queen),
			Photogenic: toCategoryVoteResponse(v.Photogenic),
		},
	}
}

func toCategoryVoteResponse(cv domain.CategoryVote) categoryVoteResponse {
	return categoryVoteResponse{HasVoted: cv.HasVoted, VotedAt: cv.VotedAt}
}
