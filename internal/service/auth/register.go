package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

// Register creates a new active voter account with role VOTER.
// Returns ErrAlreadyExists if the username or email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Username and email uniqueness are enforced by DB constraints.
	newVoter := &domain.Voter{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Email:        input.Email,
		Role:         domain.RoleVoter,
		Status:       domain.StatusActive,
		CreatedAt:    s.now().UTC(),
	}

	voter, err := s.voters.Create(ctx, newVoter)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	accessToken, err := s.jwt.GenerateAccessToken(voter.ID, voter.Role.String())
	if err != nil {
		return nil, fmt.Errorf("auth.Register generate token: %w", err)
	}

	s.log.InfoContext(ctx, "voter registered",
		slog.String("voter_id", voter.ID.String()))

	return &AuthResult{AccessToken: accessToken, Voter: voter}, nil
}
