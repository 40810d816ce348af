package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

// Login authenticates an account with username + password.
// Returns ErrUnauthorized if the username is not found or the password is
// wrong, and ErrForbidden for retired accounts.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	voter, err := s.voters.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get voter: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(voter.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	if !voter.IsActive() {
		return nil, fmt.Errorf("account is deactivated: %w", domain.ErrForbidden)
	}

	now := s.now().UTC()
	if err := s.voters.UpdateLastLogin(ctx, voter.ID, now); err != nil {
		return nil, fmt.Errorf("auth.Login update last login: %w", err)
	}
	voter.LastLoginAt = &now

	accessToken, err := s.jwt.GenerateAccessToken(voter.ID, voter.Role.String())
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "voter logged in",
		slog.String("voter_id", voter.ID.String()))

	return &AuthResult{AccessToken: accessToken, Voter: voter}, nil
}
