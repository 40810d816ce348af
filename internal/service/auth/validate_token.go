package auth

import (
	"context"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

// ValidateToken decodes an access token into an Identity.
// Returns ErrUnauthorized on any token defect; details are not leaked.
func (s *Service) ValidateToken(_ context.Context, token string) (*Identity, error) {
	voterID, role, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	return &Identity{VoterID: voterID, Role: domain.Role(role)}, nil
}
