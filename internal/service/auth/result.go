package auth

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

// AuthResult is returned by Login and Register.
type AuthResult struct {
	AccessToken string
	Voter       *domain.Voter
}

// Identity is the decoded access token payload.
type Identity struct {
	VoterID uuid.UUID
	Role    domain.Role
}
