// Package auth implements account sign-in and registration for the election.
// Token issuance is delegated to the JWT manager; this package owns the
// credential checks and the account lifecycle rules around sign-in.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/reinafiec-backend/internal/config"
	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

// voterRepo defines the voter repository interface needed by auth service.
type voterRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Voter, error)
	GetByUsername(ctx context.Context, username string) (*domain.Voter, error)
	Create(ctx context.Context, v *domain.Voter) (*domain.Voter, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(voterID uuid.UUID, role string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// Service implements auth operations.
type Service struct {
	log    *slog.Logger
	voters voterRepo
	jwt    jwtManager
	cfg    config.AuthConfig
	now    func() time.Time
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, voters voterRepo, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		voters: voters,
		jwt:    jwt,
		cfg:    cfg,
		now:    time.Now,
	}
}
