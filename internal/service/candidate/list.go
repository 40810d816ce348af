package candidate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

const maxPageSize = 100

// List returns candidates matching the filter. Unauthenticated callers may
// list; only active candidates are visible unless the caller asks otherwise.
func (s *Service) List(ctx context.Context, filter domain.CandidateFilter) ([]*domain.Candidate, error) {
	if filter.Limit <= 0 || filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	candidates, err := s.candidates.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("candidate.List: %w", err)
	}

	return candidates, nil
}

// Get returns a single candidate by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Candidate, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "is required")
	}

	candidate, err := s.candidates.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("candidate.Get: %w", err)
	}

	return candidate, nil
}
