// Package tally implements the read-side tally engine: ranked results,
// winner derivation, and cross-category statistics. Everything here is
// computed on demand from the vote ledger; nothing is ever mutated.
package tally

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type voteRepo interface {
	CountByCandidate(ctx context.Context, category domain.Category) ([]domain.CandidateCount, error)
	CountByCategory(ctx context.Context, category domain.Category) (int, error)
}

type candidateRepo interface {
	CountActive(ctx context.Context) (int, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the tally read model.
type Service struct {
	votes      voteRepo
	candidates candidateRepo
	log        *slog.Logger
}

// NewService creates a new tally service.
func NewService(logger *slog.Logger, votes voteRepo, candidates candidateRepo) *Service {
	return &Service{
		votes:      votes,
		candidates: candidates,
		log:        logger.With("service", "tally"),
	}
}
