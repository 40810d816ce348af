// Package voting implements the vote casting core: the eligibility guard
// and the atomic vote commit protocol.
package voting

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type voterRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Voter, error)
	MarkVoted(ctx context.Context, voterID uuid.UUID, category domain.Category, at time.Time) error
}

type candidateRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error)
}

type voteRepo interface {
	Create(ctx context.Context, v *domain.Vote) (*domain.Vote, error)
	GetByVoterAndCategory(ctx context.Context, voterID uuid.UUID, category domain.Category) (*domain.Vote, error)
}

type auditLogger interface {
	Log(ctx context.Context, entry domain.AuditEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the voting business logic.
type Service struct {
	voters     voterRepo
	candidates candidateRepo
	votes      voteRepo
	audit      auditLogger
	tx         txManager
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new voting service.
func NewService(
	logger *slog.Logger,
	voters voterRepo,
	candidates candidateRepo,
	votes voteRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		voters:     voters,
		candidates: candidates,
		votes:      votes,
		audit:      audit,
		tx:         tx,
		log:        logger.With("service", "voting"),
		now:        time.Now,
	}
}
