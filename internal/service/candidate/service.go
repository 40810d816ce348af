// Package candidate implements the administrative candidate workflows:
// registration, logical deactivation, and listing. Both mutations are
// administrator-only and leave an audit trail.
package candidate

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
	"github.com/heartmarshall/reinafiec-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type candidateRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Candidate, error)
	List(ctx context.Context, filter domain.CandidateFilter) ([]*domain.Candidate, error)
	Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error)
	Retire(ctx context.Context, id uuid.UUID) error
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

// Service implements candidate administration.
type Service struct {
	candidates candidateRepo
	audit      auditLogger
	tx         txManager
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new candidate service.
func NewService(logger *slog.Logger, candidates candidateRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		candidates: candidates,
		audit:      audit,
		tx:         tx,
		log:        logger.With("service", "candidate"),
		now:        time.Now,
	}
}

// adminFromCtx extracts the calling administrator's ID, or fails with
// ErrUnauthorized / ErrForbidden.
func adminFromCtx(ctx context.Context) (uuid.UUID, error) {
	callerID, ok := ctxutil.VoterIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if ctxutil.RoleFromCtx(ctx) != domain.RoleAdministrator.String() {
		return uuid.Nil, domain.ErrForbidden
	}
	return callerID, nil
}
