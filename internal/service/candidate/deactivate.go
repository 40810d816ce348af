package candidate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

// Deactivate retires a candidate. Administrator only. The flip is logical:
// ledger rows for the candidate stay in place, the candidate just stops
// appearing in listings and tallies. Audited in the same transaction.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	adminID, err := adminFromCtx(ctx)
	if err != nil {
		return err
	}

	if id == uuid.Nil {
		return domain.NewValidationError("id", "is required")
	}

	candidate, err := s.candidates.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("candidate.Deactivate get: %w", err)
	}
	if !candidate.IsActive() {
		return fmt.Errorf("candidate %s already retired: %w", id, domain.ErrNotFound)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.candidates.Retire(txCtx, id); err != nil {
			return fmt.Errorf("retire candidate: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditEntry{
			ID:          uuid.New(),
			Action:      domain.AuditActionCandidateRetired,
			VoterID:     adminID,
			CandidateID: id,
			Details: map[string]any{
				"candidate": candidate.FullName,
			},
			CreatedAt: s.now().UTC(),
		})
		if auditErr != nil {
			return fmt.Errorf("audit candidate deactivation: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("candidate.Deactivate: %w", err)
	}

	s.log.InfoContext(ctx, "candidate deactivated",
		slog.String("candidate_id", id.String()),
		slog.String("deactivated_by", adminID.String()),
	)

	return nil
}
