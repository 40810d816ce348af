package candidate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

// RegisterInput carries the fields for a new candidate.
type RegisterInput struct {
	FullName   string
	NationalID string
	BirthDate  time.Time
	Program    string
	Semester   int
	Email      string
	PhotoURL   *string
}

// Register creates an active candidate. Administrator only. The profile is
// validated against the pageant rules and the insert is audited in the same
// transaction. A duplicate national id surfaces as ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Candidate, error) {
	adminID, err := adminFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()

	candidate := &domain.Candidate{
		ID:           uuid.New(),
		FullName:     strings.TrimSpace(input.FullName),
		NationalID:   strings.TrimSpace(input.NationalID),
		BirthDate:    input.BirthDate,
		Program:      strings.TrimSpace(input.Program),
		Semester:     input.Semester,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PhotoURL:     input.PhotoURL,
		Status:       domain.StatusActive,
		RegisteredBy: adminID,
		CreatedAt:    now,
	}

	if err := candidate.Validate(now); err != nil {
		return nil, err
	}

	var created *domain.Candidate

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.candidates.Create(txCtx, candidate)
		if createErr != nil {
			return fmt.Errorf("create candidate: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditEntry{
			ID:          uuid.New(),
			Action:      domain.AuditActionCandidateCreated,
			VoterID:     adminID,
			CandidateID: created.ID,
			Details: map[string]any{
				"candidate":   created.FullName,
				"national_id": created.NationalID,
			},
			CreatedAt: now,
		})
		if auditErr != nil {
			return fmt.Errorf("audit candidate registration: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("candidate.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("candidate.Register: %w", err)
	}

	s.log.InfoContext(ctx, "candidate registered",
		slog.String("candidate_id", created.ID.String()),
		slog.String("registered_by", adminID.String()),
	)

	return created, nil
}
