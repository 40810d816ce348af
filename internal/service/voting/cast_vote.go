package voting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
	"github.com/heartmarshall/reinafiec-backend/pkg/ctxutil"
)

// CastVote commits one vote for the calling account. Eligibility is
// re-verified here regardless of any earlier CheckEligibility call, and the
// ledger insert, registry flag update and audit append happen inside a
// single transaction. A concurrent duplicate for the same
// (voter, category) loses the race on the ledger's unique index and gets
// *domain.AlreadyVotedError; no partial state survives a rejection.
func (s *Service) CastVote(ctx context.Context, input CastVoteInput) (*domain.Vote, error) {
	voterID, ok := ctxutil.VoterIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	voter, err := s.voters.GetByID(ctx, voterID)
	if err != nil {
		return nil, fmt.Errorf("get voter: %w", err)
	}

	if elig := s.checkVoter(voter, input.Category); !elig.Eligible {
		return nil, s.denialError(ctx, voterID, input.Category, elig)
	}

	candidate, err := s.candidates.GetByID(ctx, input.CandidateID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("candidate %s: %w", input.CandidateID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	if !candidate.IsActive() {
		return nil, domain.NewValidationError("candidate_id", "candidate is not valid")
	}

	now := s.now().UTC()

	vote := &domain.Vote{
		ID:          uuid.New(),
		VoterID:     voter.ID,
		CandidateID: candidate.ID,
		Category:    input.Category,
		CastAt:      now,
		OriginIP:    input.originIP(),
		UserAgent:   input.userAgent(),
	}

	var committed *domain.Vote

	// Transaction: ledger insert + registry flag + audit append.
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		committed, createErr = s.votes.Create(txCtx, vote)
		if createErr != nil {
			return fmt.Errorf("insert vote: %w", createErr)
		}

		if markErr := s.voters.MarkVoted(txCtx, voter.ID, input.Category, now); markErr != nil {
			return fmt.Errorf("mark voter: %w", markErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditEntry{
			ID:          uuid.New(),
			VoteID:      &committed.ID,
			Action:      domain.AuditActionVoteCast,
			VoterID:     voter.ID,
			CandidateID: candidate.ID,
			Category:    input.Category,
			Details: map[string]any{
				"voter":     voter.FullName,
				"candidate": candidate.FullName,
			},
			OriginIP:  input.originIP(),
			CreatedAt: now,
		})
		if auditErr != nil {
			return fmt.Errorf("audit vote: %w", auditErr)
		}

		return nil
	})

	if err != nil {
		// The unique index on (voter_id, category) resolved a concurrent
		// duplicate against us. Report it as an ordinary duplicate denial.
		if errors.Is(err, domain.ErrAlreadyExists) || errors.Is(err, domain.ErrAlreadyVoted) {
			return nil, s.duplicateError(ctx, voter.ID, input.Category)
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "vote cast",
		slog.String("voter_id", voter.ID.String()),
		slog.String("candidate_id", candidate.ID.String()),
		slog.String("category", input.Category.String()),
	)

	return committed, nil
}

// denialError converts an eligibility denial into the matching typed error.
func (s *Service) denialError(ctx context.Context, voterID uuid.UUID, category domain.Category, elig Eligibility) error {
	switch elig.Reason {
	case DenialAlreadyVoted:
		return s.duplicateError(ctx, voterID, category)
	case DenialNotVoter, DenialAccountRetired:
		return fmt.Errorf("%s: %w", elig.Reason.Message(), domain.ErrForbidden)
	default:
		return domain.ErrUnauthorized
	}
}

// duplicateError builds an *AlreadyVotedError carrying the original vote's
// timestamp, read back from the ledger.
func (s *Service) duplicateError(ctx context.Context, voterID uuid.UUID, category domain.Category) error {
	existing, err := s.votes.GetByVoterAndCategory(ctx, voterID, category)
	if err != nil {
		// Ledger row not readable; report the duplicate without a timestamp.
		return &domain.AlreadyVotedError{Category: category}
	}
	return &domain.AlreadyVotedError{Category: category, VotedAt: existing.CastAt}
}
