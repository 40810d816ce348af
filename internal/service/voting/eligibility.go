package voting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
	"github.com/heartmarshall/reinafiec-backend/pkg/ctxutil"
)

// DenialReason classifies why a vote attempt would be refused.
type DenialReason string

const (
	DenialNotAuthenticated DenialReason = "NOT_AUTHENTICATED"
	DenialNotVoter         DenialReason = "NOT_A_VOTER"
	DenialAccountRetired   DenialReason = "ACCOUNT_RETIRED"
	DenialAlreadyVoted     DenialReason = "ALREADY_VOTED"
)

// Message returns the user-facing denial text.
func (r DenialReason) Message() string {
	switch r {
	case DenialNotAuthenticated:
		return "you must sign in to vote"
	case DenialNotVoter:
		return "only voters may vote"
	case DenialAccountRetired:
		return "this account has been deactivated"
	case DenialAlreadyVoted:
		return "you have already voted in this category"
	}
	return ""
}

// Eligibility is the outcome of the pre-vote check. A denial is a normal
// result, not an error. VotedAt is set only for ALREADY_VOTED denials.
type Eligibility struct {
	Eligible bool
	Reason   DenialReason
	VotedAt  *time.Time
}

func permit() Eligibility {
	return Eligibility{Eligible: true}
}

func deny(reason DenialReason) Eligibility {
	return Eligibility{Reason: reason}
}

// CheckEligibility decides whether the calling account may vote in the given
// category. This is a fast, read-only check against the registry cache; the
// same predicates are re-verified transactionally inside CastVote, so a
// permit here is advisory, never authoritative.
//
// Denial order is fixed: not signed in, wrong role, retired account,
// already voted (with the recorded timestamp attached).
func (s *Service) CheckEligibility(ctx context.Context, category domain.Category) (Eligibility, error) {
	if !category.IsValid() {
		return Eligibility{}, domain.NewValidationError("category", "is required")
	}

	voterID, ok := ctxutil.VoterIDFromCtx(ctx)
	if !ok {
		return deny(DenialNotAuthenticated), nil
	}

	voter, err := s.voters.GetByID(ctx, voterID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return deny(DenialNotAuthenticated), nil
		}
		return Eligibility{}, fmt.Errorf("get voter: %w", err)
	}

	return s.checkVoter(voter, category), nil
}

// checkVoter applies the eligibility predicates to an already-loaded voter.
func (s *Service) checkVoter(voter *domain.Voter, category domain.Category) Eligibility {
	if voter.Role != domain.RoleVoter {
		return deny(DenialNotVoter)
	}
	if !voter.IsActive() {
		return deny(DenialAccountRetired)
	}
	if state := voter.VoteState(category); state.HasVoted {
		e := deny(DenialAlreadyVoted)
		e.VotedAt = state.VotedAt
		return e
	}
	return permit()
}
