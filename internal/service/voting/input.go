package voting

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

// CastVoteInput carries the parameters of one vote attempt. OriginIP and
// UserAgent come from the presentation layer and end up on the ledger row
// and the audit entry.
type CastVoteInput struct {
	CandidateID uuid.UUID
	Category    domain.Category
	OriginIP    string
	UserAgent   string
}

// Validate checks input shape. Eligibility is not checked here.
func (in CastVoteInput) Validate() error {
	var errs []domain.FieldError

	if in.CandidateID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "candidate_id", Message: "is required"})
	}
	if !in.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "is required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (in CastVoteInput) originIP() *string {
	if in.OriginIP == "" {
		return nil
	}
	ip := in.OriginIP
	return &ip
}

func (in CastVoteInput) userAgent() *string {
	if in.UserAgent == "" {
		return nil
	}
	ua := in.UserAgent
	return &ua
}
