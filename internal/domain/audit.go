package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry is one append-only record of the forensic audit trail. The
// tally never reads it; it exists for compliance review only.
type AuditEntry struct {
	ID          uuid.UUID
	VoteID      *uuid.UUID
	Action      AuditAction
	VoterID     uuid.UUID
	CandidateID uuid.UUID
	Category    Category
	Details     map[string]any
	OriginIP    *string
	CreatedAt   time.Time
}
