package domain

import (
	"time"

	"github.com/google/uuid"
)

// CategoryVote is the denormalized per-category voting state kept on the
// voter row. It is a cache of the vote ledger, maintained only inside the
// vote commit transaction. The ledger is the source of truth.
type CategoryVote struct {
	HasVoted bool
	VotedAt  *time.Time
}

// Voter represents an account eligible to sign in: either a voting account
// (role VOTER) or an administrative one.
type Voter struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	FullName     string
	Email        string
	Role         Role
	Status       ActivityStatus
	Queen        CategoryVote
	Photogenic   CategoryVote
	LastLoginAt  *time.Time
	CreatedAt    time.Time
}

// IsActive reports whether the account may sign in and act.
func (v *Voter) IsActive() bool {
	return v.Status == StatusActive
}

// VoteState returns the cached per-category voting state.
func (v *Voter) VoteState(c Category) CategoryVote {
	if c == CategoryPhotogenic {
		return v.Photogenic
	}
	return v.Queen
}
