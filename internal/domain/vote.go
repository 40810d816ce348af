package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote is one immutable row of the vote ledger. At most one vote may exist
// per (VoterID, Category); the storage layer enforces this with a unique
// index, not application logic.
type Vote struct {
	ID          uuid.UUID
	VoterID     uuid.UUID
	CandidateID uuid.UUID
	Category    Category
	CastAt      time.Time
	OriginIP    *string
	UserAgent   *string
}

// CandidateCount is the per-candidate raw count for one category as read
// from the ledger. Candidates without votes appear with Votes == 0.
type CandidateCount struct {
	CandidateID uuid.UUID
	FullName    string
	Program     string
	PhotoURL    *string
	Votes       int
}

// TallyRow is one row of the derived ranked tally for a category. Rank uses
// competition ranking: tied counts share a rank and the next distinct count
// resumes at 1 + rows strictly ahead. Every rank-1 row carries Winner=true;
// exact ties are not broken.
type TallyRow struct {
	CandidateID uuid.UUID
	FullName    string
	Program     string
	PhotoURL    *string
	Votes       int
	Rank        int
	Share       float64
	Winner      bool
}

// CategoryStats aggregates one category for the statistics summary.
type CategoryStats struct {
	Votes         int
	Participation float64
	Winner        *TallyRow
}

// Statistics is the cross-category aggregate summary.
type Statistics struct {
	ActiveCandidates int
	Queen            CategoryStats
	Photogenic       CategoryStats
}
