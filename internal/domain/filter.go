package domain

import "github.com/google/uuid"

// CandidateFilter narrows a candidate listing. Zero values mean "no filter".
type CandidateFilter struct {
	Status  ActivityStatus
	Program string
	Limit   int
	Offset  int
}

// AuditFilter narrows an audit trail listing. Zero values mean "no filter".
type AuditFilter struct {
	VoterID  uuid.UUID
	Category Category
	Action   AuditAction
	Limit    int
	Offset   int
}
