package domain

import "fmt"

// Category identifies one of the two independent voting tracks.
// A voter may cast at most one vote per category.
type Category string

const (
	CategoryQueen      Category = "QUEEN"
	CategoryPhotogenic Category = "PHOTOGENIC"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryQueen, CategoryPhotogenic:
		return true
	}
	return false
}

// DisplayName returns the human-facing category label used in messages.
func (c Category) DisplayName() string {
	switch c {
	case CategoryQueen:
		return "Queen"
	case CategoryPhotogenic:
		return "Photogenic"
	}
	return string(c)
}

// Categories returns all voting categories in a fixed order.
func Categories() []Category {
	return []Category{CategoryQueen, CategoryPhotogenic}
}

// ParseCategory converts a raw string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: unknown category %q", ErrValidation, s)
	}
	return c, nil
}

// Role distinguishes voting accounts from administrative ones.
// Administrators manage candidates and cannot cast votes.
type Role string

const (
	RoleVoter         Role = "VOTER"
	RoleAdministrator Role = "ADMINISTRATOR"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleVoter, RoleAdministrator:
		return true
	}
	return false
}

// ActivityStatus is the two-state lifecycle tag shared by voters and
// candidates. RETIRED is terminal: the row is hidden from listings and
// eligibility but never deleted, so historical votes stay attributable.
type ActivityStatus string

const (
	StatusActive  ActivityStatus = "ACTIVE"
	StatusRetired ActivityStatus = "RETIRED"
)

func (s ActivityStatus) String() string { return string(s) }

func (s ActivityStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusRetired:
		return true
	}
	return false
}

// AuditAction identifies the kind of event recorded in the audit trail.
type AuditAction string

const (
	AuditActionVoteCast         AuditAction = "VOTE_CAST"
	AuditActionCandidateCreated AuditAction = "CANDIDATE_CREATED"
	AuditActionCandidateRetired AuditAction = "CANDIDATE_RETIRED"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionVoteCast, AuditActionCandidateCreated, AuditActionCandidateRetired:
		return true
	}
	return false
}
