package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Candidate represents a registered election candidate. Profile fields come
// from the administrative registration workflow; only ID and Status matter
// to the vote path.
type Candidate struct {
	ID           uuid.UUID
	FullName     string
	NationalID   string
	BirthDate    time.Time
	Program      string
	Semester     int
	Email        string
	PhotoURL     *string
	Status       ActivityStatus
	RegisteredBy uuid.UUID
	CreatedAt    time.Time
}

// IsActive reports whether the candidate may receive votes.
func (c *Candidate) IsActive() bool {
	return c.Status == StatusActive
}

// Age returns the candidate's age in whole years at the given date.
func (c *Candidate) Age(at time.Time) int {
	age := at.Year() - c.BirthDate.Year()
	anniversary := c.BirthDate.AddDate(age, 0, 0)
	if anniversary.After(at) {
		age--
	}
	return age
}

// Validate checks registration rules. Returns a *ValidationError listing
// every violated field, or nil if the candidate is valid.
func (c *Candidate) Validate(now time.Time) error {
	var errs []FieldError

	if strings.TrimSpace(c.FullName) == "" {
		errs = append(errs, FieldError{Field: "full_name", Message: "is required"})
	}
	if !isNationalID(c.NationalID) {
		errs = append(errs, FieldError{Field: "national_id", Message: "must be 10 digits"})
	}
	if age := c.Age(now); age < 17 || age > 25 {
		errs = append(errs, FieldError{Field: "birth_date", Message: "age must be between 17 and 25"})
	}
	if c.Semester < 1 || c.Semester > 12 {
		errs = append(errs, FieldError{Field: "semester", Message: "must be between 1 and 12"})
	}
	if !strings.Contains(c.Email, "@") {
		errs = append(errs, FieldError{Field: "email", Message: "is not valid"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

func isNationalID(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
