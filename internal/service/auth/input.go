package auth

import (
	"strings"

	"github.com/heartmarshall/reinafiec-backend/internal/domain"
)

// LoginInput carries sign-in credentials.
type LoginInput struct {
	Username string
	Password string
}

// Validate checks that credentials are present.
func (in LoginInput) Validate() error {
	var errs []domain.FieldError

	if in.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if in.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RegisterInput carries the fields for a new voter account.
type RegisterInput struct {
	Username string
	Password string
	FullName string
	Email    string
}

// Validate checks registration input shape. Uniqueness of username and email
// is enforced by DB constraints, not here.
func (in RegisterInput) Validate() error {
	var errs []domain.FieldError

	if in.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(in.Username) < 3 || len(in.Username) > 50 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "must be between 3 and 50 characters"})
	}
	if in.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(in.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	}
	if strings.TrimSpace(in.FullName) == "" {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "required"})
	}
	if in.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(in.Email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
