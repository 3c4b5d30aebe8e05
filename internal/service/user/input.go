package user

import (
	"net/mail"
	"strings"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

const maxEmailLength = 254

// CreateUserInput holds the parameters for registering an account.
type CreateUserInput struct {
	Email         string
	PreferredUnit *string
}

// Validate checks all fields and collects all errors.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	email := strings.TrimSpace(i.Email)
	switch {
	case email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > maxEmailLength:
		errs = append(errs, domain.FieldError{Field: "email", Message: "max 254 characters"})
	default:
		if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
		}
	}

	if i.PreferredUnit != nil {
		if _, err := domain.ParseTemperatureUnit(*i.PreferredUnit); err != nil {
			errs = append(errs, domain.FieldError{Field: "preferred_unit", Message: "must be fahrenheit or celsius"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSettingsInput holds the settings a user may change.
type UpdateSettingsInput struct {
	PreferredUnit string
}

// Validate checks all fields and collects all errors.
func (i UpdateSettingsInput) Validate() error {
	if _, err := domain.ParseTemperatureUnit(i.PreferredUnit); err != nil {
		return domain.NewValidationError("preferred_unit", "must be fahrenheit or celsius")
	}
	return nil
}
