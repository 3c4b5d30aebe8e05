package profile

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

const (
	maxNameLength        = 100
	maxTypeLength        = 50
	maxDescriptionLength = 2000
)

// CreateProfileInput holds a new profile definition. Temperatures are read in
// Unit (default fahrenheit) and stored in Fahrenheit.
type CreateProfileInput struct {
	Name        string
	Type        string
	MinDays     int
	MaxDays     int
	TempMin     float64
	TempMax     float64
	Unit        *string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateProfileInput) Validate() error {
	var errs []domain.FieldError

	errs = appendNameErrors(errs, "name", i.Name)

	typ := strings.TrimSpace(i.Type)
	if typ == "" {
		errs = append(errs, domain.FieldError{Field: "type", Message: "required"})
	} else if utf8.RuneCountInString(typ) > maxTypeLength {
		errs = append(errs, domain.FieldError{Field: "type", Message: fmt.Sprintf("max %d characters", maxTypeLength)})
	}

	if i.MinDays <= 0 || i.MaxDays <= 0 {
		errs = append(errs, domain.FieldError{Field: "days", Message: "min_days and max_days must be positive"})
	} else if i.MinDays > i.MaxDays {
		errs = append(errs, domain.FieldError{Field: "days", Message: "min_days must not exceed max_days"})
	}

	if !isFinite(i.TempMin) || !isFinite(i.TempMax) {
		errs = append(errs, domain.FieldError{Field: "temperature", Message: "temperatures must be finite numbers"})
	} else if i.TempMin >= i.TempMax {
		errs = append(errs, domain.FieldError{Field: "temperature", Message: "temp_min must be below temp_max"})
	}
	if i.Unit != nil {
		if _, err := domain.ParseTemperatureUnit(*i.Unit); err != nil {
			errs = append(errs, domain.FieldError{Field: "unit", Message: "must be fahrenheit or celsius"})
		}
	}

	if i.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Description)) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", maxDescriptionLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CopyProfileInput names the profile to duplicate and the copy's name.
type CopyProfileInput struct {
	SourceID int64
	NewName  string
}

// Validate checks all fields and collects all errors.
func (i CopyProfileInput) Validate() error {
	var errs []domain.FieldError
	if i.SourceID <= 0 {
		errs = append(errs, domain.FieldError{Field: "source_id", Message: "required"})
	}
	errs = appendNameErrors(errs, "new_name", i.NewName)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendNameErrors(errs []domain.FieldError, field, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", maxNameLength)})
	}
	return errs
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
