package batch

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

const (
	maxTextLength    = 10000
	maxCaptionLength = 500
	msgTimestamp     = "must be an RFC 3339 timestamp"
)

// CreateBatchInput holds the parameters for starting a batch.
type CreateBatchInput struct {
	ProfileID     int64
	Name          string
	StartDate     string
	TargetEndDate *string
	Notes         *string
	Ingredients   *string

	// SuggestTargetEnd fills a missing target end date from the profile's
	// maximum duration.
	SuggestTargetEnd bool
}

// Validate checks all fields and collects all errors.
func (i CreateBatchInput) Validate() error {
	var errs []domain.FieldError

	if i.ProfileID <= 0 {
		errs = append(errs, domain.FieldError{Field: "profile_id", Message: "required"})
	}
	errs = appendNameErrors(errs, i.Name)

	start, startErr := parseTimestamp(i.StartDate)
	if startErr != nil {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: msgTimestamp})
	}
	if i.TargetEndDate != nil {
		target, err := parseTimestamp(*i.TargetEndDate)
		switch {
		case err != nil:
			errs = append(errs, domain.FieldError{Field: "target_end_date", Message: msgTimestamp})
		case startErr == nil && target.Before(start):
			errs = append(errs, domain.FieldError{Field: "target_end_date", Message: "must not be before start_date"})
		}
	}
	errs = appendTextErrors(errs, "notes", i.Notes)
	errs = appendTextErrors(errs, "ingredients", i.Ingredients)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateBatchInput holds a partial batch update. Nil fields are left as is.
type UpdateBatchInput struct {
	BatchID       int64
	ProfileID     *int64
	Name          *string
	StartDate     *string
	TargetEndDate *string
	Status        *string
	Notes         *string
	Ingredients   *string
}

// Validate checks all fields and collects all errors.
func (i UpdateBatchInput) Validate() error {
	var errs []domain.FieldError

	if i.BatchID <= 0 {
		errs = append(errs, domain.FieldError{Field: "batch_id", Message: "required"})
	}
	if i.ProfileID != nil && *i.ProfileID <= 0 {
		errs = append(errs, domain.FieldError{Field: "profile_id", Message: "must be positive"})
	}
	if i.Name != nil {
		errs = appendNameErrors(errs, *i.Name)
	}
	if i.StartDate != nil {
		if _, err := parseTimestamp(*i.StartDate); err != nil {
			errs = append(errs, domain.FieldError{Field: "start_date", Message: msgTimestamp})
		}
	}
	if i.TargetEndDate != nil {
		if _, err := parseTimestamp(*i.TargetEndDate); err != nil {
			errs = append(errs, domain.FieldError{Field: "target_end_date", Message: msgTimestamp})
		}
	}
	if i.Status != nil {
		if _, err := domain.ParseBatchStatus(*i.Status); err != nil {
			errs = append(errs, domain.FieldError{Field: "status", Message: fmt.Sprintf("unknown status %q", *i.Status)})
		}
	}
	errs = appendTextErrors(errs, "notes", i.Notes)
	errs = appendTextErrors(errs, "ingredients", i.Ingredients)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// FinishBatchInput holds the parameters for completing a batch.
type FinishBatchInput struct {
	BatchID             int64
	SuccessRating       *int
	LessonsLearned      *string
	InitialTasteProfile *string
}

// Validate checks all fields and collects all errors.
func (i FinishBatchInput) Validate() error {
	var errs []domain.FieldError

	if i.BatchID <= 0 {
		errs = append(errs, domain.FieldError{Field: "batch_id", Message: "required"})
	}
	if i.SuccessRating != nil {
		var ve *domain.ValidationError
		if errors.As(domain.ValidateSuccessRating(*i.SuccessRating), &ve) {
			errs = append(errs, ve.Errors...)
		}
	}
	errs = appendTextErrors(errs, "lessons_learned", i.LessonsLearned)
	errs = appendTextErrors(errs, "initial_taste_profile", i.InitialTasteProfile)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetBatchInput selects a batch and, optionally, the unit to show readings in.
type GetBatchInput struct {
	BatchID     int64
	DisplayUnit *string
}

// Validate checks all fields and collects all errors.
func (i GetBatchInput) Validate() error {
	var errs []domain.FieldError
	if i.BatchID <= 0 {
		errs = append(errs, domain.FieldError{Field: "batch_id", Message: "required"})
	}
	errs = appendUnitErrors(errs, i.DisplayUnit)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LogTemperatureInput holds a temperature reading as the user entered it.
// Unit defaults to the user's preferred unit, RecordedAt to now.
type LogTemperatureInput struct {
	BatchID    int64
	Value      float64
	Unit       *string
	RecordedAt *string
	Notes      *string
}

// Validate checks all fields and collects all errors.
// Range checks happen after conversion to Fahrenheit.
func (i LogTemperatureInput) Validate() error {
	var errs []domain.FieldError

	if i.BatchID <= 0 {
		errs = append(errs, domain.FieldError{Field: "batch_id", Message: "required"})
	}
	errs = appendUnitErrors(errs, i.Unit)
	if i.RecordedAt != nil {
		if _, err := parseTimestamp(*i.RecordedAt); err != nil {
			errs = append(errs, domain.FieldError{Field: "recorded_at", Message: msgTimestamp})
		}
	}
	errs = appendTextErrors(errs, "notes", i.Notes)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddPhotoInput describes an already stored photo. FilePath is relative to
// the uploads directory.
type AddPhotoInput struct {
	BatchID  int64
	FilePath string
	Caption  *string
	TakenAt  *string
	Stage    *string
}

// Validate checks all fields and collects all errors.
func (i AddPhotoInput) Validate() error {
	var errs []domain.FieldError

	if i.BatchID <= 0 {
		errs = append(errs, domain.FieldError{Field: "batch_id", Message: "required"})
	}
	if _, err := cleanUploadPath(i.FilePath); err != nil {
		errs = append(errs, domain.FieldError{Field: "file_path", Message: err.Error()})
	}
	if i.Caption != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Caption)) > maxCaptionLength {
		errs = append(errs, domain.FieldError{Field: "caption", Message: fmt.Sprintf("max %d characters", maxCaptionLength)})
	}
	if i.TakenAt != nil {
		if _, err := parseTimestamp(*i.TakenAt); err != nil {
			errs = append(errs, domain.FieldError{Field: "taken_at", Message: msgTimestamp})
		}
	}
	if i.Stage != nil {
		if _, err := domain.ParsePhotoStage(*i.Stage); err != nil {
			errs = append(errs, domain.FieldError{Field: "stage", Message: "must be start, progress or end"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddTastingInput holds a tasting note for a batch.
type AddTastingInput struct {
	BatchID  int64
	Notes    string
	TastedAt *string
}

// Validate checks all fields and collects all errors.
func (i AddTastingInput) Validate() error {
	var errs []domain.FieldError

	if i.BatchID <= 0 {
		errs = append(errs, domain.FieldError{Field: "batch_id", Message: "required"})
	}
	notes := strings.TrimSpace(i.Notes)
	if notes == "" {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "required"})
	}
	errs = appendTextErrors(errs, "notes", &notes)
	if i.TastedAt != nil {
		if _, err := parseTimestamp(*i.TastedAt); err != nil {
			errs = append(errs, domain.FieldError{Field: "tasted_at", Message: msgTimestamp})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendNameErrors(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > domain.MaxBatchNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", domain.MaxBatchNameLength)})
	}
	return errs
}

func appendTextErrors(errs []domain.FieldError, field string, s *string) []domain.FieldError {
	if s != nil && utf8.RuneCountInString(strings.TrimSpace(*s)) > maxTextLength {
		return append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", maxTextLength)})
	}
	return errs
}

func appendUnitErrors(errs []domain.FieldError, unit *string) []domain.FieldError {
	if unit == nil {
		return errs
	}
	if _, err := domain.ParseTemperatureUnit(*unit); err != nil {
		return append(errs, domain.FieldError{Field: "unit", Message: "must be fahrenheit or celsius"})
	}
	return errs
}

// cleanUploadPath normalizes a photo path and rejects anything that would
// resolve outside the uploads directory.
func cleanUploadPath(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("required")
	}
	if filepath.IsAbs(raw) || strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, `\`) {
		return "", errors.New("must be relative to the uploads directory")
	}
	clean := filepath.Clean(filepath.FromSlash(raw))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", errors.New("must stay inside the uploads directory")
	}
	return filepath.ToSlash(clean), nil
}
