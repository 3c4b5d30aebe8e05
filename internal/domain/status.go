package domain

import "fmt"

// Success rating bounds for a finished batch.
const (
	MinSuccessRating = 1
	MaxSuccessRating = 5
)

// ValidateStatusTransition is the single place that decides whether a batch
// may move from one status to another through a generic update.
//
// Every valid status may currently move to every other valid status,
// including completed or failed back to active. FinishBatch is the only
// operation that stamps the actual end date.
func ValidateStatusTransition(from, to BatchStatus) error {
	if !to.IsValid() {
		return NewValidationError("status", fmt.Sprintf("unknown status %q", to))
	}
	if !from.IsValid() {
		return NewValidationError("status", fmt.Sprintf("current status %q is invalid", from))
	}
	return nil
}

// ValidateSuccessRating checks a rating given when finishing a batch.
func ValidateSuccessRating(rating int) error {
	if rating < MinSuccessRating || rating > MaxSuccessRating {
		return NewValidationError("success_rating",
			fmt.Sprintf("must be between %d and %d", MinSuccessRating, MaxSuccessRating))
	}
	return nil
}
