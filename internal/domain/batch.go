package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxBatchNameLength is the longest batch name accepted, in characters.
const MaxBatchNameLength = 255

// Batch is one fermentation run owned by a single user.
type Batch struct {
	ID             int64
	OwnerID        uuid.UUID
	ProfileID      int64
	Name           string
	StartDate      time.Time
	TargetEndDate  *time.Time
	ActualEndDate  *time.Time
	Status         BatchStatus
	SuccessRating  *int
	Notes          *string
	Ingredients    *string
	LessonsLearned *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Read-only, joined from the linked profile.
	ProfileName string
	ProfileType string

	// Computed for listings; never stored.
	ThumbnailPath *string
}

// Countdown evaluates the batch schedule at now.
func (b *Batch) Countdown(now time.Time) Countdown {
	return NewCountdown(b.TargetEndDate, b.Status, now)
}

// BatchUpdateParams carries the fields of a partial batch update.
// A nil pointer leaves the column untouched.
type BatchUpdateParams struct {
	ProfileID     *int64
	Name          *string
	StartDate     *time.Time
	TargetEndDate *time.Time
	Status        *BatchStatus
	Notes         *string
	Ingredients   *string
}

// IsEmpty reports whether the update changes nothing.
func (p BatchUpdateParams) IsEmpty() bool {
	return p.ProfileID == nil && p.Name == nil && p.StartDate == nil &&
		p.TargetEndDate == nil && p.Status == nil && p.Notes == nil && p.Ingredients == nil
}

// BatchFinishParams is what FinishBatch writes onto the batch row.
type BatchFinishParams struct {
	ActualEndDate  time.Time
	SuccessRating  *int
	LessonsLearned *string
}

// TasteProfile is an append-only tasting note for a batch.
type TasteProfile struct {
	ID        int64
	BatchID   int64
	Notes     string
	TastedAt  time.Time
	CreatedAt time.Time
}

// BatchDetail is a batch together with everything recorded against it.
type BatchDetail struct {
	Batch        *Batch
	Profile      *Profile
	Temperatures []TemperatureLog
	Photos       []Photo
	Tastings     []TasteProfile
	Countdown    Countdown
	DisplayUnit  TemperatureUnit
}
