package domain

import (
	"strings"

	"github.com/google/uuid"
)

// BatchSortField is a whitelisted column a batch list can be ordered by.
type BatchSortField string

const (
	BatchSortName      BatchSortField = "name"
	BatchSortStartDate BatchSortField = "start_date"
	BatchSortStatus    BatchSortField = "status"
	BatchSortCreatedAt BatchSortField = "created_at"
)

func (f BatchSortField) String() string { return string(f) }

func (f BatchSortField) IsValid() bool {
	switch f {
	case BatchSortName, BatchSortStartDate, BatchSortStatus, BatchSortCreatedAt:
		return true
	}
	return false
}

// SortOrder is the direction of a list ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) String() string { return string(o) }

// MaxBatchListLimit caps an explicit limit on a batch listing.
const MaxBatchListLimit = 1000

// BatchQuery holds the raw, optional list parameters as a caller supplies them.
type BatchQuery struct {
	Search      *string
	Status      *string
	ProfileType *string
	SortBy      *string
	SortOrder   *string
	Limit       *int
}

// BatchFilter is a normalized, owner-scoped batch list query.
// Every value in it is bound as a query parameter by the persistence layer;
// only SortBy and SortOrder select query text, and both are closed sets.
type BatchFilter struct {
	OwnerID     uuid.UUID
	Search      string
	Status      *BatchStatus
	ProfileType string
	SortBy      BatchSortField
	SortOrder   SortOrder
	Limit       int
}

// NewBatchFilter normalizes q for ownerID.
//
// Blank values are ignored. An unknown sort field falls back to created_at
// and an unknown sort order to desc. An unknown status or an out-of-range
// limit is a validation error.
func NewBatchFilter(ownerID uuid.UUID, q BatchQuery) (BatchFilter, error) {
	f := BatchFilter{
		OwnerID:     ownerID,
		Search:      trimmed(q.Search),
		ProfileType: trimmed(q.ProfileType),
		SortBy:      BatchSortCreatedAt,
		SortOrder:   SortDesc,
	}

	var errs []FieldError

	if raw := trimmed(q.Status); raw != "" {
		status, err := ParseBatchStatus(raw)
		if err != nil {
			errs = append(errs, FieldError{Field: "status", Message: "must be one of active, paused, completed, failed"})
		} else {
			f.Status = &status
		}
	}

	if sortBy := BatchSortField(strings.ToLower(trimmed(q.SortBy))); sortBy.IsValid() {
		f.SortBy = sortBy
	}

	if strings.EqualFold(trimmed(q.SortOrder), string(SortAsc)) {
		f.SortOrder = SortAsc
	}

	if q.Limit != nil {
		if *q.Limit < 1 || *q.Limit > MaxBatchListLimit {
			errs = append(errs, FieldError{Field: "limit", Message: "must be between 1 and 1000"})
		} else {
			f.Limit = *q.Limit
		}
	}

	if len(errs) > 0 {
		return BatchFilter{}, NewValidationErrors(errs)
	}
	return f, nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
