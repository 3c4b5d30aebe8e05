package batch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
	"github.com/CWiesbaum/raugupatis-log/pkg/ctxutil"
)

// UpdateBatch applies a partial update to a batch owned by the caller.
// Batches owned by someone else are reported as domain.ErrNotFound.
func (s *Service) UpdateBatch(ctx context.Context, input UpdateBatchInput) (*domain.Batch, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params, err := toUpdateParams(input)
	if err != nil {
		return nil, err
	}

	var updated *domain.Batch
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.batches.GetForUpdate(txCtx, userID, input.BatchID)
		if err != nil {
			return fmt.Errorf("get batch: %w", err)
		}

		if params.Status != nil {
			if err := domain.ValidateStatusTransition(old.Status, *params.Status); err != nil {
				return err
			}
		}
		if err := validateSchedule(old, params); err != nil {
			return err
		}
		if params.ProfileID != nil && *params.ProfileID != old.ProfileID {
			if _, err := s.activeProfile(txCtx, *params.ProfileID); err != nil {
				return err
			}
		}

		if params.IsEmpty() {
			updated = old
			return nil
		}

		found, err := s.batches.Update(txCtx, userID, input.BatchID, params)
		if err != nil {
			return fmt.Errorf("update batch: %w", err)
		}
		if !found {
			return fmt.Errorf("batch %d: %w", input.BatchID, domain.ErrNotFound)
		}

		updated, err = s.batches.GetByID(txCtx, userID, input.BatchID)
		if err != nil {
			return fmt.Errorf("get updated batch: %w", err)
		}

		changes := buildBatchChanges(old, updated)
		if len(changes) > 0 {
			if err := s.audit.Log(txCtx, domain.AuditRecord{
				UserID:     userID,
				EntityType: domain.EntityTypeBatch,
				EntityID:   input.BatchID,
				Action:     domain.AuditActionUpdate,
				Changes:    changes,
			}); err != nil {
				return fmt.Errorf("audit log: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "batch updated",
		slog.String("user_id", userID.String()),
		slog.Int64("batch_id", input.BatchID),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}

func toUpdateParams(input UpdateBatchInput) (domain.BatchUpdateParams, error) {
	params := domain.BatchUpdateParams{
		ProfileID:   input.ProfileID,
		Notes:       trimmedText(input.Notes),
		Ingredients: trimmedText(input.Ingredients),
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		params.Name = &name
	}
	if input.StartDate != nil {
		start, err := parseTimestamp(*input.StartDate)
		if err != nil {
			return params, domain.NewValidationError("start_date", msgTimestamp)
		}
		params.StartDate = &start
	}
	if input.TargetEndDate != nil {
		target, err := parseTimestamp(*input.TargetEndDate)
		if err != nil {
			return params, domain.NewValidationError("target_end_date", msgTimestamp)
		}
		params.TargetEndDate = &target
	}
	if input.Status != nil {
		status, err := domain.ParseBatchStatus(*input.Status)
		if err != nil {
			return params, domain.NewValidationError("status", fmt.Sprintf("unknown status %q", *input.Status))
		}
		params.Status = &status
	}
	return params, nil
}

// trimmedText trims an optional text field. An explicitly blank value stays
// as an empty string so the column is cleared.
func trimmedText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

// validateSchedule checks the merged start and target dates.
func validateSchedule(old *domain.Batch, params domain.BatchUpdateParams) error {
	start := old.StartDate
	if params.StartDate != nil {
		start = *params.StartDate
	}
	target := old.TargetEndDate
	if params.TargetEndDate != nil {
		target = params.TargetEndDate
	}
	if target != nil && target.Before(start) {
		return domain.NewValidationError("target_end_date", "must not be before start_date")
	}
	return nil
}

// buildBatchChanges returns only changed fields for audit.
func buildBatchChanges(old, updated *domain.Batch) map[string]any {
	changes := make(map[string]any)
	diff := func(field string, before, after any) {
		changes[field] = map[string]any{"old": before, "new": after}
	}

	if old.Name != updated.Name {
		diff("name", old.Name, updated.Name)
	}
	if old.ProfileID != updated.ProfileID {
		diff("profile_id", old.ProfileID, updated.ProfileID)
	}
	if old.Status != updated.Status {
		diff("status", old.Status.String(), updated.Status.String())
	}
	if !old.StartDate.Equal(updated.StartDate) {
		diff("start_date", old.StartDate, updated.StartDate)
	}
	if !equalTime(old.TargetEndDate, updated.TargetEndDate) {
		diff("target_end_date", old.TargetEndDate, updated.TargetEndDate)
	}
	if deref(old.Notes) != deref(updated.Notes) {
		diff("notes", old.Notes, updated.Notes)
	}
	if deref(old.Ingredients) != deref(updated.Ingredients) {
		diff("ingredients", old.Ingredients, updated.Ingredients)
	}
	return changes
}

func equalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
