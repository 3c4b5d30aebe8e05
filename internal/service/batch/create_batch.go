package batch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
	"github.com/CWiesbaum/raugupatis-log/pkg/ctxutil"
)

// CreateBatch starts a new active batch for the authenticated user.
// An unknown or inactive profile yields domain.ErrNotFound.
func (s *Service) CreateBatch(ctx context.Context, input CreateBatchInput) (*domain.Batch, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	start, err := parseTimestamp(input.StartDate)
	if err != nil {
		return nil, domain.NewValidationError("start_date", msgTimestamp)
	}

	b := domain.Batch{
		OwnerID:     userID,
		ProfileID:   input.ProfileID,
		Name:        strings.TrimSpace(input.Name),
		StartDate:   start,
		Status:      domain.BatchStatusActive,
		Notes:       trimOrNil(input.Notes),
		Ingredients: trimOrNil(input.Ingredients),
	}
	if input.TargetEndDate != nil {
		target, err := parseTimestamp(*input.TargetEndDate)
		if err != nil {
			return nil, domain.NewValidationError("target_end_date", msgTimestamp)
		}
		b.TargetEndDate = &target
	}

	var created *domain.Batch
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		profile, err := s.activeProfile(txCtx, input.ProfileID)
		if err != nil {
			return err
		}
		if b.TargetEndDate == nil && input.SuggestTargetEnd {
			target := profile.SuggestedEndDate(start)
			b.TargetEndDate = &target
		}

		id, err := s.batches.Create(txCtx, b)
		if err != nil {
			return fmt.Errorf("create batch: %w", err)
		}

		created, err = s.batches.GetByID(txCtx, userID, id)
		if err != nil {
			return fmt.Errorf("get created batch: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeBatch,
			EntityID:   id,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name":       map[string]any{"new": created.Name},
				"profile_id": map[string]any{"new": created.ProfileID},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "batch created",
		slog.String("user_id", userID.String()),
		slog.Int64("batch_id", created.ID),
		slog.Int64("profile_id", created.ProfileID),
	)

	return created, nil
}

// activeProfile loads a profile that may be used for a new or moved batch.
func (s *Service) activeProfile(ctx context.Context, id int64) (*domain.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if !profile.IsActive {
		return nil, fmt.Errorf("profile %d is inactive: %w", id, domain.ErrNotFound)
	}
	return profile, nil
}
