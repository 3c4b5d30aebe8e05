package batch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
	"github.com/CWiesbaum/raugupatis-log/pkg/ctxutil"
)

// FinishBatch completes a batch: it stamps the actual end date, stores the
// rating and lessons learned, and optionally records a first tasting.
// Everything is written in one transaction; a rejected input writes nothing.
func (s *Service) FinishBatch(ctx context.Context, input FinishBatchInput) (*domain.Batch, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	params := domain.BatchFinishParams{
		ActualEndDate:  now,
		SuccessRating:  input.SuccessRating,
		LessonsLearned: trimOrNil(input.LessonsLearned),
	}
	tasting := trimOrNil(input.InitialTasteProfile)

	var finished *domain.Batch
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.batches.GetForUpdate(txCtx, userID, input.BatchID)
		if err != nil {
			return fmt.Errorf("get batch: %w", err)
		}
		if err := domain.ValidateStatusTransition(old.Status, domain.BatchStatusCompleted); err != nil {
			return err
		}

		found, err := s.batches.Finish(txCtx, userID, input.BatchID, params)
		if err != nil {
			return fmt.Errorf("finish batch: %w", err)
		}
		if !found {
			return fmt.Errorf("batch %d: %w", input.BatchID, domain.ErrNotFound)
		}

		if tasting != nil {
			if _, err := s.tastings.Append(txCtx, domain.TasteProfile{
				BatchID:  input.BatchID,
				Notes:    *tasting,
				TastedAt: now,
			}); err != nil {
				return fmt.Errorf("append taste profile: %w", err)
			}
		}

		finished, err = s.batches.GetByID(txCtx, userID, input.BatchID)
		if err != nil {
			return fmt.Errorf("get finished batch: %w", err)
		}

		changes := map[string]any{
			"status":          map[string]any{"old": old.Status.String(), "new": finished.Status.String()},
			"actual_end_date": map[string]any{"new": now},
		}
		if params.SuccessRating != nil {
			changes["success_rating"] = map[string]any{"old": old.SuccessRating, "new": *params.SuccessRating}
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeBatch,
			EntityID:   input.BatchID,
			Action:     domain.AuditActionFinish,
			Changes:    changes,
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "batch finished",
		slog.String("user_id", userID.String()),
		slog.Int64("batch_id", input.BatchID),
		slog.Bool("tasting_recorded", tasting != nil),
	)

	return finished, nil
}
