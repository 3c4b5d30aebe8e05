package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
	"github.com/CWiesbaum/raugupatis-log/pkg/ctxutil"
)

// GetBatch returns a batch with its profile, readings, photos, tastings and
// countdown. Readings are newest first and capped at the configured history
// limit (zero means no cap).
func (s *Service) GetBatch(ctx context.Context, input GetBatchInput) (*domain.BatchDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	b, err := s.batches.GetByID(ctx, userID, input.BatchID)
	if err != nil {
		return nil, fmt.Errorf("get batch: %w", err)
	}

	detail := &domain.BatchDetail{
		Batch:     b,
		Countdown: b.Countdown(s.now()),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.profiles.GetByID(gctx, b.ProfileID)
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}
		detail.Profile = p
		return nil
	})
	g.Go(func() error {
		logs, err := s.temperatures.ListByBatch(gctx, b.ID)
		if err != nil {
			return fmt.Errorf("list temperature logs: %w", err)
		}
		if limit := s.settings.HistoryLimit; limit > 0 && len(logs) > limit {
			logs = logs[:limit]
		}
		detail.Temperatures = logs
		return nil
	})
	g.Go(func() error {
		photos, err := s.photos.ListByBatch(gctx, b.ID)
		if err != nil {
			return fmt.Errorf("list photos: %w", err)
		}
		detail.Photos = photos
		b.ThumbnailPath = domain.SelectThumbnail(b.Status, photos)
		return nil
	})
	g.Go(func() error {
		tastings, err := s.tastings.ListByBatch(gctx, b.ID)
		if err != nil {
			return fmt.Errorf("list tastings: %w", err)
		}
		detail.Tastings = tastings
		return nil
	})
	g.Go(func() error {
		detail.DisplayUnit = s.preferredUnit(gctx, userID, input.DisplayUnit)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return detail, nil
}
