package batch

import (
	"context"
	"fmt"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
	"github.com/CWiesbaum/raugupatis-log/pkg/ctxutil"
)

// ListBatches returns the caller's batches matching q, each with its
// thumbnail path resolved from the batch photos.
func (s *Service) ListBatches(ctx context.Context, q domain.BatchQuery) ([]*domain.Batch, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	filter, err := domain.NewBatchFilter(userID, q)
	if err != nil {
		return nil, err
	}

	batches, err := s.batches.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	if len(batches) == 0 {
		return batches, nil
	}

	ids := make([]int64, len(batches))
	for i, b := range batches {
		ids[i] = b.ID
	}

	photos, err := s.loader.PhotosByBatchIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load batch photos: %w", err)
	}
	for _, b := range batches {
		b.ThumbnailPath = domain.SelectThumbnail(b.Status, photos[b.ID])
	}

	return batches, nil
}
