// Package dataloader batches photo lookups for batch listings into a bounded
// number of SQL calls. Callers must only pass IDs of batches they have
// already loaded with an owner filter.
package dataloader

import (
	"context"
	"errors"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type photoRepo interface {
	ListByBatchIDs(ctx context.Context, batchIDs []int64) ([]domain.Photo, error)
}

// PhotoLoader loads photos keyed by batch ID. It holds no cache, so photos
// appended between calls are always visible.
type PhotoLoader struct {
	loader *dataloader.Loader[int64, []domain.Photo]
}

// NewPhotoLoader creates a PhotoLoader backed by repo.
func NewPhotoLoader(repo photoRepo) *PhotoLoader {
	return &PhotoLoader{
		loader: dataloader.NewBatchedLoader(
			newPhotosBatchFn(repo),
			dataloader.WithWait[int64, []domain.Photo](wait),
			dataloader.WithBatchCapacity[int64, []domain.Photo](maxBatch),
			dataloader.WithCache[int64, []domain.Photo](&dataloader.NoCache[int64, []domain.Photo]{}),
		),
	}
}

// PhotosByBatchIDs returns photos for every requested batch. Batches without
// photos map to an empty slice.
func (l *PhotoLoader) PhotosByBatchIDs(ctx context.Context, batchIDs []int64) (map[int64][]domain.Photo, error) {
	out := make(map[int64][]domain.Photo, len(batchIDs))
	if len(batchIDs) == 0 {
		return out, nil
	}

	results, errs := l.loader.LoadMany(ctx, batchIDs)()
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	for i, id := range batchIDs {
		out[id] = results[i]
	}
	return out, nil
}

func newPhotosBatchFn(repo photoRepo) dataloader.BatchFunc[int64, []domain.Photo] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[[]domain.Photo] {
		photos, err := repo.ListByBatchIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Photo](len(keys), err)
		}

		grouped := make(map[int64][]domain.Photo, len(keys))
		for _, p := range photos {
			grouped[p.BatchID] = append(grouped[p.BatchID], p)
		}

		return mapResults(keys, grouped, emptySlice[domain.Photo])
	}
}

// errorResults returns n results that all carry err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []int64, grouped map[int64]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
