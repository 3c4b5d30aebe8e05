package batch

import (
	"context"
	"sync"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

var _ photoLoader = &photoLoaderMock{}

type photoLoaderMock struct {
	PhotosByBatchIDsFunc func(ctx context.Context, batchIDs []int64) (map[int64][]domain.Photo, error)

	calls struct {
		PhotosByBatchIDs []struct {
			Ctx      context.Context
			BatchIDs []int64
		}
	}
	lockPhotosByBatchIDs sync.RWMutex
}

func (mock *photoLoaderMock) PhotosByBatchIDs(ctx context.Context, batchIDs []int64) (map[int64][]domain.Photo, error) {
	if mock.PhotosByBatchIDsFunc == nil {
		panic("photoLoaderMock.PhotosByBatchIDsFunc: method is nil but photoLoader.PhotosByBatchIDs was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		BatchIDs []int64
	}{
		Ctx:      ctx,
		BatchIDs: batchIDs,
	}
	mock.lockPhotosByBatchIDs.Lock()
	mock.calls.PhotosByBatchIDs = append(mock.calls.PhotosByBatchIDs, callInfo)
	mock.lockPhotosByBatchIDs.Unlock()
	return mock.PhotosByBatchIDsFunc(ctx, batchIDs)
}

// PhotosByBatchIDsCalls gets all the calls that were made to PhotosByBatchIDs.
func (mock *photoLoaderMock) PhotosByBatchIDsCalls() []struct {
	Ctx      context.Context
	BatchIDs []int64
} {
	var calls []struct {
		Ctx      context.Context
		BatchIDs []int64
	}
	mock.lockPhotosByBatchIDs.RLock()
	calls = mock.calls.PhotosByBatchIDs
	mock.lockPhotosByBatchIDs.RUnlock()
	return calls
}
