package batch

import (
	"context"
	"sync"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

var _ photoRepo = &photoRepoMock{}

type photoRepoMock struct {
	AppendFunc      func(ctx context.Context, p domain.Photo) (*domain.Photo, error)
	ListByBatchFunc func(ctx context.Context, batchID int64) ([]domain.Photo, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			P   domain.Photo
		}
		ListByBatch []struct {
			Ctx     context.Context
			BatchID int64
		}
	}
	lockAppend      sync.RWMutex
	lockListByBatch sync.RWMutex
}

func (mock *photoRepoMock) Append(ctx context.Context, p domain.Photo) (*domain.Photo, error) {
	if mock.AppendFunc == nil {
		panic("photoRepoMock.AppendFunc: method is nil but photoRepo.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Photo
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, p)
}

// AppendCalls gets all the calls that were made to Append.
func (mock *photoRepoMock) AppendCalls() []struct {
	Ctx context.Context
	P   domain.Photo
} {
	var calls []struct {
		Ctx context.Context
		P   domain.Photo
	}
	mock.lockAppend.RLock()
	calls = mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *photoRepoMock) ListByBatch(ctx context.Context, batchID int64) ([]domain.Photo, error) {
	if mock.ListByBatchFunc == nil {
		panic("photoRepoMock.ListByBatchFunc: method is nil but photoRepo.ListByBatch was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		BatchID int64
	}{
		Ctx:     ctx,
		BatchID: batchID,
	}
	mock.lockListByBatch.Lock()
	mock.calls.ListByBatch = append(mock.calls.ListByBatch, callInfo)
	mock.lockListByBatch.Unlock()
	return mock.ListByBatchFunc(ctx, batchID)
}

// ListByBatchCalls gets all the calls that were made to ListByBatch.
func (mock *photoRepoMock) ListByBatchCalls() []struct {
	Ctx     context.Context
	BatchID int64
} {
	var calls []struct {
		Ctx     context.Context
		BatchID int64
	}
	mock.lockListByBatch.RLock()
	calls = mock.calls.ListByBatch
	mock.lockListByBatch.RUnlock()
	return calls
}
