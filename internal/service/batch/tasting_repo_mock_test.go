package batch

import (
	"context"
	"sync"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

var _ tastingRepo = &tastingRepoMock{}

type tastingRepoMock struct {
	AppendFunc      func(ctx context.Context, tp domain.TasteProfile) (*domain.TasteProfile, error)
	ListByBatchFunc func(ctx context.Context, batchID int64) ([]domain.TasteProfile, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			Tp  domain.TasteProfile
		}
		ListByBatch []struct {
			Ctx     context.Context
			BatchID int64
		}
	}
	lockAppend      sync.RWMutex
	lockListByBatch sync.RWMutex
}

func (mock *tastingRepoMock) Append(ctx context.Context, tp domain.TasteProfile) (*domain.TasteProfile, error) {
	if mock.AppendFunc == nil {
		panic("tastingRepoMock.AppendFunc: method is nil but tastingRepo.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Tp  domain.TasteProfile
	}{
		Ctx: ctx,
		Tp:  tp,
	}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, tp)
}

// AppendCalls gets all the calls that were made to Append.
func (mock *tastingRepoMock) AppendCalls() []struct {
	Ctx context.Context
	Tp  domain.TasteProfile
} {
	var calls []struct {
		Ctx context.Context
		Tp  domain.TasteProfile
	}
	mock.lockAppend.RLock()
	calls = mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *tastingRepoMock) ListByBatch(ctx context.Context, batchID int64) ([]domain.TasteProfile, error) {
	if mock.ListByBatchFunc == nil {
		panic("tastingRepoMock.ListByBatchFunc: method is nil but tastingRepo.ListByBatch was just called")
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
func (mock *tastingRepoMock) ListByBatchCalls() []struct {
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
