package batch

import (
	"context"
	"sync"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

var _ temperatureRepo = &temperatureRepoMock{}

type temperatureRepoMock struct {
	AppendFunc      func(ctx context.Context, log domain.TemperatureLog) (*domain.TemperatureLog, error)
	ListByBatchFunc func(ctx context.Context, batchID int64) ([]domain.TemperatureLog, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			Log domain.TemperatureLog
		}
		ListByBatch []struct {
			Ctx     context.Context
			BatchID int64
		}
	}
	lockAppend      sync.RWMutex
	lockListByBatch sync.RWMutex
}

func (mock *temperatureRepoMock) Append(ctx context.Context, log domain.TemperatureLog) (*domain.TemperatureLog, error) {
	if mock.AppendFunc == nil {
		panic("temperatureRepoMock.AppendFunc: method is nil but temperatureRepo.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Log domain.TemperatureLog
	}{
		Ctx: ctx,
		Log: log,
	}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, log)
}

// AppendCalls gets all the calls that were made to Append.
func (mock *temperatureRepoMock) AppendCalls() []struct {
	Ctx context.Context
	Log domain.TemperatureLog
} {
	var calls []struct {
		Ctx context.Context
		Log domain.TemperatureLog
	}
	mock.lockAppend.RLock()
	calls = mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}

func (mock *temperatureRepoMock) ListByBatch(ctx context.Context, batchID int64) ([]domain.TemperatureLog, error) {
	if mock.ListByBatchFunc == nil {
		panic("temperatureRepoMock.ListByBatchFunc: method is nil but temperatureRepo.ListByBatch was just called")
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
func (mock *temperatureRepoMock) ListByBatchCalls() []struct {
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
