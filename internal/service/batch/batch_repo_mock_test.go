package batch

import (
	"context"
	"sync"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
	"github.com/google/uuid"
)

var _ batchRepo = &batchRepoMock{}

type batchRepoMock struct {
	CreateFunc       func(ctx context.Context, b domain.Batch) (int64, error)
	FinishFunc       func(ctx context.Context, ownerID uuid.UUID, id int64, params domain.BatchFinishParams) (bool, error)
	GetByIDFunc      func(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Batch, error)
	GetForUpdateFunc func(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Batch, error)
	ListFunc         func(ctx context.Context, filter domain.BatchFilter) ([]*domain.Batch, error)
	UpdateFunc       func(ctx context.Context, ownerID uuid.UUID, id int64, params domain.BatchUpdateParams) (bool, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			B   domain.Batch
		}
		Finish []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      int64
			Params  domain.BatchFinishParams
		}
		GetByID []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      int64
		}
		GetForUpdate []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      int64
		}
		List []struct {
			Ctx    context.Context
			Filter domain.BatchFilter
		}
		Update []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			ID      int64
			Params  domain.BatchUpdateParams
		}
	}
	lockCreate       sync.RWMutex
	lockFinish       sync.RWMutex
	lockGetByID      sync.RWMutex
	lockGetForUpdate sync.RWMutex
	lockList         sync.RWMutex
	lockUpdate       sync.RWMutex
}

func (mock *batchRepoMock) Create(ctx context.Context, b domain.Batch) (int64, error) {
	if mock.CreateFunc == nil {
		panic("batchRepoMock.CreateFunc: method is nil but batchRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   domain.Batch
	}{
		Ctx: ctx,
		B:   b,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, b)
}

// CreateCalls gets all the calls that were made to Create.
func (mock *batchRepoMock) CreateCalls() []struct {
	Ctx context.Context
	B   domain.Batch
} {
	var calls []struct {
		Ctx context.Context
		B   domain.Batch
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *batchRepoMock) Finish(ctx context.Context, ownerID uuid.UUID, id int64, params domain.BatchFinishParams) (bool, error) {
	if mock.FinishFunc == nil {
		panic("batchRepoMock.FinishFunc: method is nil but batchRepo.Finish was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      int64
		Params  domain.BatchFinishParams
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		ID:      id,
		Params:  params,
	}
	mock.lockFinish.Lock()
	mock.calls.Finish = append(mock.calls.Finish, callInfo)
	mock.lockFinish.Unlock()
	return mock.FinishFunc(ctx, ownerID, id, params)
}

// FinishCalls gets all the calls that were made to Finish.
func (mock *batchRepoMock) FinishCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      int64
	Params  domain.BatchFinishParams
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      int64
		Params  domain.BatchFinishParams
	}
	mock.lockFinish.RLock()
	calls = mock.calls.Finish
	mock.lockFinish.RUnlock()
	return calls
}

func (mock *batchRepoMock) GetByID(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Batch, error) {
	if mock.GetByIDFunc == nil {
		panic("batchRepoMock.GetByIDFunc: method is nil but batchRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      int64
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		ID:      id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ownerID, id)
}

// GetByIDCalls gets all the calls that were made to GetByID.
func (mock *batchRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      int64
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      int64
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *batchRepoMock) GetForUpdate(ctx context.Context, ownerID uuid.UUID, id int64) (*domain.Batch, error) {
	if mock.GetForUpdateFunc == nil {
		panic("batchRepoMock.GetForUpdateFunc: method is nil but batchRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      int64
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		ID:      id,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, ownerID, id)
}

// GetForUpdateCalls gets all the calls that were made to GetForUpdate.
func (mock *batchRepoMock) GetForUpdateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      int64
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      int64
	}
	mock.lockGetForUpdate.RLock()
	calls = mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *batchRepoMock) List(ctx context.Context, filter domain.BatchFilter) ([]*domain.Batch, error) {
	if mock.ListFunc == nil {
		panic("batchRepoMock.ListFunc: method is nil but batchRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.BatchFilter
	}{
		Ctx:    ctx,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

// ListCalls gets all the calls that were made to List.
func (mock *batchRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.BatchFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.BatchFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *batchRepoMock) Update(ctx context.Context, ownerID uuid.UUID, id int64, params domain.BatchUpdateParams) (bool, error) {
	if mock.UpdateFunc == nil {
		panic("batchRepoMock.UpdateFunc: method is nil but batchRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      int64
		Params  domain.BatchUpdateParams
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		ID:      id,
		Params:  params,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, ownerID, id, params)
}

// UpdateCalls gets all the calls that were made to Update.
func (mock *batchRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	ID      int64
	Params  domain.BatchUpdateParams
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		ID      int64
		Params  domain.BatchUpdateParams
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
