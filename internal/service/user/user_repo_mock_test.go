package user

import (
	"context"
	"sync"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
	"github.com/google/uuid"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc              func(ctx context.Context, u domain.User) (*domain.User, error)
	GetByEmailFunc          func(ctx context.Context, email string) (*domain.User, error)
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdatePreferredUnitFunc func(ctx context.Context, id uuid.UUID, unit domain.TemperatureUnit) (*domain.User, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			U   domain.User
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdatePreferredUnit []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Unit domain.TemperatureUnit
		}
	}
	lockCreate              sync.RWMutex
	lockGetByEmail          sync.RWMutex
	lockGetByID             sync.RWMutex
	lockUpdatePreferredUnit sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   domain.User
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

// CreateCalls gets all the calls that were made to Create.
func (mock *userRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   domain.User
} {
	var calls []struct {
		Ctx context.Context
		U   domain.User
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

// GetByEmailCalls gets all the calls that were made to GetByEmail.
func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockGetByEmail.RLock()
	calls = mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

// GetByIDCalls gets all the calls that were made to GetByID.
func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdatePreferredUnit(ctx context.Context, id uuid.UUID, unit domain.TemperatureUnit) (*domain.User, error) {
	if mock.UpdatePreferredUnitFunc == nil {
		panic("userRepoMock.UpdatePreferredUnitFunc: method is nil but userRepo.UpdatePreferredUnit was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Unit domain.TemperatureUnit
	}{
		Ctx:  ctx,
		ID:   id,
		Unit: unit,
	}
	mock.lockUpdatePreferredUnit.Lock()
	mock.calls.UpdatePreferredUnit = append(mock.calls.UpdatePreferredUnit, callInfo)
	mock.lockUpdatePreferredUnit.Unlock()
	return mock.UpdatePreferredUnitFunc(ctx, id, unit)
}

// UpdatePreferredUnitCalls gets all the calls that were made to UpdatePreferredUnit.
func (mock *userRepoMock) UpdatePreferredUnitCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Unit domain.TemperatureUnit
} {
	var calls []struct {
		Ctx  context.Context
		ID   uuid.UUID
		Unit domain.TemperatureUnit
	}
	mock.lockUpdatePreferredUnit.RLock()
	calls = mock.calls.UpdatePreferredUnit
	mock.lockUpdatePreferredUnit.RUnlock()
	return calls
}
