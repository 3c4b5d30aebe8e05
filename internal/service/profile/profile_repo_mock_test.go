package profile

import (
	"context"
	"sync"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	CreateFunc     func(ctx context.Context, p domain.Profile) (*domain.Profile, error)
	GetByIDFunc    func(ctx context.Context, id int64) (*domain.Profile, error)
	ListActiveFunc func(ctx context.Context) ([]domain.Profile, error)
	ListAllFunc    func(ctx context.Context) ([]domain.Profile, error)
	NameExistsFunc func(ctx context.Context, name string) (bool, error)
	SetActiveFunc  func(ctx context.Context, id int64, active bool) error

	calls struct {
		Create []struct {
			Ctx context.Context
			P   domain.Profile
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		ListActive []struct {
			Ctx context.Context
		}
		ListAll []struct {
			Ctx context.Context
		}
		NameExists []struct {
			Ctx  context.Context
			Name string
		}
		SetActive []struct {
			Ctx    context.Context
			ID     int64
			Active bool
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockListActive sync.RWMutex
	lockListAll    sync.RWMutex
	lockNameExists sync.RWMutex
	lockSetActive  sync.RWMutex
}

func (mock *profileRepoMock) Create(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	if mock.CreateFunc == nil {
		panic("profileRepoMock.CreateFunc: method is nil but profileRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Profile
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

// CreateCalls gets all the calls that were made to Create.
func (mock *profileRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   domain.Profile
} {
	var calls []struct {
		Ctx context.Context
		P   domain.Profile
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *profileRepoMock) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	if mock.GetByIDFunc == nil {
		panic("profileRepoMock.GetByIDFunc: method is nil but profileRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
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
func (mock *profileRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	var calls []struct {
		Ctx context.Context
		ID  int64
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *profileRepoMock) ListActive(ctx context.Context) ([]domain.Profile, error) {
	if mock.ListActiveFunc == nil {
		panic("profileRepoMock.ListActiveFunc: method is nil but profileRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

// ListActiveCalls gets all the calls that were made to ListActive.
func (mock *profileRepoMock) ListActiveCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListActive.RLock()
	calls = mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}

func (mock *profileRepoMock) ListAll(ctx context.Context) ([]domain.Profile, error) {
	if mock.ListAllFunc == nil {
		panic("profileRepoMock.ListAllFunc: method is nil but profileRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

// ListAllCalls gets all the calls that were made to ListAll.
func (mock *profileRepoMock) ListAllCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListAll.RLock()
	calls = mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *profileRepoMock) NameExists(ctx context.Context, name string) (bool, error) {
	if mock.NameExistsFunc == nil {
		panic("profileRepoMock.NameExistsFunc: method is nil but profileRepo.NameExists was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{
		Ctx:  ctx,
		Name: name,
	}
	mock.lockNameExists.Lock()
	mock.calls.NameExists = append(mock.calls.NameExists, callInfo)
	mock.lockNameExists.Unlock()
	return mock.NameExistsFunc(ctx, name)
}

// NameExistsCalls gets all the calls that were made to NameExists.
func (mock *profileRepoMock) NameExistsCalls() []struct {
	Ctx  context.Context
	Name string
} {
	var calls []struct {
		Ctx  context.Context
		Name string
	}
	mock.lockNameExists.RLock()
	calls = mock.calls.NameExists
	mock.lockNameExists.RUnlock()
	return calls
}

func (mock *profileRepoMock) SetActive(ctx context.Context, id int64, active bool) error {
	if mock.SetActiveFunc == nil {
		panic("profileRepoMock.SetActiveFunc: method is nil but profileRepo.SetActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int64
		Active bool
	}{
		Ctx:    ctx,
		ID:     id,
		Active: active,
	}
	mock.lockSetActive.Lock()
	mock.calls.SetActive = append(mock.calls.SetActive, callInfo)
	mock.lockSetActive.Unlock()
	return mock.SetActiveFunc(ctx, id, active)
}

// SetActiveCalls gets all the calls that were made to SetActive.
func (mock *profileRepoMock) SetActiveCalls() []struct {
	Ctx    context.Context
	ID     int64
	Active bool
} {
	var calls []struct {
		Ctx    context.Context
		ID     int64
		Active bool
	}
	mock.lockSetActive.RLock()
	calls = mock.calls.SetActive
	mock.lockSetActive.RUnlock()
	return calls
}
