package batch

import (
	"context"
	"sync"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
)

var _ auditReader = &auditReaderMock{}

type auditReaderMock struct {
	GetByEntityFunc func(ctx context.Context, entityType domain.EntityType, entityID int64, limit int) ([]domain.AuditRecord, error)

	calls struct {
		GetByEntity []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   int64
			Limit      int
		}
	}
	lockGetByEntity sync.RWMutex
}

func (mock *auditReaderMock) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID int64, limit int) ([]domain.AuditRecord, error) {
	if mock.GetByEntityFunc == nil {
		panic("auditReaderMock.GetByEntityFunc: method is nil but auditReader.GetByEntity was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   int64
		Limit      int
	}{
		Ctx:        ctx,
		EntityType: entityType,
		EntityID:   entityID,
		Limit:      limit,
	}
	mock.lockGetByEntity.Lock()
	mock.calls.GetByEntity = append(mock.calls.GetByEntity, callInfo)
	mock.lockGetByEntity.Unlock()
	return mock.GetByEntityFunc(ctx, entityType, entityID, limit)
}

// GetByEntityCalls gets all the calls that were made to GetByEntity.
func (mock *auditReaderMock) GetByEntityCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   int64
	Limit      int
} {
	var calls []struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   int64
		Limit      int
	}
	mock.lockGetByEntity.RLock()
	calls = mock.calls.GetByEntity
	mock.lockGetByEntity.RUnlock()
	return calls
}
