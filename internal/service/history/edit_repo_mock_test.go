package history

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"sync"
)

var _ editRepo = &editRepoMock{}

type editRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Edit, error)
	ListFunc    func(ctx context.Context, filter domain.EditFilter) ([]domain.Edit, error)
	CountFunc   func(ctx context.Context, filter domain.EditFilter) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.EditFilter
		}
		Count []struct {
			Ctx    context.Context
			Filter domain.EditFilter
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCount   sync.RWMutex
}

func (mock *editRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Edit, error) {
	if mock.GetByIDFunc == nil {
		panic("editRepoMock.GetByIDFunc: method is nil but editRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *editRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *editRepoMock) List(ctx context.Context, filter domain.EditFilter) ([]domain.Edit, error) {
	if mock.ListFunc == nil {
		panic("editRepoMock.ListFunc: method is nil but editRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.EditFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *editRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.EditFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.EditFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *editRepoMock) Count(ctx context.Context, filter domain.EditFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("editRepoMock.CountFunc: method is nil but editRepo.Count was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.EditFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, filter)
}

func (mock *editRepoMock) CountCalls() []struct {
	Ctx    context.Context
	Filter domain.EditFilter
} {
	var calls []struct {
		Ctx    context.Context
		Filter domain.EditFilter
	}
	mock.lockCount.RLock()
	calls = mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}
