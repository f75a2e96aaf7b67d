package moderation

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"sync"
)

var _ editRepo = &editRepoMock{}

type editRepoMock struct {
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Edit, error)
	ListFunc             func(ctx context.Context, filter domain.EditFilter) ([]domain.Edit, error)
	CountFunc            func(ctx context.Context, filter domain.EditFilter) (int, error)
	ResolveFunc          func(ctx context.Context, id uuid.UUID, res domain.Resolution) (*domain.Edit, error)

	calls struct {
		GetByIDForUpdate []struct {
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
		Resolve []struct {
			Ctx context.Context
			Id  uuid.UUID
			Res domain.Resolution
		}
	}
	lockGetByIDForUpdate sync.RWMutex
	lockList             sync.RWMutex
	lockCount            sync.RWMutex
	lockResolve          sync.RWMutex
}

func (mock *editRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Edit, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("editRepoMock.GetByIDForUpdateFunc: method is nil but editRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *editRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetByIDForUpdate.RLock()
	calls = mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
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

func (mock *editRepoMock) Resolve(ctx context.Context, id uuid.UUID, res domain.Resolution) (*domain.Edit, error) {
	if mock.ResolveFunc == nil {
		panic("editRepoMock.ResolveFunc: method is nil but editRepo.Resolve was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		Res domain.Resolution
	}{Ctx: ctx, Id: id, Res: res}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, id, res)
}

func (mock *editRepoMock) ResolveCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	Res domain.Resolution
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
		Res domain.Resolution
	}
	mock.lockResolve.RLock()
	calls = mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
