package edit

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"sync"
)

var _ editRepo = &editRepoMock{}

type editRepoMock struct {
	LockTupleFunc   func(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, field string) error
	FindPendingFunc func(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, field string) (*domain.Edit, error)
	SupersedeFunc   func(ctx context.Context, id uuid.UUID) (*domain.Edit, error)
	CreateFunc      func(ctx context.Context, e *domain.Edit) (*domain.Edit, error)

	calls struct {
		LockTuple []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   uuid.UUID
			Field      string
		}
		FindPending []struct {
			Ctx        context.Context
			EntityType domain.EntityType
			EntityID   uuid.UUID
			Field      string
		}
		Supersede []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			E   *domain.Edit
		}
	}
	lockLockTuple   sync.RWMutex
	lockFindPending sync.RWMutex
	lockSupersede   sync.RWMutex
	lockCreate      sync.RWMutex
}

func (mock *editRepoMock) LockTuple(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, field string) error {
	if mock.LockTupleFunc == nil {
		panic("editRepoMock.LockTupleFunc: method is nil but editRepo.LockTuple was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   uuid.UUID
		Field      string
	}{Ctx: ctx, EntityType: entityType, EntityID: entityID, Field: field}
	mock.lockLockTuple.Lock()
	mock.calls.LockTuple = append(mock.calls.LockTuple, callInfo)
	mock.lockLockTuple.Unlock()
	return mock.LockTupleFunc(ctx, entityType, entityID, field)
}

func (mock *editRepoMock) LockTupleCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   uuid.UUID
	Field      string
} {
	var calls []struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   uuid.UUID
		Field      string
	}
	mock.lockLockTuple.RLock()
	calls = mock.calls.LockTuple
	mock.lockLockTuple.RUnlock()
	return calls
}

func (mock *editRepoMock) FindPending(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, field string) (*domain.Edit, error) {
	if mock.FindPendingFunc == nil {
		panic("editRepoMock.FindPendingFunc: method is nil but editRepo.FindPending was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   uuid.UUID
		Field      string
	}{Ctx: ctx, EntityType: entityType, EntityID: entityID, Field: field}
	mock.lockFindPending.Lock()
	mock.calls.FindPending = append(mock.calls.FindPending, callInfo)
	mock.lockFindPending.Unlock()
	return mock.FindPendingFunc(ctx, entityType, entityID, field)
}

func (mock *editRepoMock) FindPendingCalls() []struct {
	Ctx        context.Context
	EntityType domain.EntityType
	EntityID   uuid.UUID
	Field      string
} {
	var calls []struct {
		Ctx        context.Context
		EntityType domain.EntityType
		EntityID   uuid.UUID
		Field      string
	}
	mock.lockFindPending.RLock()
	calls = mock.calls.FindPending
	mock.lockFindPending.RUnlock()
	return calls
}

func (mock *editRepoMock) Supersede(ctx context.Context, id uuid.UUID) (*domain.Edit, error) {
	if mock.SupersedeFunc == nil {
		panic("editRepoMock.SupersedeFunc: method is nil but editRepo.Supersede was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockSupersede.Lock()
	mock.calls.Supersede = append(mock.calls.Supersede, callInfo)
	mock.lockSupersede.Unlock()
	return mock.SupersedeFunc(ctx, id)
}

func (mock *editRepoMock) SupersedeCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockSupersede.RLock()
	calls = mock.calls.Supersede
	mock.lockSupersede.RUnlock()
	return calls
}

func (mock *editRepoMock) Create(ctx context.Context, e *domain.Edit) (*domain.Edit, error) {
	if mock.CreateFunc == nil {
		panic("editRepoMock.CreateFunc: method is nil but editRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Edit
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *editRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.Edit
} {
	var calls []struct {
		Ctx context.Context
		E   *domain.Edit
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
