package edit

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	AdjustCountersFunc func(ctx context.Context, id uuid.UUID, delta domain.CounterDelta) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		AdjustCounters []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Delta domain.CounterDelta
		}
	}
	lockGetByID        sync.RWMutex
	lockAdjustCounters sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

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

func (mock *userRepoMock) AdjustCounters(ctx context.Context, id uuid.UUID, delta domain.CounterDelta) error {
	if mock.AdjustCountersFunc == nil {
		panic("userRepoMock.AdjustCountersFunc: method is nil but userRepo.AdjustCounters was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Delta domain.CounterDelta
	}{Ctx: ctx, ID: id, Delta: delta}
	mock.lockAdjustCounters.Lock()
	mock.calls.AdjustCounters = append(mock.calls.AdjustCounters, callInfo)
	mock.lockAdjustCounters.Unlock()
	return mock.AdjustCountersFunc(ctx, id, delta)
}

func (mock *userRepoMock) AdjustCountersCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Delta domain.CounterDelta
} {
	var calls []struct {
		Ctx   context.Context
		ID    uuid.UUID
		Delta domain.CounterDelta
	}
	mock.lockAdjustCounters.RLock()
	calls = mock.calls.AdjustCounters
	mock.lockAdjustCounters.RUnlock()
	return calls
}
