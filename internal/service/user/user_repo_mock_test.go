package user

import (
	"context"
	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByPublicIDFunc     func(ctx context.Context, publicID string) (*domain.User, error)
	CreateFunc            func(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateRoleFunc        func(ctx context.Context, publicID string, role domain.UserRole) (*domain.User, error)
	ReconcileCountersFunc func(ctx context.Context) (int64, error)

	calls struct {
		GetByPublicID []struct {
			Ctx      context.Context
			PublicID string
		}
		Create []struct {
			Ctx context.Context
			U   *domain.User
		}
		UpdateRole []struct {
			Ctx      context.Context
			PublicID string
			Role     domain.UserRole
		}
		ReconcileCounters []struct {
			Ctx context.Context
		}
	}
	lockGetByPublicID     sync.RWMutex
	lockCreate            sync.RWMutex
	lockUpdateRole        sync.RWMutex
	lockReconcileCounters sync.RWMutex
}

func (mock *userRepoMock) GetByPublicID(ctx context.Context, publicID string) (*domain.User, error) {
	if mock.GetByPublicIDFunc == nil {
		panic("userRepoMock.GetByPublicIDFunc: method is nil but userRepo.GetByPublicID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PublicID string
	}{Ctx: ctx, PublicID: publicID}
	mock.lockGetByPublicID.Lock()
	mock.calls.GetByPublicID = append(mock.calls.GetByPublicID, callInfo)
	mock.lockGetByPublicID.Unlock()
	return mock.GetByPublicIDFunc(ctx, publicID)
}

func (mock *userRepoMock) GetByPublicIDCalls() []struct {
	Ctx      context.Context
	PublicID string
} {
	var calls []struct {
		Ctx      context.Context
		PublicID string
	}
	mock.lockGetByPublicID.RLock()
	calls = mock.calls.GetByPublicID
	mock.lockGetByPublicID.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{Ctx: ctx, U: u}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	var calls []struct {
		Ctx context.Context
		U   *domain.User
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateRole(ctx context.Context, publicID string, role domain.UserRole) (*domain.User, error) {
	if mock.UpdateRoleFunc == nil {
		panic("userRepoMock.UpdateRoleFunc: method is nil but userRepo.UpdateRole was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PublicID string
		Role     domain.UserRole
	}{Ctx: ctx, PublicID: publicID, Role: role}
	mock.lockUpdateRole.Lock()
	mock.calls.UpdateRole = append(mock.calls.UpdateRole, callInfo)
	mock.lockUpdateRole.Unlock()
	return mock.UpdateRoleFunc(ctx, publicID, role)
}

func (mock *userRepoMock) UpdateRoleCalls() []struct {
	Ctx      context.Context
	PublicID string
	Role     domain.UserRole
} {
	var calls []struct {
		Ctx      context.Context
		PublicID string
		Role     domain.UserRole
	}
	mock.lockUpdateRole.RLock()
	calls = mock.calls.UpdateRole
	mock.lockUpdateRole.RUnlock()
	return calls
}

func (mock *userRepoMock) ReconcileCounters(ctx context.Context) (int64, error) {
	if mock.ReconcileCountersFunc == nil {
		panic("userRepoMock.ReconcileCountersFunc: method is nil but userRepo.ReconcileCounters was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockReconcileCounters.Lock()
	mock.calls.ReconcileCounters = append(mock.calls.ReconcileCounters, callInfo)
	mock.lockReconcileCounters.Unlock()
	return mock.ReconcileCountersFunc(ctx)
}

func (mock *userRepoMock) ReconcileCountersCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockReconcileCounters.RLock()
	calls = mock.calls.ReconcileCounters
	mock.lockReconcileCounters.RUnlock()
	return calls
}
