package rest

import (
	"context"
	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"github.com/heartmarshall/ballotwiki-backend/internal/service/moderation"
	"sync"
)

var _ moderationService = &moderationServiceMock{}

type moderationServiceMock struct {
	ListPendingFunc func(ctx context.Context, input moderation.QueueInput) (*moderation.QueuePage, error)
	DecideFunc      func(ctx context.Context, input moderation.DecideInput) (*domain.Edit, error)

	calls struct {
		ListPending []struct {
			Ctx   context.Context
			Input moderation.QueueInput
		}
		Decide []struct {
			Ctx   context.Context
			Input moderation.DecideInput
		}
	}
	lockListPending sync.RWMutex
	lockDecide      sync.RWMutex
}

func (mock *moderationServiceMock) ListPending(ctx context.Context, input moderation.QueueInput) (*moderation.QueuePage, error) {
	if mock.ListPendingFunc == nil {
		panic("moderationServiceMock.ListPendingFunc: method is nil but moderationService.ListPending was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input moderation.QueueInput
	}{Ctx: ctx, Input: input}
	mock.lockListPending.Lock()
	mock.calls.ListPending = append(mock.calls.ListPending, callInfo)
	mock.lockListPending.Unlock()
	return mock.ListPendingFunc(ctx, input)
}

func (mock *moderationServiceMock) ListPendingCalls() []struct {
	Ctx   context.Context
	Input moderation.QueueInput
} {
	var calls []struct {
		Ctx   context.Context
		Input moderation.QueueInput
	}
	mock.lockListPending.RLock()
	calls = mock.calls.ListPending
	mock.lockListPending.RUnlock()
	return calls
}

func (mock *moderationServiceMock) Decide(ctx context.Context, input moderation.DecideInput) (*domain.Edit, error) {
	if mock.DecideFunc == nil {
		panic("moderationServiceMock.DecideFunc: method is nil but moderationService.Decide was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input moderation.DecideInput
	}{Ctx: ctx, Input: input}
	mock.lockDecide.Lock()
	mock.calls.Decide = append(mock.calls.Decide, callInfo)
	mock.lockDecide.Unlock()
	return mock.DecideFunc(ctx, input)
}

func (mock *moderationServiceMock) DecideCalls() []struct {
	Ctx   context.Context
	Input moderation.DecideInput
} {
	var calls []struct {
		Ctx   context.Context
		Input moderation.DecideInput
	}
	mock.lockDecide.RLock()
	calls = mock.calls.Decide
	mock.lockDecide.RUnlock()
	return calls
}
