package edit

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ submissionLimiter = &submissionLimiterMock{}

type submissionLimiterMock struct {
	AllowFunc func(ctx context.Context, userID uuid.UUID) (bool, error)

	calls struct {
		Allow []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockAllow sync.RWMutex
}

func (mock *submissionLimiterMock) Allow(ctx context.Context, userID uuid.UUID) (bool, error) {
	if mock.AllowFunc == nil {
		panic("submissionLimiterMock.AllowFunc: method is nil but submissionLimiter.Allow was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockAllow.Lock()
	mock.calls.Allow = append(mock.calls.Allow, callInfo)
	mock.lockAllow.Unlock()
	return mock.AllowFunc(ctx, userID)
}

func (mock *submissionLimiterMock) AllowCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockAllow.RLock()
	calls = mock.calls.Allow
	mock.lockAllow.RUnlock()
	return calls
}
