package rest

import (
	"context"
	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"sync"
)

var _ profileReader = &profileReaderMock{}

type profileReaderMock struct {
	ProfileFunc func(ctx context.Context, publicID string) (*domain.UserSummary, error)

	calls struct {
		Profile []struct {
			Ctx      context.Context
			PublicID string
		}
	}
	lockProfile sync.RWMutex
}

func (mock *profileReaderMock) Profile(ctx context.Context, publicID string) (*domain.UserSummary, error) {
	if mock.ProfileFunc == nil {
		panic("profileReaderMock.ProfileFunc: method is nil but profileReader.Profile was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PublicID string
	}{Ctx: ctx, PublicID: publicID}
	mock.lockProfile.Lock()
	mock.calls.Profile = append(mock.calls.Profile, callInfo)
	mock.lockProfile.Unlock()
	return mock.ProfileFunc(ctx, publicID)
}

func (mock *profileReaderMock) ProfileCalls() []struct {
	Ctx      context.Context
	PublicID string
} {
	var calls []struct {
		Ctx      context.Context
		PublicID string
	}
	mock.lockProfile.RLock()
	calls = mock.calls.Profile
	mock.lockProfile.RUnlock()
	return calls
}
