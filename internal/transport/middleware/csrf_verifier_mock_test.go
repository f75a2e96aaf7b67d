package middleware

import (
	"github.com/google/uuid"
	"sync"
)

var _ csrfVerifier = &csrfVerifierMock{}

type csrfVerifierMock struct {
	VerifyFunc func(userID uuid.UUID, token string) error

	calls struct {
		Verify []struct {
			UserID uuid.UUID
			Token  string
		}
	}
	lockVerify sync.RWMutex
}

func (mock *csrfVerifierMock) Verify(userID uuid.UUID, token string) error {
	if mock.VerifyFunc == nil {
		panic("csrfVerifierMock.VerifyFunc: method is nil but csrfVerifier.Verify was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Token  string
	}{UserID: userID, Token: token}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(userID, token)
}

func (mock *csrfVerifierMock) VerifyCalls() []struct {
	UserID uuid.UUID
	Token  string
} {
	var calls []struct {
		UserID uuid.UUID
		Token  string
	}
	mock.lockVerify.RLock()
	calls = mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
