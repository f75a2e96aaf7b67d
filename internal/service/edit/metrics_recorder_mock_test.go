package edit

import (
	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"sync"
)

var _ metricsRecorder = &metricsRecorderMock{}

type metricsRecorderMock struct {
	EditSubmittedFunc         func(entityType domain.EntityType)
	EditSupersededFunc        func()
	SubmissionRateLimitedFunc func()

	calls struct {
		EditSubmitted []struct {
			EntityType domain.EntityType
		}
		EditSuperseded []struct{}
		SubmissionRateLimited []struct{}
	}
	lockEditSubmitted         sync.RWMutex
	lockEditSuperseded        sync.RWMutex
	lockSubmissionRateLimited sync.RWMutex
}

func (mock *metricsRecorderMock) EditSubmitted(entityType domain.EntityType) {
	if mock.EditSubmittedFunc == nil {
		panic("metricsRecorderMock.EditSubmittedFunc: method is nil but metricsRecorder.EditSubmitted was just called")
	}
	callInfo := struct {
		EntityType domain.EntityType
	}{EntityType: entityType}
	mock.lockEditSubmitted.Lock()
	mock.calls.EditSubmitted = append(mock.calls.EditSubmitted, callInfo)
	mock.lockEditSubmitted.Unlock()
	mock.EditSubmittedFunc(entityType)
}

func (mock *metricsRecorderMock) EditSubmittedCalls() []struct {
	EntityType domain.EntityType
} {
	var calls []struct {
		EntityType domain.EntityType
	}
	mock.lockEditSubmitted.RLock()
	calls = mock.calls.EditSubmitted
	mock.lockEditSubmitted.RUnlock()
	return calls
}

func (mock *metricsRecorderMock) EditSuperseded() {
	if mock.EditSupersededFunc == nil {
		panic("metricsRecorderMock.EditSupersededFunc: method is nil but metricsRecorder.EditSuperseded was just called")
	}
	mock.lockEditSuperseded.Lock()
	mock.calls.EditSuperseded = append(mock.calls.EditSuperseded, struct{}{})
	mock.lockEditSuperseded.Unlock()
	mock.EditSupersededFunc()
}

func (mock *metricsRecorderMock) EditSupersededCalls() []struct{} {
	var calls []struct{}
	mock.lockEditSuperseded.RLock()
	calls = mock.calls.EditSuperseded
	mock.lockEditSuperseded.RUnlock()
	return calls
}

func (mock *metricsRecorderMock) SubmissionRateLimited() {
	if mock.SubmissionRateLimitedFunc == nil {
		panic("metricsRecorderMock.SubmissionRateLimitedFunc: method is nil but metricsRecorder.SubmissionRateLimited was just called")
	}
	mock.lockSubmissionRateLimited.Lock()
	mock.calls.SubmissionRateLimited = append(mock.calls.SubmissionRateLimited, struct{}{})
	mock.lockSubmissionRateLimited.Unlock()
	mock.SubmissionRateLimitedFunc()
}

func (mock *metricsRecorderMock) SubmissionRateLimitedCalls() []struct{} {
	var calls []struct{}
	mock.lockSubmissionRateLimited.RLock()
	calls = mock.calls.SubmissionRateLimited
	mock.lockSubmissionRateLimited.RUnlock()
	return calls
}
