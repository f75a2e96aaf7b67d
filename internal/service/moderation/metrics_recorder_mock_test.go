package moderation

import (
	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"sync"
)

var _ metricsRecorder = &metricsRecorderMock{}

type metricsRecorderMock struct {
	EditDecidedFunc  func(decision domain.Decision)
	EditConflictFunc func(reason string)

	calls struct {
		EditDecided []struct {
			Decision domain.Decision
		}
		EditConflict []struct {
			Reason string
		}
	}
	lockEditDecided  sync.RWMutex
	lockEditConflict sync.RWMutex
}

func (mock *metricsRecorderMock) EditDecided(decision domain.Decision) {
	if mock.EditDecidedFunc == nil {
		panic("metricsRecorderMock.EditDecidedFunc: method is nil but metricsRecorder.EditDecided was just called")
	}
	callInfo := struct {
		Decision domain.Decision
	}{Decision: decision}
	mock.lockEditDecided.Lock()
	mock.calls.EditDecided = append(mock.calls.EditDecided, callInfo)
	mock.lockEditDecided.Unlock()
	mock.EditDecidedFunc(decision)
}

func (mock *metricsRecorderMock) EditDecidedCalls() []struct {
	Decision domain.Decision
} {
	var calls []struct {
		Decision domain.Decision
	}
	mock.lockEditDecided.RLock()
	calls = mock.calls.EditDecided
	mock.lockEditDecided.RUnlock()
	return calls
}

func (mock *metricsRecorderMock) EditConflict(reason string) {
	if mock.EditConflictFunc == nil {
		panic("metricsRecorderMock.EditConflictFunc: method is nil but metricsRecorder.EditConflict was just called")
	}
	callInfo := struct {
		Reason string
	}{Reason: reason}
	mock.lockEditConflict.Lock()
	mock.calls.EditConflict = append(mock.calls.EditConflict, callInfo)
	mock.lockEditConflict.Unlock()
	mock.EditConflictFunc(reason)
}

func (mock *metricsRecorderMock) EditConflictCalls() []struct {
	Reason string
} {
	var calls []struct {
		Reason string
	}
	mock.lockEditConflict.RLock()
	calls = mock.calls.EditConflict
	mock.lockEditConflict.RUnlock()
	return calls
}
