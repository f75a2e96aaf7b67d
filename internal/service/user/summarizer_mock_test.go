package user

import (
	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"sync"
)

var _ summarizer = &summarizerMock{}

type summarizerMock struct {
	SummarizeFunc func(u domain.User) domain.UserSummary

	calls struct {
		Summarize []struct {
			U domain.User
		}
	}
	lockSummarize sync.RWMutex
}

func (mock *summarizerMock) Summarize(u domain.User) domain.UserSummary {
	if mock.SummarizeFunc == nil {
		panic("summarizerMock.SummarizeFunc: method is nil but summarizer.Summarize was just called")
	}
	callInfo := struct {
		U domain.User
	}{U: u}
	mock.lockSummarize.Lock()
	mock.calls.Summarize = append(mock.calls.Summarize, callInfo)
	mock.lockSummarize.Unlock()
	return mock.SummarizeFunc(u)
}

func (mock *summarizerMock) SummarizeCalls() []struct {
	U domain.User
} {
	var calls []struct {
		U domain.User
	}
	mock.lockSummarize.RLock()
	calls = mock.calls.Summarize
	mock.lockSummarize.RUnlock()
	return calls
}
