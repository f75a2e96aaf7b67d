package rest

import (
	"context"
	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"github.com/heartmarshall/ballotwiki-backend/internal/service/history"
	"sync"
)

var _ editDescriber = &editDescriberMock{}

type editDescriberMock struct {
	DescribeFunc func(ctx context.Context, edits []domain.Edit) ([]history.EditView, error)

	calls struct {
		Describe []struct {
			Ctx   context.Context
			Edits []domain.Edit
		}
	}
	lockDescribe sync.RWMutex
}

func (mock *editDescriberMock) Describe(ctx context.Context, edits []domain.Edit) ([]history.EditView, error) {
	if mock.DescribeFunc == nil {
		panic("editDescriberMock.DescribeFunc: method is nil but editDescriber.Describe was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Edits []domain.Edit
	}{Ctx: ctx, Edits: edits}
	mock.lockDescribe.Lock()
	mock.calls.Describe = append(mock.calls.Describe, callInfo)
	mock.lockDescribe.Unlock()
	return mock.DescribeFunc(ctx, edits)
}

func (mock *editDescriberMock) DescribeCalls() []struct {
	Ctx   context.Context
	Edits []domain.Edit
} {
	var calls []struct {
		Ctx   context.Context
		Edits []domain.Edit
	}
	mock.lockDescribe.RLock()
	calls = mock.calls.Describe
	mock.lockDescribe.RUnlock()
	return calls
}
