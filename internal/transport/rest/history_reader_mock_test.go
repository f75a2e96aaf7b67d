package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"github.com/heartmarshall/ballotwiki-backend/internal/service/history"
	"sync"
)

var _ historyReader = &historyReaderMock{}

type historyReaderMock struct {
	DescribeFunc      func(ctx context.Context, edits []domain.Edit) ([]history.EditView, error)
	GetEditFunc       func(ctx context.Context, id uuid.UUID) (*history.EditDetail, error)
	ListEditsFunc     func(ctx context.Context, input history.ListInput) (*history.Page, error)
	EntityHistoryFunc func(ctx context.Context, input history.EntityHistoryInput) (*history.Page, error)
	UserHistoryFunc   func(ctx context.Context, input history.UserHistoryInput) (*history.Page, error)

	calls struct {
		Describe []struct {
			Ctx   context.Context
			Edits []domain.Edit
		}
		GetEdit []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListEdits []struct {
			Ctx   context.Context
			Input history.ListInput
		}
		EntityHistory []struct {
			Ctx   context.Context
			Input history.EntityHistoryInput
		}
		UserHistory []struct {
			Ctx   context.Context
			Input history.UserHistoryInput
		}
	}
	lockDescribe      sync.RWMutex
	lockGetEdit       sync.RWMutex
	lockListEdits     sync.RWMutex
	lockEntityHistory sync.RWMutex
	lockUserHistory   sync.RWMutex
}

func (mock *historyReaderMock) Describe(ctx context.Context, edits []domain.Edit) ([]history.EditView, error) {
	if mock.DescribeFunc == nil {
		panic("historyReaderMock.DescribeFunc: method is nil but historyReader.Describe was just called")
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

func (mock *historyReaderMock) DescribeCalls() []struct {
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

func (mock *historyReaderMock) GetEdit(ctx context.Context, id uuid.UUID) (*history.EditDetail, error) {
	if mock.GetEditFunc == nil {
		panic("historyReaderMock.GetEditFunc: method is nil but historyReader.GetEdit was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetEdit.Lock()
	mock.calls.GetEdit = append(mock.calls.GetEdit, callInfo)
	mock.lockGetEdit.Unlock()
	return mock.GetEditFunc(ctx, id)
}

func (mock *historyReaderMock) GetEditCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetEdit.RLock()
	calls = mock.calls.GetEdit
	mock.lockGetEdit.RUnlock()
	return calls
}

func (mock *historyReaderMock) ListEdits(ctx context.Context, input history.ListInput) (*history.Page, error) {
	if mock.ListEditsFunc == nil {
		panic("historyReaderMock.ListEditsFunc: method is nil but historyReader.ListEdits was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input history.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockListEdits.Lock()
	mock.calls.ListEdits = append(mock.calls.ListEdits, callInfo)
	mock.lockListEdits.Unlock()
	return mock.ListEditsFunc(ctx, input)
}

func (mock *historyReaderMock) ListEditsCalls() []struct {
	Ctx   context.Context
	Input history.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input history.ListInput
	}
	mock.lockListEdits.RLock()
	calls = mock.calls.ListEdits
	mock.lockListEdits.RUnlock()
	return calls
}

func (mock *historyReaderMock) EntityHistory(ctx context.Context, input history.EntityHistoryInput) (*history.Page, error) {
	if mock.EntityHistoryFunc == nil {
		panic("historyReaderMock.EntityHistoryFunc: method is nil but historyReader.EntityHistory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input history.EntityHistoryInput
	}{Ctx: ctx, Input: input}
	mock.lockEntityHistory.Lock()
	mock.calls.EntityHistory = append(mock.calls.EntityHistory, callInfo)
	mock.lockEntityHistory.Unlock()
	return mock.EntityHistoryFunc(ctx, input)
}

func (mock *historyReaderMock) EntityHistoryCalls() []struct {
	Ctx   context.Context
	Input history.EntityHistoryInput
} {
	var calls []struct {
		Ctx   context.Context
		Input history.EntityHistoryInput
	}
	mock.lockEntityHistory.RLock()
	calls = mock.calls.EntityHistory
	mock.lockEntityHistory.RUnlock()
	return calls
}

func (mock *historyReaderMock) UserHistory(ctx context.Context, input history.UserHistoryInput) (*history.Page, error) {
	if mock.UserHistoryFunc == nil {
		panic("historyReaderMock.UserHistoryFunc: method is nil but historyReader.UserHistory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input history.UserHistoryInput
	}{Ctx: ctx, Input: input}
	mock.lockUserHistory.Lock()
	mock.calls.UserHistory = append(mock.calls.UserHistory, callInfo)
	mock.lockUserHistory.Unlock()
	return mock.UserHistoryFunc(ctx, input)
}

func (mock *historyReaderMock) UserHistoryCalls() []struct {
	Ctx   context.Context
	Input history.UserHistoryInput
} {
	var calls []struct {
		Ctx   context.Context
		Input history.UserHistoryInput
	}
	mock.lockUserHistory.RLock()
	calls = mock.calls.UserHistory
	mock.lockUserHistory.RUnlock()
	return calls
}
