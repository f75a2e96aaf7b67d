package rest

import (
	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"sync"
)

var _ fieldCatalog = &fieldCatalogMock{}

type fieldCatalogMock struct {
	FieldsFunc func(entityType domain.EntityType) []string

	calls struct {
		Fields []struct {
			EntityType domain.EntityType
		}
	}
	lockFields sync.RWMutex
}

func (mock *fieldCatalogMock) Fields(entityType domain.EntityType) []string {
	if mock.FieldsFunc == nil {
		panic("fieldCatalogMock.FieldsFunc: method is nil but fieldCatalog.Fields was just called")
	}
	callInfo := struct {
		EntityType domain.EntityType
	}{EntityType: entityType}
	mock.lockFields.Lock()
	mock.calls.Fields = append(mock.calls.Fields, callInfo)
	mock.lockFields.Unlock()
	return mock.FieldsFunc(entityType)
}

func (mock *fieldCatalogMock) FieldsCalls() []struct {
	EntityType domain.EntityType
} {
	var calls []struct {
		EntityType domain.EntityType
	}
	mock.lockFields.RLock()
	calls = mock.calls.Fields
	mock.lockFields.RUnlock()
	return calls
}
