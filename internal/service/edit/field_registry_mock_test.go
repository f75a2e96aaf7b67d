package edit

import (
	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"github.com/heartmarshall/ballotwiki-backend/internal/fieldstore"
	"sync"
)

var _ fieldRegistry = &fieldRegistryMock{}

type fieldRegistryMock struct {
	LookupFunc func(entityType domain.EntityType, name string) (fieldstore.Field, error)

	calls struct {
		Lookup []struct {
			EntityType domain.EntityType
			Name       string
		}
	}
	lockLookup sync.RWMutex
}

func (mock *fieldRegistryMock) Lookup(entityType domain.EntityType, name string) (fieldstore.Field, error) {
	if mock.LookupFunc == nil {
		panic("fieldRegistryMock.LookupFunc: method is nil but fieldRegistry.Lookup was just called")
	}
	callInfo := struct {
		EntityType domain.EntityType
		Name       string
	}{EntityType: entityType, Name: name}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, callInfo)
	mock.lockLookup.Unlock()
	return mock.LookupFunc(entityType, name)
}

func (mock *fieldRegistryMock) LookupCalls() []struct {
	EntityType domain.EntityType
	Name       string
} {
	var calls []struct {
		EntityType domain.EntityType
		Name       string
	}
	mock.lockLookup.RLock()
	calls = mock.calls.Lookup
	mock.lockLookup.RUnlock()
	return calls
}
