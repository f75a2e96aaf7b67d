package fieldstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

// MemoryAccessor is an Accessor backed by a map, for tests that exercise the
// edit lifecycle without PostgreSQL.
type MemoryAccessor struct {
	mu     sync.RWMutex
	values map[uuid.UUID]string
}

// NewMemoryAccessor creates an accessor seeded with values.
func NewMemoryAccessor(values map[uuid.UUID]string) *MemoryAccessor {
	m := &MemoryAccessor{values: make(map[uuid.UUID]string, len(values))}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

func (m *MemoryAccessor) Get(_ context.Context, entityID uuid.UUID) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[entityID]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

func (m *MemoryAccessor) Set(_ context.Context, entityID uuid.UUID, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.values[entityID]; !ok {
		return domain.ErrNotFound
	}
	m.values[entityID] = value
	return nil
}
