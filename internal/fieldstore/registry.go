// Package fieldstore maps (entity type, field name) pairs to the codec that
// interprets a field's payload and the accessor that reads and writes it.
//
// Adding an editable field means adding a table entry; the edit and
// moderation services never branch on what kind of field they handle.
package fieldstore

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

// Accessor reads and writes one field of one entity type.
// Get returns domain.ErrNotFound when the entity does not exist.
// Set runs inside the caller's transaction (carried in ctx).
type Accessor interface {
	Get(ctx context.Context, entityID uuid.UUID) (string, error)
	Set(ctx context.Context, entityID uuid.UUID, value string) error
}

// Field is a registered editable field.
type Field struct {
	EntityType domain.EntityType
	Name       string
	Codec      Codec
	Accessor   Accessor
}

// Current reads the live value in canonical form. A stored value the codec
// cannot parse is returned as-is.
func (f Field) Current(ctx context.Context, entityID uuid.UUID) (string, error) {
	raw, err := f.Accessor.Get(ctx, entityID)
	if err != nil {
		return "", err
	}
	canon, err := f.Codec.Canonical(raw)
	if err != nil {
		return raw, nil
	}
	return canon, nil
}

// Apply writes value, which must already be canonical.
func (f Field) Apply(ctx context.Context, entityID uuid.UUID, value string) error {
	if err := f.Accessor.Set(ctx, entityID, value); err != nil {
		return fmt.Errorf("apply %s.%s: %w", f.EntityType, f.Name, err)
	}
	return nil
}

type fieldKey struct {
	entityType domain.EntityType
	name       string
}

// Registry is the lookup table of editable fields. It is populated at
// startup and read-only afterwards.
type Registry struct {
	fields map[fieldKey]Field
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{fields: make(map[fieldKey]Field)}
}

// Register adds a field. It panics on an invalid entity type or a duplicate
// entry, which are programming errors in the startup wiring.
func (r *Registry) Register(entityType domain.EntityType, name string, codec Codec, accessor Accessor) {
	if !entityType.IsValid() {
		panic(fmt.Sprintf("fieldstore: invalid entity type %q", entityType))
	}
	key := fieldKey{entityType: entityType, name: name}
	if _, dup := r.fields[key]; dup {
		panic(fmt.Sprintf("fieldstore: duplicate field %s.%s", entityType, name))
	}
	r.fields[key] = Field{
		EntityType: entityType,
		Name:       name,
		Codec:      codec,
		Accessor:   accessor,
	}
}

// Lookup returns the field registered for (entityType, name).
// Unknown entity types and fields yield a *domain.ValidationError.
func (r *Registry) Lookup(entityType domain.EntityType, name string) (Field, error) {
	if !r.Supports(entityType) {
		return Field{}, domain.NewValidationError("entity_type", fmt.Sprintf("unsupported entity type %q", entityType))
	}
	f, ok := r.fields[fieldKey{entityType: entityType, name: name}]
	if !ok {
		return Field{}, domain.NewValidationError("field", fmt.Sprintf("%q is not an editable field of %s", name, entityType))
	}
	return f, nil
}

// Supports reports whether any field is registered for entityType.
func (r *Registry) Supports(entityType domain.EntityType) bool {
	for k := range r.fields {
		if k.entityType == entityType {
			return true
		}
	}
	return false
}

// Fields returns the sorted field names registered for entityType.
func (r *Registry) Fields(entityType domain.EntityType) []string {
	var names []string
	for k := range r.fields {
		if k.entityType == entityType {
			names = append(names, k.name)
		}
	}
	slices.Sort(names)
	return names
}
