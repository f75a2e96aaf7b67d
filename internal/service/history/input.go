package history

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// Pagination is embedded by every listing input.
type Pagination struct {
	Limit  int
	Offset int
}

func (p *Pagination) validate(errs []domain.FieldError) []domain.FieldError {
	if p.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if p.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("max %d", maxLimit)})
	}
	if p.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if p.Limit == 0 {
		p.Limit = defaultLimit
	}
	return errs
}

// EntityHistoryInput selects the edits of one entity, optionally one field.
type EntityHistoryInput struct {
	EntityType domain.EntityType
	EntityID   uuid.UUID
	Field      *string
	Pagination
}

func (i *EntityHistoryInput) Validate() error {
	var errs []domain.FieldError

	if !i.EntityType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "invalid value"})
	}
	if i.EntityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entity_id", Message: "required"})
	}
	if i.Field != nil && strings.TrimSpace(*i.Field) == "" {
		i.Field = nil
	}
	errs = i.Pagination.validate(errs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UserHistoryInput selects the edits submitted by one user.
type UserHistoryInput struct {
	PublicID string
	Status   *domain.EditStatus
	Pagination
}

func (i *UserHistoryInput) Validate() error {
	var errs []domain.FieldError

	if !domain.IsPublicID(i.PublicID) {
		errs = append(errs, domain.FieldError{Field: "public_id", Message: "invalid value"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	errs = i.Pagination.validate(errs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput selects edits across all entities.
type ListInput struct {
	Status     *domain.EditStatus
	EntityType *domain.EntityType
	Pinned     *bool
	Pagination
}

func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.EntityType != nil && !i.EntityType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "invalid value"})
	}
	errs = i.Pagination.validate(errs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
