package user

import (
	"strings"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

const maxNameLength = 255

// CreateInput holds parameters for account creation.
type CreateInput struct {
	Name string
	Role domain.UserRole
}

// Validate trims the name and defaults an empty role to COMMUNITY.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	i.Name = strings.TrimSpace(i.Name)
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.Role == "" {
		i.Role = domain.UserRoleCommunity
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetRoleInput holds parameters for a role change.
type SetRoleInput struct {
	PublicID string
	Role     domain.UserRole
}

// Validate checks the public id shape and the role.
func (i SetRoleInput) Validate() error {
	var errs []domain.FieldError

	if !domain.IsPublicID(i.PublicID) {
		errs = append(errs, domain.FieldError{Field: "public_id", Message: "invalid value"})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
