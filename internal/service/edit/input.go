package edit

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/ballotwiki-backend/internal/config"
	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

// SubmitInput holds the parameters for proposing a field change.
type SubmitInput struct {
	EntityType domain.EntityType
	EntityID   uuid.UUID
	Field      string
	NewValue   string
	Rationale  string
}

// Validate checks all fields against the configured limits and collects all errors.
func (i SubmitInput) Validate(cfg config.ModerationConfig) error {
	var errs []domain.FieldError

	if !i.EntityType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "invalid value"})
	}
	if i.EntityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entity_id", Message: "required"})
	}
	if strings.TrimSpace(i.Field) == "" {
		errs = append(errs, domain.FieldError{Field: "field", Message: "required"})
	}

	rationale := strings.TrimSpace(i.Rationale)
	if rationale == "" {
		errs = append(errs, domain.FieldError{Field: "rationale", Message: "required"})
	}
	if utf8.RuneCountInString(rationale) > cfg.MaxRationaleLength {
		errs = append(errs, domain.FieldError{Field: "rationale", Message: fmt.Sprintf("max %d characters", cfg.MaxRationaleLength)})
	}

	if utf8.RuneCountInString(i.NewValue) > cfg.MaxValueLength {
		errs = append(errs, domain.FieldError{Field: "new_value", Message: fmt.Sprintf("max %d characters", cfg.MaxValueLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
