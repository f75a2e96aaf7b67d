package moderation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

const (
	defaultQueueLimit = 50
	maxQueueLimit     = 200
)

// QueueInput filters and pages the pending queue.
type QueueInput struct {
	EntityType *domain.EntityType
	Pinned     *bool
	Limit      int
	Offset     int
}

// Validate checks the input and fills in the default page size.
func (i *QueueInput) Validate() error {
	var errs []domain.FieldError

	if i.EntityType != nil && !i.EntityType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "invalid value"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > maxQueueLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("max %d", maxQueueLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}

	if i.Limit == 0 {
		i.Limit = defaultQueueLimit
	}
	return nil
}

// DecideInput is a moderator's verdict on one edit.
type DecideInput struct {
	EditID   uuid.UUID
	Decision domain.Decision
	Note     *string
}

// Validate checks the input against maxNote and normalises a blank note to nil.
func (i *DecideInput) Validate(maxNote int) error {
	var errs []domain.FieldError

	if i.EditID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "edit_id", Message: "required"})
	}
	if !i.Decision.IsValid() {
		errs = append(errs, domain.FieldError{Field: "decision", Message: "must be APPROVED or REJECTED"})
	}

	if i.Note != nil {
		note := strings.TrimSpace(*i.Note)
		switch {
		case note == "":
			i.Note = nil
		case utf8.RuneCountInString(note) > maxNote:
			errs = append(errs, domain.FieldError{Field: "note", Message: fmt.Sprintf("max %d characters", maxNote)})
		default:
			i.Note = &note
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
