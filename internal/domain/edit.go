package domain

import (
	"time"

	"github.com/google/uuid"
)

// Edit is an immutable proposal to change one field of one entity.
// Status (and the review columns set together with it) is the only part
// that changes after creation.
type Edit struct {
	ID            uuid.UUID
	EntityType    EntityType
	EntityID      uuid.UUID
	Field         string
	OldValue      string
	NewValue      string
	Rationale     string
	Status        EditStatus
	Pinned        bool
	SubmittedBy   uuid.UUID
	ModeratedBy   *uuid.UUID
	ModeratorNote *string
	CreatedAt     time.Time
	ReviewedAt    *time.Time
}

// IsPending returns true while the edit awaits a decision.
func (e *Edit) IsPending() bool {
	return e.Status == EditStatusPending
}

// Resolution is the terminal review outcome written by a moderator.
type Resolution struct {
	Status      EditStatus
	ModeratedBy uuid.UUID
	Note        *string
	ReviewedAt  time.Time
}
