package domain

import "github.com/google/uuid"

// EditFilter contains filtering/pagination parameters for edit listings.
type EditFilter struct {
	EntityType  *EntityType
	EntityID    *uuid.UUID
	Field       *string
	SubmittedBy *uuid.UUID
	Status      *EditStatus
	Pinned      *bool

	// OldestFirst sorts by created_at ASC (moderation queue). The default is
	// newest first (history).
	OldestFirst bool

	Limit  int
	Offset int
}
