package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"github.com/heartmarshall/ballotwiki-backend/internal/linediff"
	"github.com/heartmarshall/ballotwiki-backend/internal/service/history"
)

type editResponse struct {
	ID            uuid.UUID           `json:"id"`
	EntityType    domain.EntityType   `json:"entityType"`
	EntityID      uuid.UUID           `json:"entityId"`
	Field         string              `json:"field"`
	OldValue      string              `json:"oldValue"`
	NewValue      string              `json:"newValue"`
	Rationale     string              `json:"rationale"`
	Status        domain.EditStatus   `json:"status"`
	Pinned        bool                `json:"pinned"`
	SubmittedBy   domain.UserSummary  `json:"submittedBy"`
	ModeratedBy   *domain.UserSummary `json:"moderatedBy,omitempty"`
	ModeratorNote *string             `json:"moderatorNote,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	ReviewedAt    *time.Time          `json:"reviewedAt,omitempty"`
}

type editDetailResponse struct {
	editResponse
	Diff linediff.Diff `json:"diff"`
}

type pageResponse struct {
	Items []editResponse `json:"items"`
	Total int            `json:"total"`
}

type submitResponse struct {
	editResponse
	SupersededID *uuid.UUID `json:"supersededId,omitempty"`
}

type fieldsResponse struct {
	EntityType domain.EntityType `json:"entityType"`
	Fields     []string          `json:"fields"`
}

func toEditResponse(v history.EditView) editResponse {
	e := v.Edit
	return editResponse{
		ID:            e.ID,
		EntityType:    e.EntityType,
		EntityID:      e.EntityID,
		Field:         e.Field,
		OldValue:      e.OldValue,
		NewValue:      e.NewValue,
		Rationale:     e.Rationale,
		Status:        e.Status,
		Pinned:        e.Pinned,
		SubmittedBy:   v.Submitter,
		ModeratedBy:   v.Moderator,
		ModeratorNote: e.ModeratorNote,
		CreatedAt:     e.CreatedAt,
		ReviewedAt:    e.ReviewedAt,
	}
}

func toPageResponse(items []history.EditView, total int) pageResponse {
	out := pageResponse{Items: make([]editResponse, len(items)), Total: total}
	for i, v := range items {
		out.Items[i] = toEditResponse(v)
	}
	return out
}
