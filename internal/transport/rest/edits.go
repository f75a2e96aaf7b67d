package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"github.com/heartmarshall/ballotwiki-backend/internal/service/edit"
	"github.com/heartmarshall/ballotwiki-backend/internal/service/history"
)

type editSubmitter interface {
	Submit(ctx context.Context, input edit.SubmitInput) (*edit.SubmitResult, error)
}

type historyReader interface {
	Describe(ctx context.Context, edits []domain.Edit) ([]history.EditView, error)
	GetEdit(ctx context.Context, id uuid.UUID) (*history.EditDetail, error)
	ListEdits(ctx context.Context, input history.ListInput) (*history.Page, error)
	EntityHistory(ctx context.Context, input history.EntityHistoryInput) (*history.Page, error)
	UserHistory(ctx context.Context, input history.UserHistoryInput) (*history.Page, error)
}

type fieldCatalog interface {
	Fields(entityType domain.EntityType) []string
}

// EditHandler serves edit submission and audit trail endpoints.
type EditHandler struct {
	edits   editSubmitter
	history historyReader
	fields  fieldCatalog
	log     *slog.Logger
}

// NewEditHandler creates an EditHandler.
func NewEditHandler(edits editSubmitter, history historyReader, fields fieldCatalog, logger *slog.Logger) *EditHandler {
	return &EditHandler{
		edits:   edits,
		history: history,
		fields:  fields,
		log:     logger.With("handler", "edit"),
	}
}

type submitRequest struct {
	EntityType string    `json:"entityType"`
	EntityID   uuid.UUID `json:"entityId"`
	Field      string    `json:"field"`
	NewValue   string    `json:"newValue"`
	Rationale  string    `json:"rationale"`
}

// Submit handles POST /api/edits.
func (h *EditHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.edits.Submit(r.Context(), edit.SubmitInput{
		EntityType: domain.EntityType(strings.ToUpper(req.EntityType)),
		EntityID:   req.EntityID,
		Field:      req.Field,
		NewValue:   req.NewValue,
		Rationale:  req.Rationale,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	views, err := h.history.Describe(r.Context(), []domain.Edit{*result.Edit})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := submitResponse{editResponse: toEditResponse(views[0])}
	if result.Superseded != nil {
		resp.SupersededID = &result.Superseded.ID
	}
	writeJSON(w, http.StatusCreated, resp)
}

// List handles GET /api/edits?status=&entity_type=&pinned=&limit=&offset=.
func (h *EditHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	input := history.ListInput{
		Status:     q.optStatus("status"),
		EntityType: q.optEntityType("entity_type"),
		Pinned:     q.optBool("pinned"),
		Pagination: history.Pagination{Limit: q.int("limit"), Offset: q.int("offset")},
	}
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	page, err := h.history.ListEdits(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(page.Items, page.Total))
}

// Get handles GET /api/edits/{id}.
func (h *EditHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	id := q.pathUUID("id")
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	detail, err := h.history.GetEdit(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, editDetailResponse{
		editResponse: toEditResponse(detail.EditView),
		Diff:         detail.Diff,
	})
}

// EntityHistory handles GET /api/entities/{type}/{id}/edits?field=.
func (h *EditHandler) EntityHistory(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	input := history.EntityHistoryInput{
		EntityType: q.pathEntityType("type"),
		EntityID:   q.pathUUID("id"),
		Field:      q.optString("field"),
		Pagination: history.Pagination{Limit: q.int("limit"), Offset: q.int("offset")},
	}
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	page, err := h.history.EntityHistory(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(page.Items, page.Total))
}

// UserHistory handles GET /api/users/{publicId}/edits?status=.
func (h *EditHandler) UserHistory(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	input := history.UserHistoryInput{
		PublicID:   r.PathValue("publicId"),
		Status:     q.optStatus("status"),
		Pagination: history.Pagination{Limit: q.int("limit"), Offset: q.int("offset")},
	}
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	page, err := h.history.UserHistory(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(page.Items, page.Total))
}

// Fields handles GET /api/entities/{type}/fields.
func (h *EditHandler) Fields(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	et := q.pathEntityType("type")
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	fields := h.fields.Fields(et)
	if fields == nil {
		fields = []string{}
	}
	writeJSON(w, http.StatusOK, fieldsResponse{EntityType: et, Fields: fields})
}
