package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"github.com/heartmarshall/ballotwiki-backend/internal/service/history"
	"github.com/heartmarshall/ballotwiki-backend/internal/service/moderation"
)

type moderationService interface {
	ListPending(ctx context.Context, input moderation.QueueInput) (*moderation.QueuePage, error)
	Decide(ctx context.Context, input moderation.DecideInput) (*domain.Edit, error)
}

type editDescriber interface {
	Describe(ctx context.Context, edits []domain.Edit) ([]history.EditView, error)
}

// ModerationHandler serves the moderation queue endpoints.
type ModerationHandler struct {
	svc      moderationService
	describe editDescriber
	log      *slog.Logger
}

// NewModerationHandler creates a ModerationHandler.
func NewModerationHandler(svc moderationService, describe editDescriber, logger *slog.Logger) *ModerationHandler {
	return &ModerationHandler{
		svc:      svc,
		describe: describe,
		log:      logger.With("handler", "moderation"),
	}
}

type decisionRequest struct {
	Decision string  `json:"decision"`
	Note     *string `json:"note"`
}

// Queue handles GET /api/moderation/queue?entity_type=&pinned=&limit=&offset=.
func (h *ModerationHandler) Queue(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	input := moderation.QueueInput{
		EntityType: q.optEntityType("entity_type"),
		Pinned:     q.optBool("pinned"),
		Limit:      q.int("limit"),
		Offset:     q.int("offset"),
	}
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	page, err := h.svc.ListPending(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	views, err := h.describe.Describe(r.Context(), page.Items)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(views, page.Total))
}

// Decide handles POST /api/moderation/edits/{id}/decision.
func (h *ModerationHandler) Decide(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	id := q.pathUUID("id")
	if err := q.err(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resolved, err := h.svc.Decide(r.Context(), moderation.DecideInput{
		EditID:   id,
		Decision: domain.Decision(strings.ToUpper(req.Decision)),
		Note:     req.Note,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	views, err := h.describe.Describe(r.Context(), []domain.Edit{*resolved})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEditResponse(views[0]))
}
