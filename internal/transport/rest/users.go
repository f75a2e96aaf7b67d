package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

type profileReader interface {
	Profile(ctx context.Context, publicID string) (*domain.UserSummary, error)
}

// UserHandler serves public contributor profiles.
type UserHandler struct {
	users profileReader
	log   *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users profileReader, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, log: logger.With("handler", "user")}
}

// Profile handles GET /api/users/{publicId}.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	summary, err := h.users.Profile(r.Context(), r.PathValue("publicId"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
