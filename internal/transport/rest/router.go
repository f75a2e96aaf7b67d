package rest

import (
	"net/http"

	"github.com/heartmarshall/ballotwiki-backend/internal/transport/middleware"
)

// Handlers groups everything NewRouter mounts. Metrics may be nil.
type Handlers struct {
	Health      *HealthHandler
	Edits       *EditHandler
	Moderation  *ModerationHandler
	Users       *UserHandler
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter builds the route table. Cross-cutting middleware is applied by
// the caller around the returned mux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	// Probes
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET "+h.MetricsPath, h.Metrics)
	}

	// Edits and audit trails
	mux.HandleFunc("POST /api/edits", h.Edits.Submit)
	mux.HandleFunc("GET /api/edits", h.Edits.List)
	mux.HandleFunc("GET /api/edits/{id}", h.Edits.Get)
	mux.HandleFunc("GET /api/entities/{type}/fields", h.Edits.Fields)
	mux.HandleFunc("GET /api/entities/{type}/{id}/edits", h.Edits.EntityHistory)
	mux.HandleFunc("GET /api/users/{publicId}", h.Users.Profile)
	mux.HandleFunc("GET /api/users/{publicId}/edits", h.Edits.UserHistory)

	// Moderation
	mux.Handle("GET /api/moderation/queue", middleware.RequireModerator(http.HandlerFunc(h.Moderation.Queue)))
	mux.Handle("POST /api/moderation/edits/{id}/decision", middleware.RequireModerator(http.HandlerFunc(h.Moderation.Decide)))

	return mux
}
