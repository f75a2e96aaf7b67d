package middleware

import (
	"net/http"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
	"github.com/heartmarshall/ballotwiki-backend/pkg/ctxutil"
)

// RequireModerator rejects requests whose token role cannot moderate.
// It gates read-only moderator views; Decide re-checks the stored role.
func RequireModerator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}
		if !domain.UserRole(ctxutil.RoleFromCtx(r.Context())).CanModerate() {
			writeError(w, http.StatusForbidden, "forbidden", "moderator role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
