package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/ballotwiki-backend/pkg/ctxutil"
)

// CSRFHeader carries the token minted by the session layer.
const CSRFHeader = "X-CSRF-Token"

type csrfVerifier interface {
	Verify(userID uuid.UUID, token string) error
}

// CSRF requires a valid token on state-changing requests made by an
// authenticated user. Anonymous requests pass; handlers reject them with 401.
func CSRF(verifier csrfVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isSafeMethod(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			userID, ok := ctxutil.UserIDFromCtx(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			if err := verifier.Verify(userID, r.Header.Get(CSRFHeader)); err != nil {
				writeError(w, http.StatusForbidden, "csrf", "invalid csrf token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}
