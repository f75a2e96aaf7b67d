package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

// rateLimitRetryAfter is sent with 429s; both limiter windows are one minute.
const rateLimitRetryAfter = "60"

// errorResponse is the body of every non-2xx API response.
type errorResponse struct {
	Error  string              `json:"error"`
	Code   string              `json:"code,omitempty"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

var errorStatus = map[string]int{
	"validation":       http.StatusBadRequest,
	"unauthorized":     http.StatusUnauthorized,
	"forbidden":        http.StatusForbidden,
	"not_found":        http.StatusNotFound,
	"stale_edit":       http.StatusConflict,
	"already_resolved": http.StatusConflict,
	"already_exists":   http.StatusConflict,
	"conflict":         http.StatusConflict,
	"rate_limited":     http.StatusTooManyRequests,
}

var errorMessage = map[string]string{
	"unauthorized":     "unauthorized",
	"forbidden":        "forbidden",
	"not_found":        "not found",
	"stale_edit":       "the field changed since this edit was proposed",
	"already_resolved": "the edit is no longer pending",
	"already_exists":   "conflict",
	"conflict":         "conflict",
	"rate_limited":     "too many submissions, try again later",
}

// handleError writes the response for a service error. Errors that wrap no
// domain sentinel are logged and reported as a bare 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	code := domain.ErrorCode(err)
	status, ok := errorStatus[code]
	if !ok {
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := errorResponse{Error: errorMessage[code], Code: code}
	if code == "validation" {
		var ve *domain.ValidationError
		resp.Error = "validation failed"
		if errors.As(err, &ve) {
			resp.Fields = ve.Errors
		} else {
			// Constraint violations carry table and id details.
			log.WarnContext(r.Context(), "validation error without fields", slog.String("error", err.Error()))
		}
	}
	if status == http.StatusTooManyRequests {
		w.Header().Set("Retry-After", rateLimitRetryAfter)
	}
	writeJSON(w, status, resp)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
