package middleware

import (
	"encoding/json"
	"net/http"
)

// errorBody matches the JSON error shape written by the REST handlers so
// clients parse rejections from middleware the same way.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Error: message, Code: code}) //nolint:errcheck
}
