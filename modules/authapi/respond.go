package authapi

import (
	"encoding/json"
	"net/http"
)

// respondJSON writes the payload with the given status. Encoding errors are
// unrecoverable at this point since the header is already written.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError writes a minimal error payload.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
