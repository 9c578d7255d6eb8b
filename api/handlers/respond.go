// ABOUTME: Shared response helpers for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"encoding/json"
	"net/http"

	"prixmalin-api/api/dto/responses"
	coreerrors "prixmalin-api/core/errors"
)

// writeJSON serializes body with the given status code.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps an error to its HTTP status and writes the standard
// error body.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if coreerrors.IsValidation(err) {
		status = http.StatusBadRequest
	}

	writeJSON(w, status, responses.ErrorResponse{Error: err.Error()})
}
