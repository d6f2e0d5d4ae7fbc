// Package api provides HTTP handlers for the Counter-Pose API.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rptlabs/counterpose/internal/store"
	"github.com/rptlabs/counterpose/internal/workflow"
)

// Handler provides common handler utilities.
type Handler struct {
	svc *workflow.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *workflow.Service) *Handler {
	return &Handler{svc: svc}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// WorkflowError maps workflow error taxonomy onto HTTP status codes:
// unknown session to 404, invalid input to 400, anything else to 500.
func WorkflowError(w http.ResponseWriter, err error) {
	var invalid *workflow.InvalidInputError
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.As(err, &invalid):
		Error(w, http.StatusBadRequest, invalid.Reason)
	default:
		Error(w, http.StatusInternalServerError, err.Error())
	}
}
