// Package handlers contains the HTTP layer of the CMS API
package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// BaseHandler carries the pieces every handler needs. Concrete handlers
// embed it and use the respond helpers so all responses share one shape.
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON writes data as a JSON response with the given status code.
// Encoding failures after the header is written can only be logged.
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response",
			zap.Int("status", status),
			zap.Error(err),
		)
	}
}

// RespondError writes a JSON error body of the form {"error": message}
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}
