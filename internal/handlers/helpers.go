package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/benvon/identity-gateway/internal/outcome"
)

// writeOutcome turns a normalized outcome into the transport response.
// Success bodies are the provider's data verbatim; failures are the uniform
// {status, message} shape.
func writeOutcome(w http.ResponseWriter, o outcome.Outcome) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(o.HTTPStatus)

	var body any
	if o.OK {
		body = o.Data
		if body == nil {
			body = map[string]any{}
		}
	} else {
		body = map[string]any{
			"status":  o.Label,
			"message": o.Message,
		}
	}

	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeBadRequest reports a request-shape problem before any provider call.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeOutcome(w, outcome.Failure(http.StatusBadRequest, "Bad Request", message))
}
