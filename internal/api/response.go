package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"stocktrack/internal/inventory"
)

// envelope is the uniform response shape. Data carries the record(s) on
// success and the field-error map on validation failure; Count is only set
// on list responses.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// jsonData writes a success response with a payload and optional message.
func jsonData(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, envelope{Success: true, Data: data, Message: message})
}

// jsonList writes a success response for a collection, including its count.
func jsonList(w http.ResponseWriter, status int, data any, count int) {
	writeJSON(w, status, envelope{Success: true, Data: data, Count: &count})
}

// jsonError writes a failure response with a human-readable message.
func jsonError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Message: message})
}

// jsonFieldErrors reports validation failures with the per-field messages in
// place of the record payload.
func jsonFieldErrors(w http.ResponseWriter, errs inventory.FieldErrors) {
	writeJSON(w, http.StatusBadRequest, envelope{
		Success: false,
		Data:    errs,
		Message: "Please correct the highlighted fields",
	})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
