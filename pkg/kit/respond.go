package kit

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every failed request. Details is always
// emitted, as null when there is nothing to add.
type ErrorResponse struct {
	Message string `json:"message"`
	Details any    `json:"details"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, msg string, details any) {
	WriteJSON(w, status, ErrorResponse{
		Message: msg,
		Details: details,
	})
}
