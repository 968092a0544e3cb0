package middleware

import (
	"encoding/json"
	"net/http"
)

// errorBody is the wire shape shared by every error the service returns.
type errorBody struct {
	Status      string `json:"status"`
	Description string `json:"description"`
}

// writeError writes a structured error response.
// All middleware failures use the same body shape as the handlers.
func writeError(w http.ResponseWriter, status int, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Status: "error", Description: description})
}
