// Package response writes JSON bodies for HTTP handlers and middleware.
package response

import (
	"encoding/json"
	"net/http"
)

// Error is the body of every non-2xx response.
type Error struct {
	Message string `json:"message"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes {"message": message} with the given status.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Error{Message: message})
}
