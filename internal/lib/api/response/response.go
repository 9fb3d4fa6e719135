// Package response writes the plain-text and JSON bodies of the HTTP API.
package response

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Bodies shared by several handlers.
const (
	BodyBadRequest  = "Bad Request"
	BodyMissingData = "Missing data"
	BodyInternal    = "Internal Server Error"
)

// RenderText writes msg as a text/plain body with the given status.
func RenderText(w http.ResponseWriter, status int, msg string) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)

	if _, err := io.WriteString(w, msg); err != nil {
		return fmt.Errorf("response.RenderText: %w", err)
	}

	return nil
}

// RenderJSON encodes v as the response body with the given status.
func RenderJSON(w http.ResponseWriter, status int, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("response.RenderJSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("response.RenderJSON: %w", err)
	}

	return nil
}
