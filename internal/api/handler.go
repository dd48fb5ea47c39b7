// Package api provides the HTTP surface: question generation, chat
// tutoring, assessment recording, and the progress dashboard.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/mathmentor/mathmentor/internal/chat"
	"github.com/mathmentor/mathmentor/internal/progress"
	"github.com/mathmentor/mathmentor/internal/questiongen"
	"github.com/mathmentor/mathmentor/internal/questions"
	"github.com/mathmentor/mathmentor/internal/store"
)

// Handler holds the endpoint dependencies.
type Handler struct {
	questions *questions.Store
	generator questiongen.Generator
	resolver  chat.Resolver
	progress  *progress.Service
	settings  store.SettingsRepo

	// defaultCount is the question count used when a generation
	// request omits it.
	defaultCount int
}

// NewHandler creates a Handler with common dependencies.
func NewHandler(qs *questions.Store, gen questiongen.Generator, resolver chat.Resolver, prog *progress.Service, settings store.SettingsRepo, defaultCount int) *Handler {
	if defaultCount <= 0 {
		defaultCount = 5
	}
	return &Handler{
		questions:    qs,
		generator:    gen,
		resolver:     resolver,
		progress:     prog,
		settings:     settings,
		defaultCount: defaultCount,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
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

// decode parses the request body into v.
func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
