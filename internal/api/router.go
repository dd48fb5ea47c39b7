package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// NewRouter assembles the full HTTP surface. The health check sits
// outside the identity layer so probes never mint cookies.
func NewRouter(h *Handler, identity *Identity) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(CORS([]string{"*"}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(identity.Middleware)

		r.Get("/topics", h.handleTopics)
		r.Post("/generate-questions", h.handleGenerateQuestions)
		r.Post("/chat", h.handleChat)
		r.Post("/assessments", h.handleRecordAssessment)
		r.Get("/assessments/{sessionID}", h.handleAssessmentDetail)
		r.Get("/progress", h.handleProgress)
		r.Get("/weak-topics", h.handleWeakTopics)
		r.Get("/settings", h.handleGetSettings)
		r.Put("/settings", h.handlePutSettings)
	})

	return r
}
