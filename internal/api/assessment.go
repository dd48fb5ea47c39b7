package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mathmentor/mathmentor/internal/progress"
	"github.com/mathmentor/mathmentor/internal/questions"
	"github.com/mathmentor/mathmentor/internal/quiz"
	"github.com/mathmentor/mathmentor/internal/store"
)

type assessmentRequest struct {
	SessionID  string `json:"session_id"`
	Topic      string `json:"topic"`
	Difficulty int    `json:"difficulty"`

	Questions []submittedQuestion `json:"questions"`

	// Answers holds the raw submissions by question index; missing or
	// empty entries grade as unanswered.
	Answers []string `json:"answers"`

	DurationSeconds int   `json:"duration_seconds"`
	QuestionSeconds []int `json:"question_seconds"`
}

type submittedQuestion struct {
	Prompt        string `json:"question"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

// handleRecordAssessment grades a completed client-side session and
// persists it for the cookie identity. Grading happens server-side
// from the raw answers; the client never reports its own verdicts.
func (h *Handler) handleRecordAssessment(w http.ResponseWriter, r *http.Request) {
	var req assessmentRequest
	if err := decode(r, &req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Questions) == 0 {
		Error(w, http.StatusBadRequest, "questions are required")
		return
	}
	if req.Topic == "" {
		Error(w, http.StatusBadRequest, "topic is required")
		return
	}
	if len(req.Answers) > len(req.Questions) {
		Error(w, http.StatusBadRequest, "more answers than questions")
		return
	}

	qs := make([]questions.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		if q.Prompt == "" || q.CorrectAnswer == "" {
			Error(w, http.StatusBadRequest, "every question needs a prompt and a correct answer")
			return
		}
		qs = append(qs, questions.Question{
			Prompt:        q.Prompt,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	report := quiz.Grade(qs, req.Answers)

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	userID := LearnerID(r.Context())
	earned, err := h.progress.RecordAssessment(r.Context(), userID, progress.CompletedAssessment{
		SessionID:       sessionID,
		Topic:           req.Topic,
		Difficulty:      req.Difficulty,
		Report:          report,
		DurationSeconds: req.DurationSeconds,
		QuestionSeconds: req.QuestionSeconds,
	})
	if err != nil {
		Error(w, http.StatusInternalServerError, "failed to record assessment")
		return
	}

	if earned == nil {
		earned = []store.AchievementData{}
	}
	JSON(w, http.StatusCreated, map[string]any{
		"session_id":   sessionID,
		"report":       report,
		"achievements": earned,
	})
}

// handleAssessmentDetail serves one recorded session with its
// per-question responses, for the mistake-review view. Sessions are
// only visible to the identity that recorded them.
func (h *Handler) handleAssessmentDetail(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	rec, err := h.progress.Assessment(r.Context(), LearnerID(r.Context()), sessionID)
	if err != nil {
		Error(w, http.StatusInternalServerError, "failed to load assessment")
		return
	}
	if rec == nil {
		Error(w, http.StatusNotFound, "assessment not found")
		return
	}
	JSON(w, http.StatusOK, rec)
}

// handleWeakTopics lists the topics the learner should practice next.
func (h *Handler) handleWeakTopics(w http.ResponseWriter, r *http.Request) {
	weak, err := h.progress.WeakTopics(r.Context(), LearnerID(r.Context()))
	if err != nil {
		Error(w, http.StatusInternalServerError, "failed to load weak topics")
		return
	}
	if weak == nil {
		weak = []string{}
	}
	JSON(w, http.StatusOK, map[string]any{"weak_topics": weak})
}

// handleProgress serves the dashboard summary for the cookie identity.
func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	sum, err := h.progress.Summary(r.Context(), LearnerID(r.Context()))
	if err != nil {
		Error(w, http.StatusInternalServerError, "failed to load progress")
		return
	}
	JSON(w, http.StatusOK, sum)
}
