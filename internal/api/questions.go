package api

import (
	"errors"
	"net/http"

	"github.com/mathmentor/mathmentor/internal/chat"
	"github.com/mathmentor/mathmentor/internal/questiongen"
	"github.com/mathmentor/mathmentor/internal/questions"
	"github.com/mathmentor/mathmentor/internal/quiz"
)

// handleTopics serves the topic catalog for the assessment setup view.
func (h *Handler) handleTopics(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, map[string]any{"topics": questions.Topics()})
}

type generateRequest struct {
	Topic      string `json:"topic"`
	Difficulty int    `json:"difficulty"`

	// Count is a pointer so an explicit zero is distinguishable from
	// an omitted field.
	Count *int `json:"count"`
}

// weakAreasTopic selects weak-area practice instead of a single topic.
const weakAreasTopic = "weak_areas"

// handleGenerateQuestions produces a question set for an assessment.
// Malformed model output degrades inside the generator; only provider
// unavailability reaches the client, as a 502.
func (h *Handler) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decode(r, &req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	count := h.defaultCount
	if req.Count != nil {
		if *req.Count <= 0 {
			Error(w, http.StatusBadRequest, "count must be positive")
			return
		}
		count = *req.Count
	}

	if req.Topic == weakAreasTopic {
		h.generateWeakAreaQuestions(w, r, count)
		return
	}

	if !questions.KnownTopic(req.Topic) {
		Error(w, http.StatusBadRequest, "unknown topic")
		return
	}
	if req.Difficulty < 1 || req.Difficulty > 3 {
		Error(w, http.StatusBadRequest, "difficulty must be between 1 and 3")
		return
	}

	qs, err := h.generator.Generate(r.Context(), questiongen.GenerateInput{
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
		Count:      count,
	})
	if err != nil {
		Error(w, http.StatusBadGateway, "question generation unavailable")
		return
	}

	JSON(w, http.StatusOK, map[string]any{"questions": qs})
}

// generateWeakAreaQuestions assembles a practice session from the
// learner's weak topics, falling back to a random mix when nothing has
// been judged weak yet.
func (h *Handler) generateWeakAreaQuestions(w http.ResponseWriter, r *http.Request, count int) {
	weak, err := h.progress.WeakTopics(r.Context(), LearnerID(r.Context()))
	if err != nil {
		Error(w, http.StatusInternalServerError, "failed to load weak topics")
		return
	}
	if weak == nil {
		weak = []string{}
	}

	sess := quiz.NewSession(h.questions)
	started := false
	if len(weak) > 0 {
		switch err := sess.StartWeakAreas(weak, count); {
		case err == nil:
			started = true
		case errors.Is(err, quiz.ErrNoQuestions):
			// Fall back to random below.
		default:
			Error(w, http.StatusInternalServerError, "failed to assemble practice questions")
			return
		}
	}
	if !started {
		if err := sess.StartRandom(count); err != nil {
			Error(w, http.StatusInternalServerError, "failed to assemble practice questions")
			return
		}
	}

	JSON(w, http.StatusOK, map[string]any{
		"session_id":  sess.ID,
		"weak_topics": weak,
		"questions":   sess.Questions(),
	})
}

type chatRequest struct {
	Message string        `json:"message"`
	History []historyTurn `json:"conversationHistory"`
}

type historyTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`

	// IsUser predates the role field in the client payload; it is
	// honored only when role is absent.
	IsUser bool `json:"isUser"`
}

func (t historyTurn) fromUser() bool {
	if t.Role != "" {
		return t.Role == "user"
	}
	return t.IsUser
}

// handleChat resolves one tutoring message. Failures map to distinct
// statuses so the client can tell "try again later" from "rephrase".
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decode(r, &req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	history := make([]chat.Message, 0, len(req.History))
	for _, turn := range req.History {
		history = append(history, chat.Message{Content: turn.Content, FromUser: turn.fromUser()})
	}

	// Remote resolution is serialized per learner, not globally.
	ctx := chat.WithConversation(r.Context(), LearnerID(r.Context()))
	text, err := h.resolver.Resolve(ctx, req.Message, history)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
			Error(w, http.StatusBadRequest, "message is empty")
		case errors.Is(err, chat.ErrBusy):
			Error(w, http.StatusTooManyRequests, "a response is already in progress")
		case errors.Is(err, chat.ErrTimeout):
			Error(w, http.StatusGatewayTimeout, "tutor response timed out")
		default:
			Error(w, http.StatusBadGateway, "tutor is unavailable")
		}
		return
	}

	JSON(w, http.StatusOK, map[string]string{"response": text})
}
