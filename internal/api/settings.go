package api

import (
	"net/http"

	"github.com/mathmentor/mathmentor/internal/store"
)

type settingsRequest struct {
	PreferredDifficulty int `json:"preferred_difficulty"`
	DailyGoal           int `json:"daily_goal"`
}

// handleGetSettings serves the learner's preferences, defaults when
// nothing has been stored yet.
func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.settings.Get(r.Context(), LearnerID(r.Context()))
	if err != nil {
		Error(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	JSON(w, http.StatusOK, s)
}

// handlePutSettings replaces the learner's preferences.
func (h *Handler) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := decode(r, &req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PreferredDifficulty < 1 || req.PreferredDifficulty > 3 {
		Error(w, http.StatusBadRequest, "preferred_difficulty must be between 1 and 3")
		return
	}
	if req.DailyGoal <= 0 {
		Error(w, http.StatusBadRequest, "daily_goal must be positive")
		return
	}

	data := store.SettingData{
		UserID:              LearnerID(r.Context()),
		PreferredDifficulty: req.PreferredDifficulty,
		DailyGoal:           req.DailyGoal,
	}
	if err := h.settings.Set(r.Context(), data); err != nil {
		Error(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	JSON(w, http.StatusOK, data)
}
