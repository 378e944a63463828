package handler

import (
	"net/http"

	"github.com/Disu2004/CineSense/internal/service"
)

type MoodHandler struct {
	svc *service.MoodService
}

func NewMoodHandler(s *service.MoodService) *MoodHandler {
	return &MoodHandler{svc: s}
}

type detectMoodRequest struct {
	Mood        string `json:"mood" validate:"required"`
	Weather     string `json:"weather"`
	MovieSource string `json:"movie_source"`
}

// @Summary Películas por ánimo y clima
// @Description El ánimo llega ya detectado; ánimos desconocidos caen a neutral
// @Tags mood
// @Accept json
// @Produce json
// @Param body body detectMoodRequest true "ánimo, clima y fuente"
// @Success 200 {object} models.MoodResult
// @Failure 500 {object} map[string]string
// @Router /detect-mood [post]
func (h *MoodHandler) DetectMood(w http.ResponseWriter, r *http.Request) {
	var req detectMoodRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err, "error", "Mood detection failed")
		return
	}

	result, err := h.svc.DetectMood(r.Context(), service.MoodRequest{
		Mood:        req.Mood,
		Weather:     req.Weather,
		MovieSource: req.MovieSource,
	})
	if err != nil {
		respondError(w, err, "error", "Mood detection failed")
		return
	}
	respondJSON(w, http.StatusOK, result)
}
