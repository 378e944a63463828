package handler

import (
	"net/http"
	"strconv"

	"github.com/Disu2004/CineSense/internal/apperr"
	"github.com/Disu2004/CineSense/internal/service"

	"github.com/go-chi/chi/v5"
)

type PreferenceHandler struct {
	svc *service.PreferenceService
}

func NewPreferenceHandler(s *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{svc: s}
}

type savePreferenceRequest struct {
	UserID    int      `json:"userId" validate:"required,gt=0"`
	Industry  string   `json:"industry" validate:"required"`
	Genres    []string `json:"genres" validate:"required,min=1"`
	LastMovie string   `json:"lastMovie"`
}

// @Summary Guardar preferencias
// @Description No se valida que el userId exista: la preferencia es independiente
// @Tags preferences
// @Accept json
// @Produce json
// @Param body body savePreferenceRequest true "preferencias"
// @Success 201 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /user-preference [post]
func (h *PreferenceHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req savePreferenceRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err, "message", "Error saving preference")
		return
	}

	err := h.svc.Save(r.Context(), service.SavePreferenceData{
		UserID:    req.UserID,
		Industry:  req.Industry,
		Genres:    req.Genres,
		LastMovie: req.LastMovie,
	})
	if err != nil {
		respondError(w, err, "message", "Error saving preference")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "Preferences saved"})
}

// @Summary Preferencias del usuario
// @Tags preferences
// @Produce json
// @Param userId path int true "userId"
// @Success 200 {object} models.PreferenceDoc
// @Failure 404 {object} map[string]string
// @Router /preference/{userId} [get]
func (h *PreferenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(chi.URLParam(r, "userId"))

	p, err := h.svc.Get(r.Context(), userID)
	if err != nil {
		respondError(w, err, "error", "Server error")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// @Summary Fuente del catálogo (bollywood/hollywood)
// @Tags preferences
// @Produce plain
// @Param userId path int true "userId"
// @Success 200 {string} string
// @Failure 404 {string} string
// @Router /source/{userId} [get]
func (h *PreferenceHandler) GetSource(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(chi.URLParam(r, "userId"))

	src, err := h.svc.Source(r.Context(), userID)
	if err != nil {
		// esta ruta responde texto plano, también en el error
		http.Error(w, apperr.Message(err), apperr.Status(err))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(src))
}

type updatePreferenceRequest struct {
	Industry  *string   `json:"industry"`
	Genres    *[]string `json:"genres"`
	LastMovie *string   `json:"lastMovie"`
}

// @Summary Actualizar preferencias
// @Description Actualización parcial: los campos ausentes no se tocan
// @Tags preferences
// @Accept json
// @Produce json
// @Param userId path int true "userId"
// @Param body body updatePreferenceRequest true "campos a actualizar"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /update-preference/{userId} [put]
func (h *PreferenceHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(chi.URLParam(r, "userId"))

	var req updatePreferenceRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err, "message", "Server error")
		return
	}

	p, err := h.svc.Update(r.Context(), userID, service.UpdatePreferenceData{
		Industry:  req.Industry,
		Genres:    req.Genres,
		LastMovie: req.LastMovie,
	})
	if err != nil {
		respondError(w, err, "message", "Server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message":    "Preference updated successfully",
		"preference": p,
	})
}
