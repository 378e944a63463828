package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Disu2004/CineSense/internal/apperr"
	"github.com/Disu2004/CineSense/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// @Summary Recomendaciones por contenido
// @Description Score coseno sobre géneros + muestra aleatoria de hasta 30
// @Tags recommend
// @Produce json
// @Param userId path int true "userId"
// @Success 200 {object} models.RecommendResult
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /recommend/{userId} [get]
func (h *RecommendHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(chi.URLParam(r, "userId"))

	result, err := h.svc.Recommend(r.Context(), userID)
	if err != nil {
		respondError(w, err, "message", "Internal Server Error")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones con progreso (WebSocket)
// @Description Envía start, un mensaje por etapa y el resultado final
// @Tags recommend
// @Produce json
// @Param userId path int true "userId"
// @Success 200 {object} map[string]interface{}
// @Router /ws/recommend/{userId} [get]
func (h *RecommendHandler) GetWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", http.StatusBadRequest)
		return
	}
	defer conn.Close()

	userID, _ := strconv.Atoi(chi.URLParam(r, "userId"))

	_ = conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, iniciando cálculo…",
	})

	result, err := h.svc.RecommendWithProgress(r.Context(), userID, func(stage string, count int) {
		_ = conn.WriteJSON(map[string]any{
			"type":  "progress",
			"stage": stage,
			"count": count,
		})
	})
	if err != nil {
		_ = conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": apperr.Message(err),
		})
		return
	}

	_ = conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"userId":      userID,
		"recommended": result.Recommended,
		"reason":      result.Reason,
		"generatedAt": time.Now(),
	})
}
