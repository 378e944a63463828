package handler

import (
	"net/http"
	"strconv"

	"github.com/Disu2004/CineSense/internal/service"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type registerRequest struct {
	FirstName string `json:"firstname" validate:"required"`
	LastName  string `json:"lastname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	MobileNo  string `json:"mobileno" validate:"required"`
	Location  string `json:"location"`
}

// @Summary Registro
// @Description Crea un usuario nuevo con userId autoincremental
// @Tags auth
// @Accept json
// @Produce json
// @Param body body registerRequest true "datos"
// @Success 201 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err, "message", "Server error during registration")
		return
	}

	userID, err := h.svc.Register(r.Context(), service.RegisterUserData{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		MobileNo:  req.MobileNo,
		Location:  req.Location,
	})
	if err != nil {
		respondError(w, err, "message", "Server error during registration")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Registration successful",
		"userId":  userID,
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// @Summary Login
// @Description Credenciales en texto plano, como el backend original
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "credenciales"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err, "message", "Server error")
		return
	}

	u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err, "message", "Server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message":  "Login successful",
		"redirect": "/",
		"userId":   u.UserID,
	})
}

// @Summary Datos del usuario
// @Tags users
// @Produce json
// @Param userId path int true "userId"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /user-preference/{userId} [get]
func (h *AuthHandler) GetUserInfo(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(chi.URLParam(r, "userId"))

	u, err := h.svc.GetUser(r.Context(), userID)
	if err != nil {
		respondError(w, err, "error", "Server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"firstname": u.FirstName,
		"lastname":  u.LastName,
		"email":     u.Email,
		"mobileno":  u.MobileNo,
		"location":  u.Location,
	})
}

type updateUserRequest struct {
	FirstName *string `json:"firstname"`
	LastName  *string `json:"lastname"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password"`
	MobileNo  *string `json:"mobileno"`
	Location  *string `json:"location"`
}

// @Summary Actualizar usuario
// @Description Actualización parcial: los campos ausentes no se tocan
// @Tags users
// @Accept json
// @Produce json
// @Param userId path int true "userId"
// @Param body body updateUserRequest true "campos a actualizar"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /update-user/{userId} [put]
func (h *AuthHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(chi.URLParam(r, "userId"))

	var req updateUserRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err, "message", "Server error")
		return
	}

	u, err := h.svc.UpdateUser(r.Context(), userID, service.UpdateUserData{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		MobileNo:  req.MobileNo,
		Location:  req.Location,
	})
	if err != nil {
		respondError(w, err, "message", "Server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "User updated successfully",
		"user":    u,
	})
}
