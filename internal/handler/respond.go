package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Disu2004/CineSense/internal/apperr"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// decodeBody deserializa y valida el body. Cualquier problema se reporta
// como error de validación (400) antes de tocar el almacenamiento.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Wrap(apperr.KindValidation, "invalid request body", err)
	}
	if err := validate.Struct(dst); err != nil {
		return apperr.Wrap(apperr.KindValidation, "invalid request body", err)
	}
	return nil
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError escribe el error bajo la clave que usa cada ruta original
// ("message" o "error"). Para errores 5xx se usa serverMsg, el texto
// genérico de esa ruta, salvo que el error traiga un mensaje público
// propio (catálogo vacío).
func respondError(w http.ResponseWriter, err error, key, serverMsg string) {
	status := apperr.Status(err)
	msg := apperr.Message(err)
	if status >= 500 && msg == "Server error" {
		msg = serverMsg
	}
	respondJSON(w, status, map[string]string{key: msg})
}
