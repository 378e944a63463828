package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Routes arma el router con la superficie HTTP completa. Vive acá (y no en
// main) para poder levantar el mismo router en los tests de handlers.
func Routes(authH *AuthHandler, prefH *PreferenceHandler, recH *RecommendHandler, moodH *MoodHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// el frontend original corre en otro puerto, CORS abierto como allá
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", Health)

	r.Post("/register", authH.Register)
	r.Post("/login", authH.Login)
	r.Get("/user-preference/{userId}", authH.GetUserInfo)
	r.Put("/update-user/{userId}", authH.UpdateUser)

	r.Post("/user-preference", prefH.Save)
	r.Get("/preference/{userId}", prefH.Get)
	r.Get("/source/{userId}", prefH.GetSource)
	r.Put("/update-preference/{userId}", prefH.Update)

	r.Get("/recommend/{userId}", recH.Get)
	r.Get("/ws/recommend/{userId}", recH.GetWS)

	r.Post("/detect-mood", moodH.DetectMood)

	return r
}
