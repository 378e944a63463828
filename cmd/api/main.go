package main

import (
	"log"
	"net/http"

	_ "github.com/Disu2004/CineSense/docs" // swagger docs

	"github.com/Disu2004/CineSense/internal/cache"
	"github.com/Disu2004/CineSense/internal/catalog"
	"github.com/Disu2004/CineSense/internal/config"
	"github.com/Disu2004/CineSense/internal/db"
	"github.com/Disu2004/CineSense/internal/handler"
	"github.com/Disu2004/CineSense/internal/repository"
	"github.com/Disu2004/CineSense/internal/service"

	httpSwagger "github.com/swaggo/http-swagger"
)

// @title CineSense API
// @version 1.0
// @description Backend de recomendación de películas (contenido por géneros, Mongo, Redis)
// @host localhost:5000
// @BasePath /
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	prefRepo := repository.NewPreferenceRepository()
	counterRepo := repository.NewCounterRepository()

	// loader de catálogos CSV
	loader := catalog.NewLoader(cfg.BollywoodCSV, cfg.HollywoodCSV)

	// services
	authSvc := service.NewAuthService(userRepo, counterRepo)
	prefSvc := service.NewPreferenceService(prefRepo)
	recSvc := service.NewRecommendService(prefRepo, loader)
	moodSvc := service.NewMoodService(loader)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	prefH := handler.NewPreferenceHandler(prefSvc)
	recH := handler.NewRecommendHandler(recSvc)
	moodH := handler.NewMoodHandler(moodSvc)

	r := handler.Routes(authH, prefH, recH, moodH)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("🚀 HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
