package service

import (
	"context"
	"log"
	"strings"

	"github.com/Disu2004/CineSense/internal/cache"
	"github.com/Disu2004/CineSense/internal/catalog"
	"github.com/Disu2004/CineSense/internal/models"
)

// Tablas de mapeo ánimo→géneros y clima→géneros. Vienen del servicio de
// detección de ánimo original; acá el ánimo llega ya detectado en el body.
var moodToGenre = map[string][]string{
	"happy":    {"Comedy", "Adventure"},
	"sad":      {"Comedy", "Family"},
	"angry":    {"Comedy", "Romance"},
	"surprise": {"Mystery", "Adventure"},
	"fear":     {"Comedy", "Fantasy", "Action"},
	"neutral":  {"Drama", "Documentary"},
	"disgust":  {"Romance", "Inspiration"},
}

var weatherToGenre = map[string][]string{
	"Clear":        {"Adventure", "Comedy", "Sci-Fi"},
	"Rain":         {"Drama", "Romance", "Mystery"},
	"Drizzle":      {"Drama", "Romance", "Mystery"},
	"Snow":         {"Animation", "Fantasy", "Family"},
	"Fog":          {"Thriller", "Horror", "Mystery"},
	"Mist":         {"Thriller", "Horror", "Mystery"},
	"Thunderstorm": {"Action", "Horror", "Sci-Fi"},
	"Wind":         {"Fantasy", "Action", "Western"},
	"Clouds":       {"Drama", "Mystery", "Documentary"},
}

type MoodService struct {
	loader *catalog.Loader
}

func NewMoodService(loader *catalog.Loader) *MoodService {
	return &MoodService{loader: loader}
}

type MoodRequest struct {
	Mood        string
	Weather     string
	MovieSource string
}

// DetectMood filtra el catálogo según el ánimo y el clima. Un ánimo
// desconocido cae a "neutral", igual que cuando la detección original
// fallaba. El resultado se cachea en Redis por fuente+ánimo+clima.
func (s *MoodService) DetectMood(ctx context.Context, req MoodRequest) (*models.MoodResult, error) {
	src := catalog.SourceForIndustry(req.MovieSource)

	mood := strings.ToLower(strings.TrimSpace(req.Mood))
	if _, ok := moodToGenre[mood]; !ok {
		mood = "neutral"
	}
	weather := normalizeWeather(req.Weather)

	key := cache.MoodKey(string(src), mood, weather)
	var cached models.MoodResult
	if ok, err := cache.GetJSON(ctx, key, &cached); err == nil && ok {
		return &cached, nil
	}

	items, err := s.loader.Load(src)
	if err != nil {
		return nil, err
	}

	result := &models.MoodResult{
		Mood:          mood,
		MoodMovies:    filterByGenres(items, moodToGenre[mood]),
		WeatherMovies: filterByGenres(items, weatherToGenre[weather]),
	}

	if err := cache.SetJSON(ctx, key, result, cache.MoodTTLSeconds); err != nil {
		log.Printf("error cacheando resultado de mood en Redis: %v", err)
	}
	return result, nil
}

// normalizeWeather capitaliza como manda la tabla ("rain" → "Rain").
func normalizeWeather(w string) string {
	w = strings.TrimSpace(w)
	if w == "" {
		return "Clear"
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}

// filterByGenres devuelve los ítems cuyo campo de géneros contiene alguno
// de los géneros buscados (comparación por substring, sin mayúsculas).
func filterByGenres(items []models.CatalogItem, genres []string) []models.CatalogItem {
	out := []models.CatalogItem{}
	if len(genres) == 0 {
		return out
	}

	lowered := make([]string, len(genres))
	for i, g := range genres {
		lowered[i] = strings.ToLower(g)
	}

	for _, it := range items {
		if matchesAny(it.Genres, lowered) {
			out = append(out, it)
		}
	}
	return out
}

func matchesAny(tokens []string, want []string) bool {
	for _, t := range tokens {
		t = strings.ToLower(t)
		for _, g := range want {
			if strings.Contains(t, g) {
				return true
			}
		}
	}
	return false
}
