package models

// CatalogItem es una fila aceptada del catálogo CSV.
// Es efímero: se reconstruye en cada request y nunca se persiste.
type CatalogItem struct {
	Title  string   `json:"title"`
	Genres []string `json:"genres"`
	IMDBID string   `json:"imdbID"`
}

// ScoredItem es un CatalogItem con su similitud coseno contra el usuario.
type ScoredItem struct {
	CatalogItem
	Score float64 `json:"score"`
}

// RecommendResult es la respuesta de /recommend/{userId}.
type RecommendResult struct {
	Recommended []ScoredItem `json:"recommended"`
	Reason      string       `json:"reason"`
}

// MoodResult es la respuesta de /detect-mood.
type MoodResult struct {
	Mood          string        `json:"mood"`
	MoodMovies    []CatalogItem `json:"mood_movies"`
	WeatherMovies []CatalogItem `json:"weather_movies"`
}
