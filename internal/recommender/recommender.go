// Package recommender implementa el filtrado basado en contenido:
// vocabulario de géneros, vectores binarios, similitud coseno y el
// muestreo aleatorio final. El puntaje es determinístico; solo el
// muestreo introduce aleatoriedad.
package recommender

import (
	"math"
	"math/rand"
	"strings"

	"github.com/Disu2004/CineSense/internal/models"
)

// ScoreThreshold es el corte de similitud: solo entran ítems con score > 0.1.
const ScoreThreshold = 0.1

// BuildVocabulary junta todos los géneros distintos del catálogo, en
// minúsculas y en orden de primera aparición. El orden no afecta el
// resultado pero debe ser el mismo para usuario e ítems dentro de un
// mismo cálculo.
func BuildVocabulary(items []models.CatalogItem) []string {
	seen := make(map[string]bool)
	var vocab []string
	for _, it := range items {
		for _, g := range it.Genres {
			g = strings.ToLower(g)
			if !seen[g] {
				seen[g] = true
				vocab = append(vocab, g)
			}
		}
	}
	return vocab
}

// Vectorize construye el vector 0/1 de `genres` sobre el vocabulario.
// La pertenencia se compara en minúsculas.
func Vectorize(genres []string, vocab []string) []float64 {
	set := make(map[string]bool, len(genres))
	for _, g := range genres {
		set[strings.ToLower(g)] = true
	}

	vec := make([]float64, len(vocab))
	for i, term := range vocab {
		if set[term] {
			vec[i] = 1
		}
	}
	return vec
}

// Cosine devuelve la similitud coseno entre dos vectores. Si alguno tiene
// norma cero devuelve 0 en vez de dividir por cero.
func Cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Score puntúa todo el catálogo contra los géneros del usuario y devuelve
// los ítems elegibles (score > ScoreThreshold). Para un catálogo y unos
// géneros fijos el conjunto devuelto es siempre el mismo.
func Score(items []models.CatalogItem, userGenres []string) []models.ScoredItem {
	vocab := BuildVocabulary(items)
	userVec := Vectorize(userGenres, vocab)

	var eligible []models.ScoredItem
	for _, it := range items {
		s := Cosine(userVec, Vectorize(it.Genres, vocab))
		if s > ScoreThreshold {
			eligible = append(eligible, models.ScoredItem{CatalogItem: it, Score: s})
		}
	}
	return eligible
}

// Sample devuelve una muestra aleatoria uniforme de min(k, len(items))
// elementos, sin repetir. No modifica el slice de entrada. Es el único
// paso no determinístico del pipeline y por eso vive separado de Score.
func Sample(items []models.ScoredItem, k int, rng *rand.Rand) []models.ScoredItem {
	n := len(items)
	if k > n {
		k = n
	}
	if k <= 0 {
		return []models.ScoredItem{}
	}

	// Fisher-Yates parcial: alcanza con barajar las primeras k posiciones.
	pool := make([]models.ScoredItem, n)
	copy(pool, items)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
