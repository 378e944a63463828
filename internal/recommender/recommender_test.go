package recommender

import (
	"math/rand"
	"testing"

	"github.com/Disu2004/CineSense/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(title string, genres ...string) models.CatalogItem {
	return models.CatalogItem{Title: title, Genres: genres, IMDBID: "tt-" + title}
}

func TestBuildVocabulary(t *testing.T) {
	items := []models.CatalogItem{
		item("a", "Action", "Comedy"),
		item("b", "comedy", "Drama"),
		item("c", "ACTION"),
	}

	vocab := BuildVocabulary(items)
	assert.Equal(t, []string{"action", "comedy", "drama"}, vocab)
}

func TestVectorize_CaseInsensitive(t *testing.T) {
	vocab := []string{"action", "comedy", "drama"}

	vec := Vectorize([]string{"Action", "COMEDY"}, vocab)
	assert.Equal(t, []float64{1, 1, 0}, vec)

	assert.Equal(t, []float64{0, 0, 0}, Vectorize(nil, vocab))
}

func TestCosine(t *testing.T) {
	t.Run("identical vectors score 1", func(t *testing.T) {
		v := []float64{1, 1, 0}
		assert.InDelta(t, 1.0, Cosine(v, v), 1e-9)
	})

	t.Run("disjoint vectors score 0", func(t *testing.T) {
		assert.Equal(t, 0.0, Cosine([]float64{1, 0, 0}, []float64{0, 1, 1}))
	})

	t.Run("zero norm is safe", func(t *testing.T) {
		zero := []float64{0, 0, 0}
		assert.Equal(t, 0.0, Cosine(zero, []float64{1, 1, 0}))
		assert.Equal(t, 0.0, Cosine([]float64{1, 1, 0}, zero))
		assert.Equal(t, 0.0, Cosine(zero, zero))
	})
}

// Ejemplo de la documentación: usuario [Action, Comedy] sobre vocabulario
// [action, comedy, drama]. Un ítem solo-Comedy puntúa 1/(√2·1) ≈ 0.707 y
// entra; un ítem solo-Drama puntúa 0 y queda fuera.
func TestScore_MatchesAndExcludes(t *testing.T) {
	items := []models.CatalogItem{
		item("solo-comedy", "Comedy"),
		item("solo-drama", "Drama"),
		item("exact", "Action", "Comedy"),
	}

	eligible := Score(items, []string{"Action", "Comedy"})
	require.Len(t, eligible, 2)

	byTitle := make(map[string]float64)
	for _, e := range eligible {
		byTitle[e.Title] = e.Score
	}
	assert.InDelta(t, 0.7071, byTitle["solo-comedy"], 1e-3)
	assert.InDelta(t, 1.0, byTitle["exact"], 1e-9)
	assert.NotContains(t, byTitle, "solo-drama")
}

func TestScore_EligibleSetIsDeterministic(t *testing.T) {
	items := []models.CatalogItem{
		item("a", "Action"),
		item("b", "Comedy", "Drama"),
		item("c", "Horror"),
		item("d", "Action", "Thriller"),
	}
	userGenres := []string{"action", "drama"}

	first := Score(items, userGenres)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Score(items, userGenres))
	}
}

func TestScore_NoPreferenceGenres(t *testing.T) {
	items := []models.CatalogItem{item("a", "Action")}
	assert.Empty(t, Score(items, nil))
}

func TestSample(t *testing.T) {
	var items []models.ScoredItem
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		items = append(items, models.ScoredItem{CatalogItem: item(title, "Action"), Score: 1})
	}

	t.Run("k mayor que n devuelve todo", func(t *testing.T) {
		got := Sample(items, 30, rand.New(rand.NewSource(1)))
		assert.Len(t, got, 5)
	})

	t.Run("muestra sin repetidos y subconjunto de la entrada", func(t *testing.T) {
		got := Sample(items, 3, rand.New(rand.NewSource(7)))
		require.Len(t, got, 3)

		seen := make(map[string]bool)
		for _, g := range got {
			assert.False(t, seen[g.Title], "repetido: %s", g.Title)
			seen[g.Title] = true
		}
	})

	t.Run("no modifica la entrada", func(t *testing.T) {
		before := make([]models.ScoredItem, len(items))
		copy(before, items)
		_ = Sample(items, 3, rand.New(rand.NewSource(3)))
		assert.Equal(t, before, items)
	})

	t.Run("k cero o lista vacía", func(t *testing.T) {
		assert.Empty(t, Sample(items, 0, rand.New(rand.NewSource(1))))
		assert.Empty(t, Sample(nil, 10, rand.New(rand.NewSource(1))))
	})
}
