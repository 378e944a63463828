package service

import (
	"context"
	"testing"

	"github.com/Disu2004/CineSense/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const moodCatalog = "imdbId,title,genres\n" +
	"tt1,Risas,Comedy|Romance\n" +
	"tt2,Viaje,Adventure\n" +
	"tt3,Documental,Documentary\n" +
	"tt4,Sustos,Horror|Thriller\n" +
	"tt5,Ciencia,Sci-Fi\n"

func newMoodService(t *testing.T) *MoodService {
	t.Helper()
	loader := catalog.NewLoader("", writeCatalog(t, "hollywood.csv", moodCatalog))
	return NewMoodService(loader)
}

func TestDetectMood_HappyFiltersComedyAndAdventure(t *testing.T) {
	svc := newMoodService(t)

	result, err := svc.DetectMood(context.Background(), MoodRequest{
		Mood:        "Happy",
		Weather:     "rain",
		MovieSource: "hollywood",
	})
	require.NoError(t, err)

	assert.Equal(t, "happy", result.Mood)

	var moodTitles []string
	for _, m := range result.MoodMovies {
		moodTitles = append(moodTitles, m.Title)
	}
	// happy → Comedy, Adventure
	assert.ElementsMatch(t, []string{"Risas", "Viaje"}, moodTitles)

	var weatherTitles []string
	for _, m := range result.WeatherMovies {
		weatherTitles = append(weatherTitles, m.Title)
	}
	// Rain → Drama, Romance, Mystery; solo Risas tiene Romance
	assert.ElementsMatch(t, []string{"Risas"}, weatherTitles)
}

func TestDetectMood_UnknownMoodFallsBackToNeutral(t *testing.T) {
	svc := newMoodService(t)

	result, err := svc.DetectMood(context.Background(), MoodRequest{
		Mood:        "confundido",
		MovieSource: "hollywood",
	})
	require.NoError(t, err)

	assert.Equal(t, "neutral", result.Mood)
	// neutral → Drama, Documentary
	require.Len(t, result.MoodMovies, 1)
	assert.Equal(t, "Documental", result.MoodMovies[0].Title)
}

func TestDetectMood_UnknownWeatherGivesEmptyList(t *testing.T) {
	svc := newMoodService(t)

	result, err := svc.DetectMood(context.Background(), MoodRequest{
		Mood:        "happy",
		Weather:     "granizo",
		MovieSource: "hollywood",
	})
	require.NoError(t, err)
	assert.Empty(t, result.WeatherMovies)
}

func TestDetectMood_DefaultWeatherIsClear(t *testing.T) {
	svc := newMoodService(t)

	result, err := svc.DetectMood(context.Background(), MoodRequest{
		Mood:        "sad",
		MovieSource: "hollywood",
	})
	require.NoError(t, err)

	// Clear → Adventure, Comedy, Sci-Fi
	var titles []string
	for _, m := range result.WeatherMovies {
		titles = append(titles, m.Title)
	}
	assert.ElementsMatch(t, []string{"Risas", "Viaje", "Ciencia"}, titles)
}
