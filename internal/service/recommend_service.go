package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/Disu2004/CineSense/internal/apperr"
	"github.com/Disu2004/CineSense/internal/catalog"
	"github.com/Disu2004/CineSense/internal/models"
	"github.com/Disu2004/CineSense/internal/recommender"
)

// MaxRecommendations es el tamaño máximo de la muestra devuelta.
const MaxRecommendations = 30

const (
	ReasonShuffle   = "Content-based filtering with shuffle"
	ReasonNoMatches = "No matching genres found with sufficient similarity"
)

type RecommendService struct {
	prefs  PreferenceStore
	loader *catalog.Loader
}

func NewRecommendService(prefs PreferenceStore, loader *catalog.Loader) *RecommendService {
	return &RecommendService{prefs: prefs, loader: loader}
}

// Progress recibe avisos de avance durante el cálculo; count es la cantidad
// de ítems de la etapa (filas cargadas, elegibles). Lo usa el endpoint WS.
type Progress func(stage string, count int)

// Recommend arma la respuesta de /recommend/{userId}: preferencia →
// catálogo → score → muestra. "Sin coincidencias" es un resultado normal
// con lista vacía, nunca un error; "catálogo vacío" sí es un error duro.
func (s *RecommendService) Recommend(ctx context.Context, userID int) (*models.RecommendResult, error) {
	return s.recommend(ctx, userID, nil)
}

// RecommendWithProgress es Recommend avisando cada etapa por cb.
func (s *RecommendService) RecommendWithProgress(ctx context.Context, userID int, cb Progress) (*models.RecommendResult, error) {
	return s.recommend(ctx, userID, cb)
}

func (s *RecommendService) recommend(ctx context.Context, userID int, cb Progress) (*models.RecommendResult, error) {
	pref, err := s.prefs.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "buscando preferencia", err)
	}
	if pref == nil {
		return nil, apperr.New(apperr.KindNotFound, "Preferences not found")
	}

	src := catalog.SourceForIndustry(pref.Industry)

	// se relee el CSV en cada request, sin cache entre requests
	items, err := s.loader.Load(src)
	if err != nil {
		return nil, err
	}
	if cb != nil {
		cb("catalog", len(items))
	}

	eligible := recommender.Score(items, pref.Genres)
	if cb != nil {
		cb("score", len(eligible))
	}

	if len(eligible) == 0 {
		return &models.RecommendResult{
			Recommended: []models.ScoredItem{},
			Reason:      ReasonNoMatches,
		}, nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &models.RecommendResult{
		Recommended: recommender.Sample(eligible, MaxRecommendations, rng),
		Reason:      ReasonShuffle,
	}, nil
}
