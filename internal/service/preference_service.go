package service

import (
	"context"

	"github.com/Disu2004/CineSense/internal/apperr"
	"github.com/Disu2004/CineSense/internal/catalog"
	"github.com/Disu2004/CineSense/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

type PreferenceService struct {
	prefs PreferenceStore
}

func NewPreferenceService(prefs PreferenceStore) *PreferenceService {
	return &PreferenceService{prefs: prefs}
}

type SavePreferenceData struct {
	UserID    int
	Industry  string
	Genres    []string
	LastMovie string
}

type UpdatePreferenceData struct {
	Industry  *string
	Genres    *[]string
	LastMovie *string
}

// Save crea la preferencia sin verificar que el usuario exista: el
// documento vive por su cuenta, igual que en el esquema original.
func (s *PreferenceService) Save(ctx context.Context, data SavePreferenceData) error {
	p := &models.PreferenceDoc{
		UserID:    data.UserID,
		Industry:  data.Industry,
		Genres:    data.Genres,
		LastMovie: data.LastMovie,
	}
	if err := s.prefs.Insert(ctx, p); err != nil {
		return apperr.Wrap(apperr.KindStore, "insertando preferencia", err)
	}
	return nil
}

func (s *PreferenceService) Get(ctx context.Context, userID int) (*models.PreferenceDoc, error) {
	p, err := s.prefs.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "buscando preferencia", err)
	}
	if p == nil {
		return nil, apperr.New(apperr.KindNotFound, "Preference not found")
	}
	return p, nil
}

// Source resuelve a qué catálogo apunta la industria del usuario.
func (s *PreferenceService) Source(ctx context.Context, userID int) (catalog.Source, error) {
	p, err := s.prefs.FindByUserID(ctx, userID)
	if err != nil {
		return "", apperr.Wrap(apperr.KindStore, "buscando preferencia", err)
	}
	if p == nil {
		return "", apperr.New(apperr.KindNotFound, "User preference not found")
	}
	return catalog.SourceForIndustry(p.Industry), nil
}

// Update aplica un parche parcial y devuelve la preferencia mezclada.
func (s *PreferenceService) Update(ctx context.Context, userID int, data UpdatePreferenceData) (*models.PreferenceDoc, error) {
	update := bson.M{}
	if data.Industry != nil {
		update["industry"] = *data.Industry
	}
	if data.Genres != nil {
		update["genres"] = *data.Genres
	}
	if data.LastMovie != nil {
		update["lastMovie"] = *data.LastMovie
	}

	if len(update) == 0 {
		return s.Get(ctx, userID)
	}

	p, err := s.prefs.UpdateByUserID(ctx, userID, update)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "actualizando preferencia", err)
	}
	if p == nil {
		return nil, apperr.New(apperr.KindNotFound, "Preference not found")
	}
	return p, nil
}
