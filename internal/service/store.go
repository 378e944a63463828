package service

import (
	"context"

	"github.com/Disu2004/CineSense/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Interfaces del Record Store que consumen los servicios. La implementación
// real vive en internal/repository (Mongo); los tests usan fakes en memoria.

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.UserDoc, error)
	FindByEmailOrPhone(ctx context.Context, email, mobileno string) (*models.UserDoc, error)
	FindByID(ctx context.Context, userID int) (*models.UserDoc, error)
	Insert(ctx context.Context, u *models.UserDoc) error
	UpdateByID(ctx context.Context, userID int, update bson.M) (*models.UserDoc, error)
}

type PreferenceStore interface {
	Insert(ctx context.Context, p *models.PreferenceDoc) error
	FindByUserID(ctx context.Context, userID int) (*models.PreferenceDoc, error)
	UpdateByUserID(ctx context.Context, userID int, update bson.M) (*models.PreferenceDoc, error)
}

// UserIDSource asigna ids de usuario. Next("userId") debe ser atómico:
// nunca devuelve dos veces el mismo valor, ni bajo registros concurrentes.
type UserIDSource interface {
	Next(ctx context.Context, name string) (int, error)
}
