package repository

import (
	"context"

	"github.com/Disu2004/CineSense/internal/db"
	"github.com/Disu2004/CineSense/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PreferenceRepository struct {
	col *mongo.Collection
}

func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{col: db.DB().Collection("preferences")}
}

// Insert guarda la preferencia tal cual. No hay chequeo de unicidad ni de
// que el userId exista: el documento es independiente del usuario.
func (r *PreferenceRepository) Insert(ctx context.Context, p *models.PreferenceDoc) error {
	_, err := r.col.InsertOne(ctx, p)
	return err
}

// FindByUserID devuelve la primera preferencia del usuario en orden natural
// (puede haber más de una).
func (r *PreferenceRepository) FindByUserID(ctx context.Context, userID int) (*models.PreferenceDoc, error) {
	var p models.PreferenceDoc
	err := r.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateByUserID aplica un $set parcial sobre la primera preferencia del
// usuario y devuelve el documento mezclado, o (nil, nil) si no hay ninguna.
func (r *PreferenceRepository) UpdateByUserID(ctx context.Context, userID int, update bson.M) (*models.PreferenceDoc, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p models.PreferenceDoc
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": update},
		opts,
	).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
