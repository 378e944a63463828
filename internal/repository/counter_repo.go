package repository

import (
	"context"

	"github.com/Disu2004/CineSense/internal/db"
	"github.com/Disu2004/CineSense/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SeqUserID es el nombre de la secuencia que asigna los userId.
const SeqUserID = "userId"

type CounterRepository struct {
	col *mongo.Collection
}

func NewCounterRepository() *CounterRepository {
	return &CounterRepository{col: db.DB().Collection("counters")}
}

// Next incrementa y devuelve la secuencia en una sola operación atómica
// contra Mongo (findOneAndUpdate con $inc + upsert). Nunca devuelve un
// valor repetido, incluso con registros concurrentes o varias instancias
// del servidor.
func (r *CounterRepository) Next(ctx context.Context, name string) (int, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var c models.CounterDoc
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"sequence_value": 1}},
		opts,
	).Decode(&c)
	if err != nil {
		return 0, err
	}
	return c.SequenceValue, nil
}
