package repository

import (
	"context"

	"github.com/Disu2004/CineSense/internal/db"
	"github.com/Disu2004/CineSense/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository() *UserRepository {
	return &UserRepository{col: db.DB().Collection("users")}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.UserDoc, error) {
	var u models.UserDoc
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByEmailOrPhone busca un usuario que choque con el email O el celular.
// Se usa para el pre-chequeo de unicidad en el registro.
func (r *UserRepository) FindByEmailOrPhone(ctx context.Context, email, mobileno string) (*models.UserDoc, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"mobileno": mobileno},
	}}

	var u models.UserDoc
	err := r.col.FindOne(ctx, filter).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, userID int) (*models.UserDoc, error) {
	var u models.UserDoc
	err := r.col.FindOne(ctx, bson.M{"userId": userID}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Insert(ctx context.Context, u *models.UserDoc) error {
	_, err := r.col.InsertOne(ctx, u)
	return err
}

// UpdateByID aplica un $set parcial y devuelve el documento ya mezclado.
// Devuelve (nil, nil) si el userId no existe.
func (r *UserRepository) UpdateByID(ctx context.Context, userID int, update bson.M) (*models.UserDoc, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var u models.UserDoc
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": update},
		opts,
	).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
