package db

import (
	"context"
	"log"
	"time"

	"github.com/Disu2004/CineSense/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var mongoClient *mongo.Client
var mongoDB *mongo.Database

func InitMongo(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("[mongo] error conectando: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("[mongo] ping falló: %v", err)
	}

	mongoClient = client
	mongoDB = client.Database(cfg.MongoDB)
	log.Printf("[mongo] conectado a %s / DB=%s\n", cfg.MongoURI, cfg.MongoDB)

	if err := ensureIndexes(); err != nil {
		log.Fatalf("[mongo] creando índices: %v", err)
	}
}

// ensureIndexes crea los índices únicos que sostienen la invariante del
// Record Store: userId, email y mobileno únicos en users.
func ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := mongoDB.Collection("users")
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "mobileno", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return err
}

func DB() *mongo.Database {
	return mongoDB
}
