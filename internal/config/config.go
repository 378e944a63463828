package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI  string
	MongoDB   string
	RedisAddr string
	RedisPass string
	HTTPPort  string

	// Rutas de los dos catálogos CSV
	BollywoodCSV string
	HollywoodCSV string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "cinesense"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:    getEnv("REDIS_PASSWORD", ""),
		HTTPPort:     getEnv("HTTP_PORT", "5000"),
		BollywoodCSV: getEnv("BOLLYWOOD_CSV", "./datasets/bollywood.csv"),
		HollywoodCSV: getEnv("HOLLYWOOD_CSV", "./datasets/hollywood.csv"),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s no está seteado, usando valor por defecto\n", key)
		return def
	}
	return v
}
