package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"MONGO_URI", "MONGO_DB", "REDIS_ADDR", "REDIS_PASSWORD",
		"HTTP_PORT", "BOLLYWOOD_CSV", "HOLLYWOOD_CSV",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "cinesense", cfg.MongoDB)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "", cfg.RedisPass)
	assert.Equal(t, "5000", cfg.HTTPPort)
	assert.Equal(t, "./datasets/bollywood.csv", cfg.BollywoodCSV)
	assert.Equal(t, "./datasets/hollywood.csv", cfg.HollywoodCSV)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("BOLLYWOOD_CSV", "/data/bolly.csv")

	cfg := Load()

	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "/data/bolly.csv", cfg.BollywoodCSV)
}
