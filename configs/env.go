package configs

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnv sync.Once

// env reads a variable after loading .env once. A missing .env file is not an
// error so the binary and its tests also run from plain process environment.
func env(key, fallback string) string {
	loadEnv.Do(func() {
		_ = godotenv.Load()
	})
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func EnvMongoURI() string {
	return env("MONGO_URI", "mongodb://localhost:27017")
}

func EnvDBName() string {
	return env("DB_NAME", "ecommerce")
}

func EnvJWTSecret() string {
	return env("JWT_SECRET", "")
}

func EnvPort() string {
	return env("PORT", "8000")
}

func EnvAppEnv() string {
	return env("APP_ENV", "development")
}
