package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// defaultJWTSecret is the well-known development fallback. Boot refuses to
// run with it outside local development.
const defaultJWTSecret = "default_secret"

type Config struct {
	Port          string
	Env           string
	DatabaseURL   string
	RedisAddr     string
	JWTSecret     string
	SweepInterval time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	sweepInterval := 24 * time.Hour
	if raw := os.Getenv("BLACKLIST_SWEEP_INTERVAL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			sweepInterval = parsed
		}
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("APP_ENV", "development"),
		DatabaseURL:   getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=homehub port=5432 sslmode=disable"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		JWTSecret:     getEnv("JWT_SECRET", defaultJWTSecret),
		SweepInterval: sweepInterval,
	}

	if cfg.IsProduction() && cfg.JWTSecret == defaultJWTSecret {
		log.Fatal("JWT_SECRET must be set in production; refusing to sign tokens with the development default")
	}

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
