package config

import (
	"os"
)

type Config struct {
	Port        string
	Environment string

	// StoreDriver selects the key-value medium: "redis" or "postgres".
	StoreDriver string
	StorePrefix string

	RedisURL    string
	DatabaseURL string

	CORSOrigins string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		StoreDriver: getEnv("STORE_DRIVER", "redis"),
		StorePrefix: getEnv("STORE_PREFIX", "margent"),

		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
