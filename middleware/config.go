package middleware

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}
}

// GetEnv reads a configuration value from the environment.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault reads a configuration value, falling back when unset.
func GetEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
