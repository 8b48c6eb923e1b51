package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Port       string
	DBPath     string
	Env        string
	CORSOrigin string
	// LatencyScale multiplies the simulated backend latency. 1.0 keeps the
	// full delays, 0 disables them (used by tests).
	LatencyScale float64
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return Config{
		Port:         getEnv("PORT", "8080"),
		DBPath:       getEnv("DB_PATH", "restaurant.db"),
		Env:          getEnv("APP_ENV", "development"),
		CORSOrigin:   getEnv("CORS_ORIGIN", "http://localhost:3000"),
		LatencyScale: getEnvFloat("API_LATENCY_SCALE", 1.0),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		log.Printf("Invalid value %q for %s, using default", val, key)
		return fallback
	}
	return f
}
