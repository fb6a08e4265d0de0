package config

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	cfg := Config{
		DBName:            getEnv("DB_NAME"),
		Port:              getEnv("PORT"),
		ProjectID:         getEnv("GCP_PROJECT"),
		MatchesAPIURL:     getEnv("MATCHES_API_URL"),
		MatchCreatedTopic: getEnv("MATCH_CREATED_TOPIC"),
		Turso: TursoConfig{
			// Optional: empty means a local SQLite file.
			PrimaryURL: os.Getenv("TURSO_PRIMARY_URL"),
			AuthToken:  os.Getenv("TURSO_AUTH_TOKEN"),
		},
	}
	return cfg
}
