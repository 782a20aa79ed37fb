package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/julianstephens/goalkeeper/internal/constants"
	"github.com/julianstephens/goalkeeper/internal/logger"
)

// Config holds environment-derived settings. Secrets resolved from the
// environment take precedence over the OS keyring so that CI and headless
// machines without a keyring daemon keep working.
type Config struct {
	APIKey       string // Gemini API key for end-of-day scoring
	ScoringModel string // Gemini model name
	DBConnection string // Optional Postgres connection string
}

// Load reads configuration from a .env file (if present) and the process
// environment. A missing .env file is not an error.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using environment variables only")
	}

	return Config{
		APIKey:       os.Getenv("GOALKEEPER_API_KEY"),
		ScoringModel: getenv("GOALKEEPER_MODEL", constants.DefaultScoringModel),
		DBConnection: os.Getenv("GOALKEEPER_DB_CONNECTION"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
