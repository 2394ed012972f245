package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBPath      string
	Timezone    string
	LogLevel    string
	Environment string
	RefreshCron string
}

// Load reads configuration from a .env file (if present) and the environment.
// Everything has a workable default; a bare `cyra` starts a local instance.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DBPath:      getEnv("DB_PATH", "data/cyra.db"),
		Timezone:    getEnv("TZ", "UTC"),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Environment: strings.ToLower(getEnv("ENVIRONMENT", "development")),
		RefreshCron: getEnv("REFRESH_CRON", "0 * * * *"),
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
