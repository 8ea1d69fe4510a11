package config

import (
	"os"
	"strings"
)

// Config holds the environment-driven settings. Every field has a
// default suitable for running locally with no .env at all.
type Config struct {
	ListenAddr     string
	DataDir        string
	StoreDriver    string // "bolt" or "sqlite"
	LogMode        string // "development" or "production"
	LogFile        string // empty disables file logging
	BackupDir      string
	BackupSchedule string
	AllowedOrigins []string
}

func Load() *Config {
	cfg := &Config{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		DataDir:        getEnv("DATA_DIR", "./data"),
		StoreDriver:    getEnv("STORE_DRIVER", "bolt"),
		LogMode:        getEnv("LOG_MODE", "development"),
		LogFile:        os.Getenv("LOG_FILE"),
		BackupDir:      getEnv("BACKUP_DIR", "./data/backups"),
		BackupSchedule: getEnv("BACKUP_SCHEDULE", "@daily"),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, strings.TrimSpace(origin))
		}
	} else {
		cfg.AllowedOrigins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
