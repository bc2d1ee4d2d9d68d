package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string

	// DatabaseDriver selects the store: memory, postgres or sqlite.
	DatabaseDriver string
	PostgresDSN    string
	SQLitePath     string

	ReviewWindowSize  int
	ReviewVoteDelta   float64
	FlagHoldThreshold time.Duration

	WorkerPollInterval  time.Duration
	WorkerFlagBatchSize int
}

func Load() (Config, error) {
	// Missing .env is fine; the environment wins over file values either way.
	_ = godotenv.Load()

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "termbank"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	driver := strings.TrimSpace(strings.ToLower(os.Getenv("DATABASE_DRIVER")))
	if driver == "" {
		driver = "memory"
	}

	sqlitePath := os.Getenv("SQLITE_PATH")
	if sqlitePath == "" {
		sqlitePath = "termbank.db"
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,

		DatabaseDriver: driver,
		PostgresDSN:    os.Getenv("POSTGRES_DSN"),
		SQLitePath:     sqlitePath,

		ReviewWindowSize:  envInt("REVIEW_WINDOW_SIZE", 3),
		ReviewVoteDelta:   envFloat("REVIEW_VOTE_DELTA", 0.05),
		FlagHoldThreshold: envDuration("FLAG_HOLD_THRESHOLD_MS", 1000*time.Millisecond),

		WorkerPollInterval:  envDuration("WORKER_POLL_INTERVAL_MS", 5000*time.Millisecond),
		WorkerFlagBatchSize: envInt("WORKER_FLAG_BATCH_SIZE", 100),
	}, nil
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func envFloat(name string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func envDuration(name string, fallback time.Duration) time.Duration {
	millis := envInt(name, 0)
	if millis <= 0 {
		return fallback
	}
	return time.Duration(millis) * time.Millisecond
}
