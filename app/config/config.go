package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DataDir        string
	StoreDriver    string
	DatabaseURL    string
	ReceiptPrefix  string
	BackupDir      string
	BackupInterval time.Duration
}

var AppConfig *Config

// Load reads configuration from the environment, with a .env file as an
// optional local override.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env file")
	}

	dataDir := envOr("DATA_DIR", "data")
	cfg := &Config{
		Port:           envOr("PORT", "8080"),
		DataDir:        dataDir,
		StoreDriver:    envOr("STORE_DRIVER", "file"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		ReceiptPrefix:  envOr("RECEIPT_PREFIX", "ALB"),
		BackupDir:      envOr("BACKUP_DIR", filepath.Join(dataDir, "backups")),
		BackupInterval: envDurationOr("BACKUP_INTERVAL_MINUTES", 30),
	}

	if cfg.StoreDriver == "postgres" && cfg.DatabaseURL == "" {
		log.Println("STORE_DRIVER=postgres but DATABASE_URL is empty, falling back to file store")
		cfg.StoreDriver = "file"
	}

	AppConfig = cfg
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDurationOr(key string, fallbackMinutes int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
		log.Printf("Invalid %s value %q, using default", key, v)
	}
	return time.Duration(fallbackMinutes) * time.Minute
}
