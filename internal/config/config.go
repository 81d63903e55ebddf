package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	ServerPort    string
	SessionSecret string
}

// Load reads configuration from the environment (and .env if present).
// The app is a single-tenant deployment and must boot with zero config:
// every value has a working default.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = defaultDBPath()
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "field-sales-dev-secret"
		log.Println("SESSION_SECRET is not set, using built-in dev secret")
	}

	return cfg
}

// defaultDBPath is a sqlite file in the user's home directory.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "field_sales.db"
	}
	return filepath.Join(home, "field_sales.db")
}
