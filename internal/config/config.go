package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// HTTP server
	HTTPAddr string

	// SurrealDB connection
	DBUrl  string
	DBNs   string
	DBDb   string
	DBUser string
	DBPass string

	// Client-side gateway
	APIBaseURL string

	// Dashboard stats cache staleness threshold.
	StatsTTL time.Duration

	// Directory for locally stored assets (logos, banners).
	AssetDir string
}

// New loads configuration from environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		HTTPAddr:   getEnv("HTTP_ADDR", ":8080"),
		DBUrl:      os.Getenv("SURREAL_URL"),
		DBUser:     os.Getenv("SURREAL_USER"),
		DBPass:     os.Getenv("SURREAL_PASS"),
		DBNs:       os.Getenv("SURREAL_NS"),
		DBDb:       os.Getenv("SURREAL_DB"),
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
		StatsTTL:   time.Hour,
		AssetDir:   getEnv("ASSET_DIR", "assets"),
	}

	if ttl := os.Getenv("STATS_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			log.Fatalf("Invalid STATS_TTL %q: %v", ttl, err)
		}
		cfg.StatsTTL = d
	}

	if cfg.DBUrl == "" || cfg.DBNs == "" || cfg.DBDb == "" {
		log.Fatal("Required environment variables SURREAL_URL, SURREAL_NS, or SURREAL_DB are not set.")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
