package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// TableIDs holds the numeric Baserow table identifiers for the five
// fixed tables the catalog is built from.
type TableIDs struct {
	Lots     int
	Artists  int
	Auctions int
	Bets     int
	Users    int
}

type Config struct {
	// Baserow
	BaserowAPIURL   string
	BaserowAPIToken string
	Tables          TableIDs

	// Artist enrichment
	ArtistFetchConcurrency int

	// Server
	Port        string
	Environment string
}

func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		BaserowAPIURL:   getEnv("BASEROW_API_URL", "https://api.baserow.io"),
		BaserowAPIToken: getEnv("BASEROW_API_TOKEN", ""),
		Tables: TableIDs{
			Lots:     getEnvInt("BASEROW_LOTS_TABLE_ID", 425401),
			Artists:  getEnvInt("BASEROW_ARTISTS_TABLE_ID", 425410),
			Auctions: getEnvInt("BASEROW_AUCTIONS_TABLE_ID", 547257),
			Bets:     getEnvInt("BASEROW_BETS_TABLE_ID", 427189),
			Users:    getEnvInt("BASEROW_USERS_TABLE_ID", 427190),
		},

		ArtistFetchConcurrency: getEnvInt("ARTIST_FETCH_CONCURRENCY", 8),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.BaserowAPIURL == "" {
		return fmt.Errorf("BASEROW_API_URL is required")
	}
	if c.ArtistFetchConcurrency < 1 {
		return fmt.Errorf("ARTIST_FETCH_CONCURRENCY must be at least 1")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
