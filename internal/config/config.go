package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// App branding constants, surfaced by the health endpoint and user-facing
// messages.
const (
	AppName        = "Mini Praisells"
	CurrencyName   = "appraiCENTS"
	CurrencySymbol = "aC"
)

// Config holds all runtime settings for the auction server.
type Config struct {
	Port            string
	StartingBalance int64 // appraiCENTS granted on first contact
	MinBidIncrement int64
	MaxBidAmount    int64
	DBPath          string // empty selects the in-memory store
	StaticDir       string // empty disables static file serving
	AllowedOrigins  []string
}

// Load reads configuration from the environment, consulting a .env file
// when one is present in the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", ""),
		StaticDir: getEnv("STATIC_DIR", ""),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS",
			[]string{"http://localhost:3000", "http://127.0.0.1:3000"}),
	}

	var err error
	if cfg.StartingBalance, err = getEnvInt64("STARTING_BALANCE", 1000); err != nil {
		return nil, err
	}
	if cfg.MinBidIncrement, err = getEnvInt64("MIN_BID_INCREMENT", 1); err != nil {
		return nil, err
	}
	if cfg.MaxBidAmount, err = getEnvInt64("MAX_BID_AMOUNT", 999999); err != nil {
		return nil, err
	}

	if cfg.StartingBalance < 0 {
		return nil, fmt.Errorf("config: STARTING_BALANCE must not be negative, got %d", cfg.StartingBalance)
	}
	if cfg.MinBidIncrement < 1 {
		return nil, fmt.Errorf("config: MIN_BID_INCREMENT must be at least 1, got %d", cfg.MinBidIncrement)
	}
	if cfg.MaxBidAmount < cfg.MinBidIncrement {
		return nil, fmt.Errorf("config: MAX_BID_AMOUNT %d is below MIN_BID_INCREMENT %d", cfg.MaxBidAmount, cfg.MinBidIncrement)
	}

	return cfg, nil
}

// Default returns the built-in configuration without touching the
// environment. Intended for tests.
func Default() *Config {
	return &Config{
		Port:            "8080",
		StartingBalance: 1000,
		MinBidIncrement: 1,
		MaxBidAmount:    999999,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer, got %q", key, v)
	}
	return n, nil
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
