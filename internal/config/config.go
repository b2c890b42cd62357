// Package config loads server configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort   string
	DBPath    string
	JWTSecret string
	TokenTTL  time.Duration

	// Per-IP rate limiting at the transport edge.
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// Load reads configuration from the environment, consulting a .env file if
// present. JWT_SECRET is required; everything else has a sane default.
func Load() *Config {
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET is not set")
		os.Exit(1)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/taskboard.db"
	}

	tokenTTL := 24 * time.Hour
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			tokenTTL = d
		}
	}

	rateLimit := 10.0
	if v := os.Getenv("RATE_LIMIT_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			rateLimit = f
		}
	}

	rateBurst := 20
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rateBurst = n
		}
	}

	return &Config{
		AppPort:            port,
		DBPath:             dbPath,
		JWTSecret:          jwtSecret,
		TokenTTL:           tokenTTL,
		RateLimitPerSecond: rateLimit,
		RateLimitBurst:     rateBurst,
	}
}
