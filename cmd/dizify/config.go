package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config contains application-wide settings sourced from the environment.
type Config struct {
	DatabaseURL   string
	Addr          string
	JWTSecret     string
	JWTTTL        time.Duration
	AllowedOrigin string
	LogLevel      string
	LogFormat     string
}

func loadConfig() (Config, error) {
	_ = godotenv.Load("config/local.env")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return Config{}, errors.New("DATABASE_URL env var is required")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return Config{}, errors.New("JWT_SECRET env var is required")
	}

	ttlHours, err := strconv.Atoi(envOrDefault("JWT_TTL_HOURS", "24"))
	if err != nil || ttlHours <= 0 {
		return Config{}, fmt.Errorf("invalid JWT_TTL_HOURS: %q", os.Getenv("JWT_TTL_HOURS"))
	}

	return Config{
		DatabaseURL:   dsn,
		Addr:          fmt.Sprintf(":%s", envOrDefault("PORT", "8080")),
		JWTSecret:     secret,
		JWTTTL:        time.Duration(ttlHours) * time.Hour,
		AllowedOrigin: envOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "json"),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
