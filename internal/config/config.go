package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	APIKey          string
	JWTSecret       string
	TokenTTL        time.Duration
	WeatherBaseURL  string
	AirQualityURL   string
	UpstreamTimeout time.Duration
	AllowOrigins    []string
	LogLevel        string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	tokenTTL := 24 * time.Hour
	if v, err := time.ParseDuration(getenv("TOKEN_TTL", "24h")); err == nil && v > 0 {
		tokenTTL = v
	}

	upstreamTimeout := 10 * time.Second
	if v, err := time.ParseDuration(getenv("UPSTREAM_TIMEOUT", "10s")); err == nil && v > 0 {
		upstreamTimeout = v
	}

	return Config{
		Port:            getenv("PORT", "8080"),
		DatabaseURL:     must("DATABASE_URL"),
		APIKey:          must("API_KEY"),
		JWTSecret:       must("JWT_SECRET"),
		TokenTTL:        tokenTTL,
		WeatherBaseURL:  getenv("WEATHER_BASE_URL", "http://api.openweathermap.org/data/3.0/onecall"),
		AirQualityURL:   getenv("AIR_QUALITY_BASE_URL", "http://api.openweathermap.org/data/3.0/air_pollution"),
		UpstreamTimeout: upstreamTimeout,
		AllowOrigins:    splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogLevel:        getenv("LOG_LEVEL", "info"),
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
