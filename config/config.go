package config

import (
	"currency-converter/format"
	"fmt"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"os"
	"strings"
)

// Config holds all configuration for the converter binaries
type Config struct {
	// Addr address the HTTP server listens on
	Addr string
	// RatesFile optional rate table fixture, the built-in table is used when empty
	RatesFile string
	// Locale used to format results
	Locale language.Tag
	// AllowedOrigins CORS origins allowed to call the HTTP API
	AllowedOrigins []string
	// LogLevel minimum level logged
	LogLevel level.Option
}

// Load reads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// a missing .env file is fine
	_ = godotenv.Load()

	cfg := &Config{
		Addr:           getEnv("SERVER_ADDR", ":8080"),
		RatesFile:      getEnv("RATES_FILE", ""),
		AllowedOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}

	if s := getEnv("LOCALE", ""); s != "" {
		tag, err := format.ParseLocale(s)
		if err != nil {
			return nil, fmt.Errorf("LOCALE: %w", err)
		}
		cfg.Locale = tag
	} else {
		cfg.Locale = format.DetectLocale()
	}

	lvl, err := ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = lvl

	return cfg, nil
}

// ParseLevel maps a level name to a go-kit level filter
func ParseLevel(s string) (level.Option, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return level.AllowDebug(), nil
	case "info", "":
		return level.AllowInfo(), nil
	case "warn", "warning":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	case "none":
		return level.AllowNone(), nil
	default:
		return nil, fmt.Errorf("unknown log level %q", s)
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
