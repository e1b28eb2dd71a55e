package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultMaxUploadBytes = 2 << 20 // 2MB resume uploads

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	DatabaseURL     string
	CORSAllowOrigin []string
	GoogleAPIKey    string
	GeminiModel     string
	MaxUploadBytes  int64
}

// ErrMissingAPIKey signals that the Gemini credential is absent. The server
// refuses to start without it; no analysis is ever attempted unauthenticated.
var ErrMissingAPIKey = errors.New("GOOGLE_API_KEY is required")

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		GoogleAPIKey:    strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		MaxUploadBytes:  getEnvInt64("MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
	}
}

// Validate reports configuration problems that must stop the process.
func (c Config) Validate() error {
	if c.GoogleAPIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || val <= 0 {
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	default:
		return "dev"
	}
}
