package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string
	// RedisURL selects the Redis form repository when set; an empty value
	// keeps form sessions in process memory.
	RedisURL      string
	FormTTL       time.Duration
	SweepInterval time.Duration
	// RosterFile is an optional .xlsx workbook; when empty the default
	// roster is generated from the counts and prefixes below.
	RosterFile        string
	StudentCount      int
	AspectCount       int
	StudentNamePrefix string
	AspectNamePrefix  string
	FormCreateRate    int
	// AllowedOrigins controls HTTP CORS.
	// Empty slice means all origins are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "pretty"),
		RedisURL:          getEnv("REDIS_URL", ""),
		FormTTL:           time.Duration(getEnvInt("FORM_TTL_MINUTES", 120)) * time.Minute,
		SweepInterval:     time.Duration(getEnvInt("SWEEP_INTERVAL_SECONDS", 60)) * time.Second,
		RosterFile:        getEnv("ROSTER_FILE", ""),
		StudentCount:      getEnvInt("STUDENT_COUNT", 10),
		AspectCount:       getEnvInt("ASPECT_COUNT", 4),
		StudentNamePrefix: getEnv("STUDENT_NAME_PREFIX", "Mahasiswa"),
		AspectNamePrefix:  getEnv("ASPECT_NAME_PREFIX", "Aspek Penilaian"),
		FormCreateRate:    getEnvInt("FORM_CREATE_RATE", 30),
		AllowedOrigins:    parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt falls back on missing, malformed and non-positive values.
func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
