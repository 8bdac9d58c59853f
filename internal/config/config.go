package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/terraincognita07/habitual/internal/insight"
	"github.com/terraincognita07/habitual/internal/logger"
	"github.com/terraincognita07/habitual/internal/security"
)

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type Config struct {
	Port        string
	DBPath      string
	Location    *time.Location
	Environment string

	LogLevel string
	LogDir   string
	LogJSON  bool

	Insight            insight.Config
	InsightCacheTTL    time.Duration
	RecentWindowDays   int
	QuoteRetentionDays int
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("failed to read .env file", "err", err)
	}

	return Config{
		Port:        getEnv("PORT", "8080"),
		DBPath:      getEnv("DB_PATH", filepath.Join("data", "habitual.db")),
		Location:    LoadLocation(getEnv("TZ", "UTC")),
		Environment: getEnv("ENVIRONMENT", "development"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogDir:   os.Getenv("LOG_DIR"),
		LogJSON:  getBoolEnv("LOG_JSON", false),

		Insight: insight.Config{
			APIKey:        os.Getenv("INSIGHT_API_KEY"),
			BaseURL:       getEnv("INSIGHT_BASE_URL", insight.DefaultBaseURL),
			Model:         getEnv("INSIGHT_MODEL", insight.DefaultModel),
			Timeout:       getDurationEnv("INSIGHT_TIMEOUT", insight.DefaultTimeout),
			RatePerMinute: getIntEnv("INSIGHT_RATE_PER_MINUTE", insight.DefaultRatePerMinute),
		},
		InsightCacheTTL:    getDurationEnv("INSIGHT_CACHE_TTL", time.Hour),
		RecentWindowDays:   getIntEnv("RECENT_WINDOW_DAYS", 7),
		QuoteRetentionDays: getIntEnv("QUOTE_RETENTION_DAYS", 30),
	}
}

func (config Config) IsProduction() bool {
	return strings.EqualFold(config.Environment, "production")
}

// ResolveSecretKey returns SECRET_KEY when it is long enough and not a documented
// placeholder.
func ResolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secret)]; insecure {
		return "", errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secret) < security.MinSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", security.MinSecretKeyLength)
	}
	return secret, nil
}

func ResolvePort(raw string) (string, error) {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("invalid PORT %q: %w", raw, err)
	}
	if port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %d: must be between 1 and 65535", port)
	}
	return strconv.Itoa(port), nil
}

func LoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("invalid TZ, falling back to UTC", "tz", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getIntEnv(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warn("invalid integer env value, using default", "key", key, "value", raw)
		return fallback
	}
	return value
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		logger.Warn("invalid duration env value, using default", "key", key, "value", raw)
		return fallback
	}
	return value
}

func getBoolEnv(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}
