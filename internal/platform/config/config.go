package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr                  string
	Environment           string
	TemplateFile          string
	AllowDocumentReupload bool
	DefaultActor          string
	LogLevel              string
	LogFile               string
	LogMaxSizeMB          int
	LogMaxBackups         int
	LogMaxAgeDays         int
	MaxBodyBytes          int64
	RateLimitPerMinute    int
	ReminderInterval      time.Duration
	MetricsEnabled        bool
	ShutdownTimeout       time.Duration
}

func Load() Config {
	return Config{
		Addr:                  getEnv("APP_ADDR", ":8080"),
		Environment:           getEnv("APP_ENV", "development"),
		TemplateFile:          getEnv("TEMPLATE_FILE", ""),
		AllowDocumentReupload: getEnvBool("ALLOW_DOCUMENT_REUPLOAD", false),
		DefaultActor:          getEnv("DEFAULT_ACTOR", "Admin"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFile:               getEnv("LOG_FILE", ""),
		LogMaxSizeMB:          getEnvInt("LOG_MAX_SIZE_MB", 50),
		LogMaxBackups:         getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays:         getEnvInt("LOG_MAX_AGE_DAYS", 28),
		MaxBodyBytes:          int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMinute:    getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		ReminderInterval:      getEnvDuration("REMINDER_INTERVAL", time.Hour),
		MetricsEnabled:        getEnvBool("METRICS_ENABLED", true),
		ShutdownTimeout:       getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("APP_ADDR is required")
	}
	if strings.TrimSpace(c.DefaultActor) == "" {
		return fmt.Errorf("DEFAULT_ACTOR must not be blank")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}
	if c.LogFile != "" && (c.LogMaxSizeMB <= 0 || c.LogMaxBackups < 0 || c.LogMaxAgeDays < 0) {
		return fmt.Errorf("LOG_MAX_SIZE_MB must be positive and LOG_MAX_BACKUPS/LOG_MAX_AGE_DAYS non-negative")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.ReminderInterval < 0 {
		return fmt.Errorf("REMINDER_INTERVAL must not be negative")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}
