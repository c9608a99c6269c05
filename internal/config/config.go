package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Dias221467/Birthday_Wall/pkg/apperrors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// Config holds the application configuration.
type Config struct {
	Port           string
	MongoURI       string
	DBName         string
	AllowedOrigins []string
	UploadDir      string
	MaxUploadBytes int64
	ConnectTimeout time.Duration
	StatsSchedule  string
	LogLevel       string
}

// LoadConfig loads configuration from a .env file (if present) and the environment.
// A missing or malformed MONGODB_URI is a configuration error.
// maxUploadMB keeps the byte limit well inside int64.
const maxUploadMB = 1 << 20

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		MongoURI:       strings.TrimSpace(os.Getenv("MONGODB_URI")),
		DBName:         getEnv("MONGODB_DB", "birthday_app"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes: getEnvAsInt64("MAX_UPLOAD_MB", 10, maxUploadMB) << 20,
		ConnectTimeout: getEnvAsDuration("CONNECT_TIMEOUT", 10*time.Second),
		StatsSchedule:  getEnv("STATS_SCHEDULE", "@daily"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	if cfg.MongoURI == "" {
		return nil, apperrors.Configuration("MONGODB_URI is not set", nil)
	}
	if _, err := connstring.ParseAndValidate(cfg.MongoURI); err != nil {
		// the parse error can echo the URI, credentials included
		return nil, apperrors.Configuration("MONGODB_URI is malformed", nil)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt64 reads a positive integer no greater than limit.
func getEnvAsInt64(key string, defaultValue, limit int64) int64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 || n > limit {
		logrus.WithField("key", key).Warn("Invalid integer in environment, using default")
		return defaultValue
	}
	return n
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		logrus.WithField("key", key).Warn("Invalid duration in environment, using default")
		return defaultValue
	}
	return d
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
