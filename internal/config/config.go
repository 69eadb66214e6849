package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for the optional journal mirror.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether a mirror endpoint was configured.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// JournalConfig describes the remote journal endpoint.
type JournalConfig struct {
	// BaseURL is joined with "/<id>.pdf" verbatim.
	BaseURL    string
	TimeoutSec int
	// MaxBytes caps the downloaded body; 0 disables the limit.
	MaxBytes  int64
	UserAgent string
}

// CacheConfig holds the location of the app-private documents directory.
type CacheConfig struct {
	DocumentsDir string
}

// PreferencesConfig selects where the onboarding preference is persisted.
type PreferencesConfig struct {
	// Backend is "file" or "postgres".
	Backend  string
	FilePath string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	// AppHost is the Swagger host used when a request carries no Host header.
	AppHost     string
	Port        string
	LogLevel    string
	Journal     JournalConfig
	Cache       CacheConfig
	Preferences PreferencesConfig
	Database    DatabaseConfig
	MinIO       MinIOConfig
}

const (
	PreferencesBackendFile     = "file"
	PreferencesBackendPostgres = "postgres"

	DefaultJournalBaseURL = "http://ntv.ifmo.ru/file/journal"
)

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	dataDir := getEnv("DATA_DIR", defaultDataDir())

	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8080"),
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Journal: JournalConfig{
			BaseURL:    getEnv("JOURNAL_BASE_URL", DefaultJournalBaseURL),
			TimeoutSec: getEnvInt("JOURNAL_HTTP_TIMEOUT_SEC", 0),
			MaxBytes:   int64(getEnvInt("JOURNAL_MAX_BYTES", 256<<20)),
			UserAgent:  getEnv("JOURNAL_USER_AGENT", "journalfetch/1.0"),
		},
		Cache: CacheConfig{
			DocumentsDir: getEnv("DOCUMENTS_DIR", filepath.Join(dataDir, "documents")),
		},
		Preferences: PreferencesConfig{
			Backend:  getEnv("PREFERENCES_BACKEND", PreferencesBackendFile),
			FilePath: getEnv("PREFERENCES_FILE", filepath.Join(dataDir, "preferences.json")),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

// defaultDataDir resolves the per-user data directory, falling back to the working directory.
func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "journalfetch")
	}
	return ".journalfetch"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
