package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends accepted in STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config holds application configuration
type Config struct {
	Env  string
	Port string

	// Snapshot storage
	StoreBackend string
	SQLitePath   string
	RedisURL     string
	KeyPrefix    string
	StoreTimeout time.Duration

	// Postgres
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Auth
	JWTSecret        string
	JWTExpirationDur time.Duration
	PassphraseHash   string
	WidgetAPIKey     string
	CORSAllowOrigins []string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", BackendSQLite)),
		SQLitePath:   getEnv("SQLITE_PATH", "data/moneytracker.db"),
		RedisURL:     getEnv("REDIS_URL", "localhost:6379"),
		KeyPrefix:    getEnv("KEY_PREFIX", ""),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "moneytracker"),
		DBPassword: getEnv("DB_PASSWORD", "moneytracker"),
		DBName:     getEnv("DB_NAME", "moneytracker"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:        getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
		PassphraseHash:   getEnv("APP_PASSPHRASE_HASH", ""),
		WidgetAPIKey:     getEnv("WIDGET_API_KEY", ""),
		CORSAllowOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}

	config.StoreTimeout = getDuration("STORE_TIMEOUT", 5*time.Second)
	config.JWTExpirationDur = getDuration("JWT_EXPIRES_IN", 24*time.Hour)

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// Set replaces the process configuration. Tests use it to avoid reading the
// environment.
func Set(cfg *Config) {
	appConfig = cfg
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
