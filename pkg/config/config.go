package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service
type Config struct {
	// Environment settings
	Environment string
	Host        string
	Port        string

	// Database settings
	PostgresDSN string

	// Upload settings
	UploadsDir      string
	UploadPrefix    string // public URL prefix the static server and upload store agree on
	MaxUploadBytes  int64
	S3Bucket        string
	S3Region        string
	S3PublicBaseURL string

	// Document settings
	MaxDocumentDepth int

	// Fallback author for unauthenticated post creation
	DefaultAuthorEmail string

	// CORS settings
	AllowedOrigins []string

	// Debug settings
	Debug bool
}

// LoadConfig loads configuration from the environment (and .env files)
func LoadConfig() *Config {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	// Load the matching .env file; missing files are fine
	switch env {
	case "production":
		_ = godotenv.Load(".env.production")
	default:
		_ = godotenv.Load(".env.local")
	}
	_ = godotenv.Load() // plain .env as fallback

	config := &Config{
		Environment:        getEnvWithDefault("ENVIRONMENT", "development"),
		Host:               getEnvWithDefault("HOST", "0.0.0.0"),
		Port:               getEnvWithDefault("PORT", "4000"),
		UploadsDir:         getEnvWithDefault("UPLOADS_DIR", "uploads"),
		UploadPrefix:       getEnvWithDefault("UPLOAD_PREFIX", "/uploads"),
		MaxUploadBytes:     getEnvInt64("MAX_UPLOAD_BYTES", 10<<20),
		MaxDocumentDepth:   getEnvInt("MAX_DOCUMENT_DEPTH", 64),
		DefaultAuthorEmail: getEnvWithDefault("DEFAULT_AUTHOR_EMAIL", "admin@example.com"),
		Debug:              getEnvBool("DEBUG", false),
	}

	// Trim whitespace to avoid trailing spaces/newlines from env sources
	config.PostgresDSN = strings.TrimSpace(os.Getenv("POSTGRES_DSN"))
	config.S3Bucket = strings.TrimSpace(os.Getenv("S3_BUCKET"))
	config.S3Region = strings.TrimSpace(os.Getenv("AWS_REGION"))
	config.S3PublicBaseURL = strings.TrimSpace(os.Getenv("S3_PUBLIC_BASE_URL"))

	allowedOrigins := getEnvWithDefault("ALLOWED_ORIGINS", "*")
	if allowedOrigins == "*" {
		config.AllowedOrigins = []string{"*"}
	} else {
		config.AllowedOrigins = strings.Split(allowedOrigins, ",")
	}

	if config.Environment == "production" {
		if config.PostgresDSN == "" {
			fmt.Println("WARNING: production environment without POSTGRES_DSN, posts are kept in memory only")
		}
		config.Debug = false
	}

	return config
}

// Cached config (initialized once per process)
var (
	cachedConfig *Config
	configOnce   sync.Once
)

// GetCached returns the process-wide cached Config.
func GetCached() *Config {
	configOnce.Do(func() {
		cachedConfig = LoadConfig()
	})
	return cachedConfig
}

// Validate checks the configuration for inconsistencies
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.MaxDocumentDepth <= 0 {
		return fmt.Errorf("MAX_DOCUMENT_DEPTH must be positive")
	}

	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}

	if !strings.HasPrefix(c.UploadPrefix, "/") {
		return fmt.Errorf("UPLOAD_PREFIX must start with '/'")
	}

	if c.S3Bucket != "" && c.S3Region == "" {
		return fmt.Errorf("AWS_REGION is required when S3_BUCKET is set")
	}

	return nil
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsDevelopment reports whether the service runs in development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// helpers

// getEnvWithDefault returns the env value or a default when unset
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean env value or a default when unset/invalid
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvInt returns an integer env value or a default when unset/invalid
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvInt64 returns an int64 env value or a default when unset/invalid
func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
