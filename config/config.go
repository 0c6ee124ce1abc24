package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Configuration
	Port        string
	Environment string
	Debug       bool

	// Database Configuration
	MongoURI string
	DBName   string

	// Session Configuration
	SessionSecret string
	SessionMaxAge time.Duration

	// Media Host Configuration (S3-compatible)
	MediaEndpoint  string
	MediaRegion    string
	MediaBucket    string
	MediaAccessKey string
	MediaSecretKey string
	MediaBaseURL   string
	MaxImageSize   int64

	// Security Configuration
	CORSAllowedOrigins []string

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SalesEmail   string
	SupportEmail string

	// Third-party keys surfaced to the frontend
	MapsAPIKey string

	// Application Configuration
	AppName    string
	AppVersion string
	AppURL     string
	UploadPath string

	// Admin bootstrap
	AdminDefaultEmail string
	AdminDefaultPass  string
}

var AppConfig *Config

// LoadConfig loads configuration from environment variables.
// A .env file is honored in development when present.
func LoadConfig() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env file")
	}

	config := &Config{
		// Server Configuration
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		Debug:       getEnvAsBool("DEBUG", true),

		// Database Configuration
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:   getEnv("DB_NAME", "fibresite"),

		// Session Configuration
		SessionSecret: getEnv("SESSION_SECRET", "change-me-in-production"),
		SessionMaxAge: getEnvAsDuration("SESSION_MAX_AGE", "24h"),

		// Media Host Configuration
		MediaEndpoint:  getEnv("MEDIA_ENDPOINT", ""),
		MediaRegion:    getEnv("MEDIA_REGION", "us-east-1"),
		MediaBucket:    getEnv("MEDIA_BUCKET", ""),
		MediaAccessKey: getEnv("MEDIA_ACCESS_KEY", ""),
		MediaSecretKey: getEnv("MEDIA_SECRET_KEY", ""),
		MediaBaseURL:   getEnv("MEDIA_BASE_URL", ""),
		MaxImageSize:   getEnvAsInt64("MAX_IMAGE_SIZE", 10485760), // 10MB

		// Security Configuration
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:8080",
		}),

		// Email Configuration
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 465),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@example.com"),
		SalesEmail:   getEnv("SALES_EMAIL", ""),
		SupportEmail: getEnv("SUPPORT_EMAIL", ""),

		// Third-party keys
		MapsAPIKey: getEnv("MAPS_API_KEY", ""),

		// Application Configuration
		AppName:    getEnv("APP_NAME", "FibreSite"),
		AppVersion: getEnv("APP_VERSION", "1.0.0"),
		AppURL:     getEnv("APP_URL", "http://localhost:8080"),
		UploadPath: getEnv("UPLOAD_PATH", "./public/uploads"),

		// Admin bootstrap
		AdminDefaultEmail: getEnv("ADMIN_DEFAULT_EMAIL", "admin@example.com"),
		AdminDefaultPass:  getEnv("ADMIN_DEFAULT_PASS", "admin123"),
	}

	// Set global config
	AppConfig = config

	if config.Debug {
		log.Printf("Configuration loaded: Environment=%s, Port=%s, Database=%s",
			config.Environment, config.Port, config.DBName)
	}

	return config
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	if parsed, err := time.ParseDuration(defaultValue); err == nil {
		return parsed
	}
	return 24 * time.Hour // fallback
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		var result []string
		for _, item := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GetServerAddress returns the server address for listening
func (c *Config) GetServerAddress() string {
	return ":" + c.Port
}

// MediaConfigured reports whether remote media host credentials are present.
func (c *Config) MediaConfigured() bool {
	return c.MediaBucket != "" && c.MediaAccessKey != "" && c.MediaSecretKey != ""
}

// ValidateConfig validates the configuration
func (c *Config) ValidateConfig() error {
	if c.MongoURI == "" {
		log.Fatal("MONGO_URI environment variable is required")
	}

	if c.SessionSecret == "change-me-in-production" && c.IsProduction() {
		log.Fatal("SESSION_SECRET must be changed in production")
	}

	// Create upload directory if it doesn't exist
	if err := os.MkdirAll(c.UploadPath, 0755); err != nil {
		log.Printf("Warning: Could not create upload directory %s: %v", c.UploadPath, err)
	}

	return nil
}
