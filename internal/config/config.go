package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// The same struct is shared by the extractor, the loader, and the API
// service; each binary validates only the fields it needs via the
// Validate* methods.
type Config struct {
	// SQL Server connection (extractor + auto-training)
	SQLServerHost     string
	SQLServerPort     int
	SQLServerDB       string
	SQLServerUser     string
	SQLServerPassword string
	SQLServerEncrypt  string

	// Filesystem layout shared by extractor and loader
	DataDir string

	// Query service endpoint consumed by the loader
	ServiceURL  string
	HTTPTimeout time.Duration

	// LLM backends (API service)
	LLMBaseURL         string
	LLMModelName       string
	LLMAPIKey          string
	EmbeddingBaseURL   string
	EmbeddingModelName string
	SSLVerify          bool

	// Vector store (API service)
	QdrantURL        string
	QdrantCollection string
	VectorSize       int

	// Local training ledger (API service)
	DBPath string

	APIPort    string
	ExecuteSQL bool

	LogLevel  slog.Level
	LogFormat string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields. If a .env file exists in the current
// directory or a parent directory, it is loaded automatically; environment
// variables already set take precedence over .env file values.
func Load() (*Config, error) {
	_ = godotenv.Load() // Try current directory

	// Walk up a few levels so the binaries can be run from cmd/ subdirs.
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		SQLServerHost:      getEnv("SQLSERVER_HOST", ""),
		SQLServerDB:        getEnv("SQLSERVER_DB", ""),
		SQLServerUser:      getEnv("SQLSERVER_USER", ""),
		SQLServerPassword:  getEnv("SQLSERVER_PASSWORD", ""),
		SQLServerEncrypt:   getEnv("SQLSERVER_ENCRYPT", "disable"),
		DataDir:            getEnv("DATA_DIR", "./data"),
		ServiceURL:         getEnv("SERVICE_URL", "http://localhost:5000"),
		LLMBaseURL:         getEnv("LLM_BASE_URL", "https://api.openai.com"),
		LLMModelName:       getEnv("LLM_MODEL", "gpt-3.5-turbo"),
		LLMAPIKey:          getEnv("LLM_API_KEY", ""),
		EmbeddingBaseURL:   getEnv("EMBEDDING_BASE_URL", "https://api.openai.com"),
		EmbeddingModelName: getEnv("EMBEDDING_MODEL_NAME", "text-embedding-3-small"),
		QdrantURL:          getEnv("QDRANT_URL", "http://localhost:6333"),
		QdrantCollection:   getEnv("QDRANT_COLLECTION", "sqlcoach_training"),
		DBPath:             getEnv("DB_PATH", "./data/sqlcoach.db"),
		APIPort:            getEnv("API_PORT", "5000"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
	}

	port, err := parseIntEnv("SQLSERVER_PORT", 1433)
	if err != nil {
		return nil, err
	}
	cfg.SQLServerPort = port

	timeoutSecs, err := parseIntEnv("HTTP_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, err
	}
	if timeoutSecs <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT_SECONDS must be greater than 0")
	}
	cfg.HTTPTimeout = time.Duration(timeoutSecs) * time.Second

	// VECTOR_SIZE must match the output size of the embeddings model. If the
	// size changes, the Qdrant collection must be recreated.
	vectorSize, err := parseIntEnv("VECTOR_SIZE", 0)
	if err != nil {
		return nil, err
	}
	cfg.VectorSize = vectorSize

	cfg.SSLVerify = parseBoolEnv("SSL_VERIFY", true)
	cfg.ExecuteSQL = parseBoolEnv("EXECUTE_SQL", false)

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

// ValidateDatabase checks the fields required to reach SQL Server.
func (c *Config) ValidateDatabase() error {
	if c.SQLServerHost == "" {
		return fmt.Errorf("SQLSERVER_HOST is required")
	}
	if c.SQLServerDB == "" {
		return fmt.Errorf("SQLSERVER_DB is required")
	}
	return nil
}

// ValidateService checks the fields required by the API service.
func (c *Config) ValidateService() error {
	if c.VectorSize <= 0 {
		return fmt.Errorf("VECTOR_SIZE is required and must be greater than 0")
	}
	if c.LLMAPIKey == "" {
		return fmt.Errorf("LLM_API_KEY is required")
	}
	return nil
}

// ConnString builds the go-mssqldb connection string.
func (c *Config) ConnString() string {
	return fmt.Sprintf("sqlserver://%s:%s@%s:%d?database=%s&encrypt=%s",
		c.SQLServerUser, c.SQLServerPassword, c.SQLServerHost, c.SQLServerPort,
		c.SQLServerDB, c.SQLServerEncrypt)
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseIntEnv parses an integer environment variable, returning the default
// when unset.
func parseIntEnv(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	return v, nil
}

// parseBoolEnv parses a boolean environment variable, returning the default
// when unset or unparseable.
func parseBoolEnv(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(strings.ToLower(raw))
	if err != nil {
		return defaultValue
	}
	return v
}

// parseLogLevel converts a LOG_LEVEL string to a slog.Level.
func parseLogLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q (expected debug, info, warn, or error)", raw)
	}
}
