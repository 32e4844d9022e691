package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Processing ProcessingConfig
	Redis      RedisConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// ProcessingConfig holds worker and chunking configuration
type ProcessingConfig struct {
	ChunkSize      int
	BatchSize      int
	Workers        int
	QueueSize      int
	ProcessTimeout time.Duration
	UploadDir      string
	ExportDir      string
	MaxFileSize    int64
}

// RedisConfig holds the optional progress-store configuration.
// When Addr is empty, progress is tracked in process memory.
type RedisConfig struct {
	Addr        string
	ProgressTTL time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Processing: ProcessingConfig{
			ChunkSize:      getEnvAsInt("PROCESSING_CHUNK_SIZE", 10000),
			BatchSize:      getEnvAsInt("PROCESSING_BATCH_SIZE", 1000),
			Workers:        getEnvAsInt("PROCESSING_WORKERS", 4),
			QueueSize:      getEnvAsInt("PROCESSING_QUEUE_SIZE", 256),
			ProcessTimeout: getEnvAsDuration("PROCESSING_TIMEOUT", time.Hour),
			UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
			ExportDir:      getEnv("EXPORT_DIR", "./exports"),
			MaxFileSize:    getEnvAsInt64("MAX_FILE_SIZE", 100*1024*1024),
		},
		Redis: RedisConfig{
			Addr:        getEnv("REDIS_ADDR", ""),
			ProgressTTL: getEnvAsDuration("REDIS_PROGRESS_TTL", 24*time.Hour),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Processing.ChunkSize <= 0 || c.Processing.BatchSize <= 0 {
		return NewAppError("CONFIG_ERROR", "chunk and batch sizes must be positive", ErrInvalidInput)
	}
	return nil
}
