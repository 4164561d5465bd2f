package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Storage configuration
	DataDir          string
	StoriesFile      string
	CommentsFile     string
	InteractionsFile string

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		ReadTimeout:      getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:     getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:      getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		DataDir:          getEnv("DATA_DIR", "./data"),
		StoriesFile:      getEnv("STORIES_FILE", "stories.json"),
		CommentsFile:     getEnv("COMMENTS_FILE", "comments.json"),
		InteractionsFile: getEnv("INTERACTIONS_FILE", "interactions.json"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	if c.StoriesFile == "" {
		return fmt.Errorf("STORIES_FILE is required")
	}
	if c.CommentsFile == "" {
		return fmt.Errorf("COMMENTS_FILE is required")
	}
	if c.InteractionsFile == "" {
		return fmt.Errorf("INTERACTIONS_FILE is required")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
