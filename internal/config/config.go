package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      int
	LogLevel  string
	DevMode   bool
	StaticDir string

	// Initial slider values for the dashboard, from the paper's worked example
	DefaultVulnerability float64
	DefaultLoss          float64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:                 getEnvAsInt("PORT", 8080),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		DevMode:              getEnvAsBool("DEV_MODE", false),
		StaticDir:            getEnv("STATIC_DIR", "./web/static"),
		DefaultVulnerability: getEnvAsFloat("DEFAULT_VULNERABILITY", 0.3),
		DefaultLoss:          getEnvAsFloat("DEFAULT_LOSS", 72.6),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that configured defaults stay inside the model's documented domains
func (c *Config) Validate() error {
	if c.DefaultVulnerability < 0 || c.DefaultVulnerability > 1 {
		return fmt.Errorf("DEFAULT_VULNERABILITY must be in [0, 1], got %v", c.DefaultVulnerability)
	}
	if c.DefaultLoss < 0 {
		return fmt.Errorf("DEFAULT_LOSS must be non-negative, got %v", c.DefaultLoss)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be a valid TCP port, got %d", c.Port)
	}
	return nil
}

// Helper functions
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
