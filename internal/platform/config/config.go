package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	IsProduction   bool
	LogLevel       string
	LogFormat      string // text or json
	SeedDemoData   bool
	DashboardColor bool
}

// JSONLogs reports whether logs should be emitted as JSON.
func (c *Config) JSONLogs() bool {
	return c.IsProduction || c.LogFormat == "json"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("SEED_DEMO_DATA", true)
	v.SetDefault("DASHBOARD_COLOR", true)

	// Environment variables override defaults and .env values.
	v.AutomaticEnv()

	cfg := &Config{
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		SeedDemoData:   v.GetBool("SEED_DEMO_DATA"),
		DashboardColor: v.GetBool("DASHBOARD_COLOR"),
	}

	cfg.LogLevel = strings.ToLower(v.GetString("LOG_LEVEL"))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", cfg.LogLevel)
		cfg.LogLevel = "info"
	}

	cfg.LogFormat = strings.ToLower(v.GetString("LOG_FORMAT"))
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		log.Printf("Warning: Invalid value for LOG_FORMAT ('%s'). Defaulting to text.\n", cfg.LogFormat)
		cfg.LogFormat = "text"
	}

	return cfg, nil
}
