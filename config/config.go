package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the application configuration, read from the environment.
type Config struct {
	Port          string `env:"PORT" env-default:"3000"`
	BaseURL       string `env:"BASE_URL" env-default:"http://localhost:3000"`
	DBPath        string `env:"DB_PATH" env-default:"tasks.db"`
	DBDebug       bool   `env:"DB_DEBUG" env-default:"false"`
	DefaultStatus string `env:"TASK_DEFAULT_STATUS" env-default:""`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("cannot read env: %w", err)
	}
	if cfg.DefaultStatus != "" {
		switch cfg.DefaultStatus {
		case "pending", "in_progress", "completed":
		default:
			return Config{}, fmt.Errorf("invalid TASK_DEFAULT_STATUS: %q", cfg.DefaultStatus)
		}
	}
	return cfg, nil
}
