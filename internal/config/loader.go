package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is used when CONFIG_PATH is not set.
const DefaultPath = "./config.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (env-default tags, plus defaults() for
// settings whose zero value is meaningful).
// The YAML file path is determined by CONFIG_PATH env (fallback DefaultPath).
// If the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path != "" {
		return LoadFile(path)
	}

	if _, err := os.Stat(DefaultPath); err == nil {
		return LoadFile(DefaultPath)
	}

	cfg := defaults()
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return finish(&cfg)
}

// LoadFile reads configuration from the given YAML file plus ENV overrides.
// A missing file is an error.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	}

	cfg := defaults()
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return finish(&cfg)
}

// defaults seeds settings where false or 0 is a valid explicit choice.
// cleanenv applies env-default to any zero field, so these cannot use the
// tag without clobbering an explicit "enabled: false", "rate_limit: 0" or
// "allowed_origins: ''".
func defaults() Config {
	return Config{
		Database: DatabaseConfig{MinConns: 5},
		GraphQL:  GraphQLConfig{RateLimit: 600, Concurrency: 64},
		Metrics:  MetricsConfig{Enabled: true},
		CORS:     CORSConfig{AllowedOrigins: "*", AllowCredentials: true},
	}
}

func finish(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}
