package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is loaded once at startup and handed to every component that
// needs it.
type Config struct {
	Port            string        `yaml:"port"`
	DatabaseURL     string        `yaml:"databaseURL"`
	JWTSecret       string        `yaml:"jwtSecret"`
	JWTExpiration   time.Duration `yaml:"jwtExpiration"`
	BcryptCost      int           `yaml:"bcryptCost"`
	HashConcurrency int           `yaml:"hashConcurrency"`
	LogLevel        string        `yaml:"logLevel"`
	CookieSecure    bool          `yaml:"cookieSecure"`
}

func Default() Config {
	return Config{
		Port:            "7000",
		JWTExpiration:   24 * time.Hour,
		BcryptCost:      10,
		HashConcurrency: 4,
		LogLevel:        "info",
	}
}

// Load builds the config from defaults, an optional YAML file and the
// environment, in that order of precedence (env wins).
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("JWT_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("parse JWT_TTL: %w", err)
		}
		cfg.JWTExpiration = d
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("parse BCRYPT_COST: %w", err)
		}
		cfg.BcryptCost = n
	}
	if v := os.Getenv("HASH_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("parse HASH_CONCURRENCY: %w", err)
		}
		cfg.HashConcurrency = n
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("parse COOKIE_SECURE: %w", err)
		}
		cfg.CookieSecure = b
	}

	if cfg.DatabaseURL == "" {
		return cfg, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return cfg, errors.New("JWT_SECRET is required")
	}
	if cfg.JWTExpiration <= 0 {
		return cfg, errors.New("jwt expiration must be positive")
	}
	return cfg, nil
}
