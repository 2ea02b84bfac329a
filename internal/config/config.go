package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppCfg struct {
	Env          string        `yaml:"env"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	JWT          struct {
		Secret         string `yaml:"secret"`
		AccessTTLHours int    `yaml:"accessTTLHours"`
		RefreshTTLDays int    `yaml:"refreshTTLDays"`
	} `yaml:"jwt"`
	// AdminEmail designates the one account granted the admin role at
	// registration. Cross-user feedback reads are gated on that role.
	AdminEmail string `yaml:"admin_email"`
}

type MongoCfg struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type RedisCfg struct {
	// Addr may be empty; the feedback stats cache is then skipped and
	// aggregates are read straight from Mongo.
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SecurityCfg struct {
	PasswordHashCost int `yaml:"passwordHashCost"`
}

type Config struct {
	App      AppCfg      `yaml:"app"`
	Mongo    MongoCfg    `yaml:"mongo"`
	Redis    RedisCfg    `yaml:"redis"`
	Security SecurityCfg `yaml:"security"`
}

// AccessTTL returns the configured access-token lifetime (default 24h).
func (c *Config) AccessTTL() time.Duration {
	if c.App.JWT.AccessTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.App.JWT.AccessTTLHours) * time.Hour
}

// RefreshTTL returns the configured refresh-token lifetime (default 7d).
func (c *Config) RefreshTTL() time.Duration {
	if c.App.JWT.RefreshTTLDays <= 0 {
		return 7 * 24 * time.Hour
	}
	return time.Duration(c.App.JWT.RefreshTTLDays) * 24 * time.Hour
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	override := func(env string, apply func(string)) {
		if v := os.Getenv(env); v != "" {
			apply(v)
		}
	}

	override("APP_ENV", func(v string) { cfg.App.Env = v })
	override("APP_PORT", func(v string) {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.App.Port = n
		}
	})
	override("JWT_SECRET", func(v string) { cfg.App.JWT.Secret = v })
	override("JWT_ACCESS_TTL_HOURS", func(v string) {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.App.JWT.AccessTTLHours = n
		}
	})
	override("JWT_REFRESH_TTL_DAYS", func(v string) {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.App.JWT.RefreshTTLDays = n
		}
	})
	override("ADMIN_EMAIL", func(v string) { cfg.App.AdminEmail = v })
	override("MONGO_URI", func(v string) { cfg.Mongo.URI = v })
	override("MONGO_DB", func(v string) { cfg.Mongo.Database = v })
	override("REDIS_ADDR", func(v string) { cfg.Redis.Addr = v })
	override("REDIS_PASSWORD", func(v string) { cfg.Redis.Password = v })
	override("PASSWORD_HASH_COST", func(v string) {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Security.PasswordHashCost = n
		}
	})

	if cfg.App.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required (set in .env or config.yaml)")
	}
	if cfg.Mongo.URI == "" {
		return nil, errors.New("MONGO_URI is required")
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = "audio-classifier"
	}
	if cfg.App.Port == 0 {
		cfg.App.Port = 5000
	}

	return cfg, nil
}
