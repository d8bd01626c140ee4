package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sirupsen/logrus"
)

const (
	sourceFixture = "fixture"
	sourceMySQL   = "mysql"

	langEnglish  = "en"
	langJapanese = "ja"
)

// Config is the root configuration of the command.
type Config struct {
	Source   string         `yaml:"source" env:"FACETFISH_SOURCE" env-default:"fixture"`
	Lang     string         `yaml:"lang"   env:"FACETFISH_LANG"   env-default:"en"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	Cache    CacheConfig    `yaml:"cache"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"FACETFISH_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"FACETFISH_LOG_FORMAT" env-default:"text"`
}

// DatabaseConfig holds MySQL connection settings, used when Source is mysql.
type DatabaseConfig struct {
	User     string `yaml:"user"     env:"FACETFISH_DB_USER"     env-default:"root"`
	Password string `yaml:"password" env:"FACETFISH_DB_PASSWORD" env-default:"password"`
	Addr     string `yaml:"addr"     env:"FACETFISH_DB_ADDR"     env-default:"127.0.0.1"`
	Port     string `yaml:"port"     env:"FACETFISH_DB_PORT"     env-default:"3306"`
	Name     string `yaml:"name"     env:"FACETFISH_DB_NAME"     env-default:"facetfish"`
}

// CacheConfig holds result cache settings.
type CacheConfig struct {
	Disabled        bool          `yaml:"disabled"         env:"FACETFISH_CACHE_DISABLED"`
	Expiration      time.Duration `yaml:"expiration"       env:"FACETFISH_CACHE_EXPIRATION"       env-default:"5m"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"FACETFISH_CACHE_CLEANUP_INTERVAL" env-default:"10m"`
}

// Read reads configuration from a YAML file and environment variables without validating it.
// Priority: ENV > YAML > defaults. With an empty path only ENV and defaults are used.
func Read(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, nil
}

// Load is Read followed by Validate.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

// Validate checks the values cleanenv cannot express with tags.
func (c *Config) Validate() error {
	if !slices.Contains([]string{sourceFixture, sourceMySQL}, c.Source) {
		return fmt.Errorf("source must be %q or %q, got %q", sourceFixture, sourceMySQL, c.Source)
	}
	if !slices.Contains([]string{langEnglish, langJapanese}, c.Lang) {
		return fmt.Errorf("lang must be %q or %q, got %q", langEnglish, langJapanese, c.Lang)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if !slices.Contains([]string{"text", "json"}, c.Log.Format) {
		return fmt.Errorf("log.format must be \"text\" or \"json\", got %q", c.Log.Format)
	}
	if !c.Cache.Disabled && c.Cache.Expiration <= 0 {
		return fmt.Errorf("cache.expiration must be positive, got %s", c.Cache.Expiration)
	}
	return nil
}
