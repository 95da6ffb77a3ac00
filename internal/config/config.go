// Package config provides runtime configuration values for the server and CLI.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the knobs shared by the mock server and the stockctl client.
type Config struct {
	HTTPAddr        string        `yaml:"http_addr" env:"HTTP_ADDR" env-default:":8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"15s"`
	LogLevel        string        `yaml:"log_level" env:"LOG_LEVEL" env-default:"INFO"`

	// MockAPI selects the in-process endpoint instead of a remote server.
	MockAPI    bool   `yaml:"mock_api" env:"MOCK_API" env-default:"true"`
	APIBaseURL string `yaml:"api_base_url" env:"API_BASE_URL" env-default:"http://localhost:8080"`

	PageSize int    `yaml:"page_size" env:"PAGE_SIZE" env-default:"6"`
	SeedPath string `yaml:"seed_path" env:"SEED_PATH"`
}

// Load reads configuration from the environment with defaults. When path is
// set the YAML file is read first and the environment overrides it; a missing
// file falls back to the environment alone.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("read env: %w", err)
		}
		return cfg, cfg.Validate()
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		var pe *os.PathError
		if !errors.As(err, &pe) {
			return Config{}, fmt.Errorf("read config %q: %w", path, err)
		}
		cfg = Config{}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("read env: %w", err)
		}
	}
	return cfg, cfg.Validate()
}

// Validate rejects values the components cannot run with.
func (c Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("shutdown_timeout must not be negative, got %s", c.ShutdownTimeout)
	}
	if c.MockAPI {
		return nil
	}
	if c.APIBaseURL == "" {
		return errors.New("api_base_url is required when mock_api is false")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api_base_url %q is not an absolute URL", c.APIBaseURL)
	}
	return nil
}
