package app

import (
	"errors"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the client platform.
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	APIBaseURL     string        `envconfig:"API_BASE_URL" default:"http://127.0.0.1:5000/api"`
	APIToken       string        `envconfig:"API_TOKEN"`
	RequestTimeout time.Duration `envconfig:"API_REQUEST_TIMEOUT" default:"30s"`

	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"5m"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.APIBaseURL) == "" {
		return nil, errors.New("api base url must be provided")
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
