package server

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/softwarewrighter/system-monitor/pkg/errors"
)

// Config holds server configuration.
type Config struct {
	// Server identity, set by the caller rather than config files.
	Name    string `yaml:"-"`
	Version string `yaml:"-"`

	Address string `yaml:"address"`
	Port    int    `yaml:"port"`

	// Rate limiting applied to the /v1 endpoints.
	RateLimit      float64 `yaml:"rate_limit"`       // requests per second
	RateLimitBurst int     `yaml:"rate_limit_burst"` // burst size

	// StreamInterval is the default push interval for /v1/stream.
	StreamInterval time.Duration `yaml:"stream_interval"`

	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DefaultConfig returns sensible defaults with environment overrides applied.
func DefaultConfig() *Config {
	// Pick up a .env file when present; absence is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Name:            "sysmond",
		Version:         "dev",
		Address:         "",
		Port:            8080,
		RateLimit:       100, // 100 req/s
		RateLimitBurst:  200, // burst of 200
		StreamInterval:  2 * time.Second,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 30 * time.Second,
	}
	cfg.applyEnv()
	return cfg
}

// LoadConfig builds the configuration from defaults, an optional YAML file,
// and environment overrides, in that order of precedence (env wins).
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "reading config file", err).
				WithContext("path", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "parsing config file", err).
				WithContext("path", path)
		}
		// File values may have clobbered env overrides; reapply.
		cfg.applyEnv()
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if portStr := os.Getenv("PORT"); portStr != "" {
		var port int
		if _, err := fmt.Sscanf(portStr, "%d", &port); err == nil {
			c.Port = port
		}
	}

	// Allow customization of shutdown timeout to match eviction grace periods.
	if shutdownStr := os.Getenv("SHUTDOWN_TIMEOUT_SECONDS"); shutdownStr != "" {
		var seconds int
		if _, err := fmt.Sscanf(shutdownStr, "%d", &seconds); err == nil && seconds > 0 {
			c.ShutdownTimeout = time.Duration(seconds) * time.Second
		}
	}

	if intervalStr := os.Getenv("SYSMON_STREAM_INTERVAL"); intervalStr != "" {
		if d, err := time.ParseDuration(intervalStr); err == nil && d > 0 {
			c.StreamInterval = d
		}
	}
}
