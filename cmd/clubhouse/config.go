package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	clubhouse "github.com/clubhouse/client-go"
)

const defaultConfigPath = "clubhouse.yaml"

// Config is the root CLI configuration.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Output OutputConfig `yaml:"output"`
}

// APIConfig contains Clubhouse API settings.
type APIConfig struct {
	Token   string        `yaml:"token"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// Load reads and parses configuration from a YAML file. A missing file at
// the default path is not an error: the configuration then comes entirely
// from environment variables.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		// Expand environment variables before parsing.
		expanded := expandEnvVars(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && path == defaultConfigPath:
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// expandEnvVars replaces ${VAR} and $VAR patterns with environment variable values.
func expandEnvVars(s string) string {
	// Match ${VAR} pattern.
	re := regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}

		return match
	})

	// Match $VAR pattern (only at word boundaries).
	re = regexp.MustCompile(`\$([a-zA-Z_][a-zA-Z0-9_]*)`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}

		return match
	})

	return s
}

// applyDefaults sets default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.API.Token == "" {
		cfg.API.Token = os.Getenv("CLUBHOUSE_API_TOKEN")
	}

	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = os.Getenv("CLUBHOUSE_API_URL")
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = "table"
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.API.Token == "" {
		return fmt.Errorf("api.token is required (set it in the config file or CLUBHOUSE_API_TOKEN)")
	}

	switch c.Output.Format {
	case "table", "json":
	default:
		return fmt.Errorf("unsupported output format: %s", c.Output.Format)
	}

	return nil
}

// newClient builds an API client from the CLI configuration.
func newClient(cfg *Config, log *logrus.Logger) (*clubhouse.Client, error) {
	opts := []clubhouse.Option{
		clubhouse.WithLogger(log),
	}
	if cfg.API.BaseURL != "" {
		opts = append(opts, clubhouse.WithBaseURL(cfg.API.BaseURL))
	}
	if cfg.API.Timeout > 0 {
		opts = append(opts, clubhouse.WithTimeout(cfg.API.Timeout))
	}

	return clubhouse.New(cfg.API.Token, opts...)
}
