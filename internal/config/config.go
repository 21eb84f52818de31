// Package config handles the optional rblxapi2cpp configuration file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bakito/rblxapi2cpp/internal/source"
)

const defaultTimeout = 30 * time.Second

// Config represents the rblxapi2cpp configuration file.
type Config struct {
	Source    Source `yaml:"source"`
	Templates string `yaml:"templates,omitempty"`
}

// Source configures where documents are fetched from.
type Source struct {
	BaseURL    string        `yaml:"baseURL"`
	Repository string        `yaml:"repository"`
	Ref        string        `yaml:"ref"`
	Path       string        `yaml:"path"`
	Timeout    time.Duration `yaml:"timeout"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Source: Source{
			BaseURL:    source.DefaultBaseURL,
			Repository: source.DefaultRepository,
			Ref:        source.DefaultRef,
			Path:       source.DefaultPath,
			Timeout:    defaultTimeout,
		},
	}
}

// Load reads a Config from a file path. Values missing in the file keep their defaults.
// An empty path returns the default configuration.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(`failed to read config file "%s": %w`, path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf(`failed to unmarshal config file "%s": %w`, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf(`invalid config file "%s": %w`, path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Source.BaseURL == "" {
		return errors.New("source.baseURL must not be empty")
	}
	u, err := url.Parse(c.Source.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid source.baseURL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported source.baseURL scheme %q", u.Scheme)
	}
	if c.Source.Timeout < 0 {
		return errors.New("source.timeout must not be negative")
	}
	return nil
}

// HTTPSource returns the document source for the configured content delivery network.
func (c *Config) HTTPSource() *source.HTTPSource {
	return source.NewHTTPSource(c.Source.BaseURL, c.Source.Timeout)
}

// GitSource returns the document source for the configured repository.
func (c *Config) GitSource() *source.GitSource {
	return source.NewGitSource(c.Source.Repository, c.Source.Ref, c.Source.Path)
}
