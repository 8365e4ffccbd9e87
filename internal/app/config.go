package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Catalogs []string // extra .hcl catalog overlay files or directories

	LogFormat string
	LogLevel  string

	List bool     // list the known units and substances instead of converting
	Args []string // positional conversion tokens
}

func NewConfig(cfg Config) (*Config, error) {
	if !cfg.List && len(cfg.Args) == 0 {
		return nil, errors.New("Args is a required configuration field and cannot be empty")
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}

	return &cfg, nil
}
