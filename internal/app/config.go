package app

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LogFormat string // "text" or "json"
	LogLevel  string // "debug", "info", "warn" or "error"

	// Language is a BCP 47 tag selecting the built-in message catalog.
	Language string
	// MessagesPath optionally points at an HCL file overriding messages.
	MessagesPath string

	lang language.Tag
}

// NewConfig validates cfg and returns a normalized copy.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if _, ok := parseLevel(cfg.LogLevel); !ok {
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.Language == "" {
		cfg.Language = "ru"
	}
	tag, err := language.Parse(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("invalid lang %q: %w", cfg.Language, err)
	}
	cfg.lang = tag

	return &cfg, nil
}

// Tag returns the parsed language tag.
func (c *Config) Tag() language.Tag {
	return c.lang
}
