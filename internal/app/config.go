package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	FontPath   string // path to the OTF/TTF font file
	Characters string // characters to render, in order, duplicates allowed
	OutputDir  string // created if missing

	Width  int // sprite width in pixels
	Height int // sprite height in pixels

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and applies logging defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.FontPath == "" {
		return nil, errors.New("FontPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("OutputDir is a required configuration field and cannot be empty")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.New("Width and Height must be positive")
	}
	if cfg.Characters == "" {
		return nil, errors.New("Characters must contain at least one character")
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return &cfg, nil
}
