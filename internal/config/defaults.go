package config

import (
	"time"

	"git.home.luguber.info/inful/reindex/internal/reindex"
)

// Default values applied to an empty configuration.
const (
	DefaultContentDir   = "content"
	DefaultOutputFormat = "text"
	DefaultDebounce     = 500 * time.Millisecond
)

func applyDefaults(cfg *Config) {
	if cfg.ContentDir == "" {
		cfg.ContentDir = DefaultContentDir
	}
	if len(cfg.Fields) == 0 {
		cfg.Fields = append([]string(nil), reindex.DefaultFields...)
	}
	if cfg.Watch.Debounce == "" {
		cfg.Watch.Debounce = DefaultDebounce.String()
	}
}
