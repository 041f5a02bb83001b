package config

import (
	"regexp"
	"time"

	"git.home.luguber.info/inful/reindex/internal/foundation/errors"
)

var fieldNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Validate checks a configuration after defaults have been applied.
func Validate(cfg *Config) error {
	if cfg.ContentDir == "" {
		return errors.ConfigError("content_dir must not be empty").Build()
	}

	seen := make(map[string]bool, len(cfg.Fields))
	for _, f := range cfg.Fields {
		if !fieldNamePattern.MatchString(f) {
			return errors.ConfigError("invalid field name").WithContext("field", f).Build()
		}
		if seen[f] {
			return errors.ConfigError("duplicate field name").WithContext("field", f).Build()
		}
		seen[f] = true
	}

	d, err := time.ParseDuration(cfg.Watch.Debounce)
	if err != nil {
		return invalidField("watch.debounce", err)
	}
	if d <= 0 {
		return errors.ConfigError("watch.debounce must be positive").WithContext("field", "watch.debounce").Build()
	}
	return nil
}
