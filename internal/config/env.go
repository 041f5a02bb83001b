package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/reindex/internal/foundation/errors"
	"github.com/joho/godotenv"
)

// Environment variables that override file values.
const (
	EnvContentDir   = "REINDEX_CONTENT_DIR"
	EnvFields       = "REINDEX_FIELDS"
	EnvWriteMode    = "REINDEX_WRITE_MODE"
	EnvLeafOnly     = "REINDEX_LEAF_ONLY"
	EnvRequireClean = "REINDEX_REQUIRE_CLEAN"
	EnvLogLevel     = "REINDEX_LOG_LEVEL"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads .env files that exist. Existing process environment
// variables are not overwritten.
func loadEnvFiles() {
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			slog.Warn("Failed to load environment file", "file", name, "error", err)
			continue
		}
		slog.Debug("Loaded environment variables", "file", name)
	}
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvContentDir); v != "" {
		cfg.ContentDir = v
	}
	if v := os.Getenv(EnvFields); v != "" {
		cfg.Fields = splitList(v)
	}
	if v := os.Getenv(EnvWriteMode); v != "" {
		cfg.WriteMode = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = LogLevel(v)
	}
	for name, target := range map[string]*bool{
		EnvLeafOnly:     &cfg.LeafOnly,
		EnvRequireClean: &cfg.RequireClean,
	} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.WrapError(err, errors.CategoryConfig, fmt.Sprintf("invalid boolean in %s", name)).
				Fatal().
				Build()
		}
		*target = b
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
