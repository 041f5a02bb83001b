package config

import (
	"log/slog"

	"git.home.luguber.info/inful/reindex/internal/foundation/normalization"
	"git.home.luguber.info/inful/reindex/internal/reindex"
)

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// LoggingConfig configures the slog handler installed by the CLI.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty"`
}

// SlogLevel maps Level onto slog.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch l.Level {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var logLevelNormalizer = normalization.NewNormalizer(map[string]LogLevel{
	"debug": LogLevelDebug,
	"info":  LogLevelInfo,
	"warn":  LogLevelWarn,
	"error": LogLevelError,
}, LogLevelInfo)

var logFormatNormalizer = normalization.NewNormalizer(map[string]LogFormat{
	"json": LogFormatJSON,
	"text": LogFormatText,
}, LogFormatText)

var writeModeNormalizer = normalization.NewNormalizer(map[string]reindex.WriteMode{
	"inplace":  reindex.WriteModeInPlace,
	"in-place": reindex.WriteModeInPlace,
	"atomic":   reindex.WriteModeAtomic,
}, reindex.WriteModeInPlace)

var outputFormatNormalizer = normalization.NewNormalizer(map[string]string{
	"text": "text",
	"json": "json",
}, DefaultOutputFormat)
