package config

import (
	"os"
	"time"

	"git.home.luguber.info/inful/reindex/internal/foundation/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "reindex.yaml"

// Config represents the reindex configuration file.
type Config struct {
	ContentDir   string        `yaml:"content_dir"`
	Fields       []string      `yaml:"fields,omitempty"`
	WriteMode    string        `yaml:"write_mode,omitempty"`    // inplace|atomic
	LeafOnly     bool          `yaml:"leaf_only,omitempty"`     // skip a root that has subdirectories
	RequireClean bool          `yaml:"require_clean,omitempty"` // refuse to run on a dirty git worktree
	Output       OutputConfig  `yaml:"output,omitempty"`
	Watch        WatchConfig   `yaml:"watch,omitempty"`
	Logging      LoggingConfig `yaml:"logging,omitempty"`
}

// OutputConfig controls how run results are reported.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // text|json
	Strict bool   `yaml:"strict,omitempty"` // per-file failures fail the command
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	Debounce string `yaml:"debounce,omitempty"` // Go duration, e.g. "500ms"
}

// DebounceDuration parses Debounce. Validation guarantees it parses.
func (w WatchConfig) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(w.Debounce)
	if err != nil {
		return DefaultDebounce
	}
	return d
}

// Load reads the configuration at path. A missing file is an error only when
// required is set; otherwise defaults are used. Environment variables from
// .env files and REINDEX_* overrides are applied on top of the file.
func Load(path string, required bool) (*Config, error) {
	loadEnvFiles()

	cfg := &Config{}
	data, err := os.ReadFile(path) // #nosec G304 -- path is user supplied configuration
	switch {
	case err == nil:
		// Expand environment variables in the YAML content
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse configuration file").
				WithContext("path", path).
				Fatal().
				Build()
		}
	case os.IsNotExist(err) && !required:
		// defaults only
	case os.IsNotExist(err):
		return nil, errors.ConfigError("configuration file not found").WithContext("path", path).Build()
	default:
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read configuration file").
			WithContext("path", path).
			Fatal().
			Build()
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := normalize(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a validated configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	_ = normalize(cfg)
	applyDefaults(cfg)
	return cfg
}

// Init writes an example configuration file.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal configuration").Build()
	}
	header := "# reindex configuration\n# Fields are rewritten in the order listed.\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0o600); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write configuration file").
			WithContext("path", path).
			Build()
	}
	return nil
}
