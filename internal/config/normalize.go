package config

import (
	"git.home.luguber.info/inful/reindex/internal/foundation/errors"
)

// normalize case-folds enumerations. Empty values become their defaults;
// unknown values are configuration errors.
func normalize(cfg *Config) error {
	mode, err := writeModeNormalizer.NormalizeWithError(cfg.WriteMode)
	if err != nil {
		return invalidField("write_mode", err)
	}
	cfg.WriteMode = string(mode)

	if cfg.Output.Format, err = outputFormatNormalizer.NormalizeWithError(cfg.Output.Format); err != nil {
		return invalidField("output.format", err)
	}
	if cfg.Logging.Level, err = logLevelNormalizer.NormalizeWithError(string(cfg.Logging.Level)); err != nil {
		return invalidField("logging.level", err)
	}
	if cfg.Logging.Format, err = logFormatNormalizer.NormalizeWithError(string(cfg.Logging.Format)); err != nil {
		return invalidField("logging.format", err)
	}
	return nil
}

func invalidField(field string, err error) error {
	return errors.WrapError(err, errors.CategoryConfig, "invalid configuration value").
		WithContext("field", field).
		Fatal().
		Build()
}
