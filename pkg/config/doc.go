// Package config loads typed configuration from environment variables and
// .env files.
//
// It wraps github.com/joho/godotenv for .env files,
// github.com/caarlos0/env/v11 for parsing struct fields from `env` tags, and
// github.com/go-playground/validator/v10 for checking the parsed values
// against `validate` tags.
//
// Each configuration type is parsed once and cached by its type name. A
// failed parse is not cached, so a later call can succeed after the
// environment changes.
//
// # Usage
//
//	type Settings struct {
//	    Method  string `env:"DATAKIT_METHOD" envDefault:"n_dist" validate:"oneof=n_dist l_sizes"`
//	    K       int    `env:"DATAKIT_K" envDefault:"5" validate:"min=1"`
//	    Verbose bool   `env:"DATAKIT_VERBOSE"`
//	}
//
//	if err := config.LoadEnv("./datakit.env"); err != nil {
//	    return err
//	}
//	var s Settings
//	if err := config.Load(&s); err != nil {
//	    return err
//	}
//
// # Error Handling
//
//   - ErrParsingConfig: env tags could not be satisfied.
//   - ErrInvalidConfig: validate tags failed; the validator.ValidationErrors
//     value is joined into the returned error.
//   - ErrLoadingEnvFile: a .env file could not be read.
//   - ErrNilPointer: a nil pointer was passed.
//
// ResetCache and ForceReloadConfig exist for tests and for reloading after
// the environment is changed at runtime.
package config
