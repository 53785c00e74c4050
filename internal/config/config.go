package config

import (
	"errors"
	"strings"

	"github.com/Lutefd/curconv/internal/logger"
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds user preferences. It is advisory: Load never fails.
type Config struct {
	DefaultFrom  string `json:"default_from" env:"CURCONV_DEFAULT_FROM" env-default:"USD" validate:"len=3,alpha"`
	DefaultTo    string `json:"default_to" env:"CURCONV_DEFAULT_TO" env-default:"RUB" validate:"len=3,alpha"`
	OutputFormat string `json:"output_format" env:"CURCONV_OUTPUT_FORMAT" env-default:"text" validate:"oneof=text json csv"`
}

var validate = validator.New()

func Default() Config {
	return Config{
		DefaultFrom:  "USD",
		DefaultTo:    "RUB",
		OutputFormat: "text",
	}
}

// Load reads the JSON file at path and applies environment overrides.
// An absent, unreadable or malformed file yields the built-in defaults.
func Load(path string) Config {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		logger.Debugf("config file %s not used: %v", path, err)
		cfg = Config{}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			logger.Debugf("config environment not used: %v", err)
			return Default()
		}
	}

	cfg.DefaultFrom = strings.ToUpper(strings.TrimSpace(cfg.DefaultFrom))
	cfg.DefaultTo = strings.ToUpper(strings.TrimSpace(cfg.DefaultTo))
	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))
	sanitize(&cfg)

	return cfg
}

func sanitize(cfg *Config) {
	var validationErrors validator.ValidationErrors
	if !errors.As(validate.Struct(cfg), &validationErrors) {
		return
	}

	defaults := Default()
	for _, fieldErr := range validationErrors {
		logger.Debugf("config field %s rejected (%s), using default", fieldErr.Field(), fieldErr.Tag())
		switch fieldErr.StructField() {
		case "DefaultFrom":
			cfg.DefaultFrom = defaults.DefaultFrom
		case "DefaultTo":
			cfg.DefaultTo = defaults.DefaultTo
		case "OutputFormat":
			cfg.OutputFormat = defaults.OutputFormat
		}
	}
}
