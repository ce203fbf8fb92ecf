package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables that set them.
// The names match the original deployment surface (DATABASE_URL, JWT_*,
// domain ceilings) rather than a derived prefix scheme.
var envBindings = map[string]string{
	"server.port":                      "SERVER_PORT",
	"server.log_level":                 "LOG_LEVEL",
	"database.url":                     "DATABASE_URL",
	"auth.jwt_secret_key":              "JWT_SECRET_KEY",
	"auth.jwt_algorithm":               "JWT_ALGORITHM",
	"auth.jwt_expiration_minutes":      "JWT_EXPIRATION_MINUTES",
	"auth.jwt_refresh_expiration_days": "JWT_REFRESH_EXPIRATION_DAYS",
	"limits.min_factory_year":          "MIN_FACTORY_YEAR",
	"limits.max_future_year":           "MAX_FUTURE_YEAR",
	"limits.max_price":                 "MAX_PRICE",
	"limits.max_mileage":               "MAX_MILEAGE",
	"limits.max_brand_description":     "MAX_BRAND_DESCRIPTION",
}

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take precedence
// over file values. Returns a validated Config or an error describing the
// first failure.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults mirror the original service configuration.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("auth.jwt_algorithm", "HS256")
	v.SetDefault("auth.jwt_expiration_minutes", 30)
	v.SetDefault("auth.jwt_refresh_expiration_days", 1)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A config file is optional; anything else is a real failure.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", describeValidationError(err))
	}

	return &cfg, nil
}

// describeValidationError rewrites validator errors in terms of the
// environment variables the operator actually sets.
func describeValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var missing []string
	for _, fe := range verrs {
		missing = append(missing, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%s", strings.Join(missing, "; "))
}
