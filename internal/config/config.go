package config

// Config holds all application configuration.
// It is constructed once at startup by Load and passed explicitly to the
// components that need it; there is no ambient global configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Limits   LimitsConfig   `mapstructure:"limits"   validate:"required"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains JWT signing settings.
type AuthConfig struct {
	JWTSecretKey             string `mapstructure:"jwt_secret_key"              validate:"required,min=32"`
	JWTAlgorithm             string `mapstructure:"jwt_algorithm"               validate:"required,oneof=HS256 HS384 HS512"`
	JWTExpirationMinutes     int    `mapstructure:"jwt_expiration_minutes"      validate:"required,gt=0"`
	JWTRefreshExpirationDays int    `mapstructure:"jwt_refresh_expiration_days" validate:"required,gt=0"`
}

// LimitsConfig contains the configurable domain ceilings used by the
// validation rules. All values are required; the validators cannot run
// without them.
type LimitsConfig struct {
	MinFactoryYear      int     `mapstructure:"min_factory_year"      validate:"required,gt=0"`
	MaxFutureYear       int     `mapstructure:"max_future_year"       validate:"gte=0"`
	MaxPrice            float64 `mapstructure:"max_price"             validate:"required,gt=0"`
	MaxMileage          int     `mapstructure:"max_mileage"           validate:"required,gt=0"`
	MaxBrandDescription int     `mapstructure:"max_brand_description" validate:"required,gt=0"`
}
