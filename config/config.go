// Package config loads the service configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Mirror backends for the activity log.
const (
	MirrorNone   = "none"
	MirrorDynamo = "dynamo"
	MirrorSQL    = "sql"
)

type Config struct {
	Port               string        `env:"PORT" envDefault:"8080"`
	AWSRegion          string        `env:"AWS_REGION"`
	S3BucketName       string        `env:"S3_BUCKET_NAME"`
	UsersTable         string        `env:"USERS_TABLE" envDefault:"Users"`
	ActivityMirror     string        `env:"ACTIVITY_MIRROR" envDefault:"none"`
	ActivityTable      string        `env:"ACTIVITY_TABLE" envDefault:"ActivityEvents"`
	DatabaseDriver     string        `env:"DATABASE_DRIVER" envDefault:"postgres"`
	DatabaseURL        string        `env:"DATABASE_URL"`
	MirrorTimeout      time.Duration `env:"MIRROR_TIMEOUT" envDefault:"2s"`
	ActivityRetention  int           `env:"ACTIVITY_RETENTION" envDefault:"1000"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat          string        `env:"LOG_FORMAT" envDefault:"console"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints env tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	switch c.ActivityMirror {
	case MirrorNone:
	case MirrorDynamo:
		if c.AWSRegion == "" {
			errs = append(errs, errors.New("AWS_REGION is required when ACTIVITY_MIRROR=dynamo"))
		}
	case MirrorSQL:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when ACTIVITY_MIRROR=sql"))
		}
		if c.DatabaseDriver != "postgres" && c.DatabaseDriver != "sqlite" {
			errs = append(errs, fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported ACTIVITY_MIRROR %q", c.ActivityMirror))
	}

	if c.ActivityRetention <= 0 {
		errs = append(errs, fmt.Errorf("ACTIVITY_RETENTION must be positive, got %d", c.ActivityRetention))
	}
	if c.MirrorTimeout <= 0 {
		errs = append(errs, fmt.Errorf("MIRROR_TIMEOUT must be positive, got %s", c.MirrorTimeout))
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("unsupported LOG_FORMAT %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

// AWSEnabled reports whether AWS-backed components (DynamoDB, S3) should be wired.
func (c *Config) AWSEnabled() bool {
	return c.AWSRegion != ""
}
