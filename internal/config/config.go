package config

import (
	"github.com/caarlos0/env/v11"

	"direct-ads/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. Use Load to construct a Config; components receive
// the section they need explicitly and never read the environment.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_ prefix).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_ prefix).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Direct configures the ad platform client (DIRECT_ prefix).
	Direct configs.Direct `envPrefix:"DIRECT_"`

	// Billing configures money normalization and statistics limits
	// (BILLING_ prefix).
	Billing configs.Billing `envPrefix:"BILLING_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
