// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

import (
	"errors"
	"time"

	"github.com/akarpenko/warehouse-api/internal/server/auth"
)

// Config holds runtime settings for the warehouse API server.
//
// Fields:
//   - HTTPAddr: bind address for the public HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty means in-memory stores with
//     development fixtures.
//   - SigningKey: HMAC secret for signing tokens (HS256). Has no default;
//     the server refuses to start without it.
//   - Issuer / Audience: values stamped into and required from every token.
//   - TokenValidity: token lifetime from the moment of issue.
//   - BcryptCost: work factor for password hashing.
type Config struct {
	HTTPAddr      string
	DatabaseDSN   string
	SigningKey    string
	Issuer        string
	Audience      string
	TokenValidity time.Duration
	BcryptCost    int
}

// ErrMissingSigningKey is returned by Validate when no signing key was
// configured through any source.
var ErrMissingSigningKey = errors.New("config: signing key is required")

// LoadDefaults populates Config with development defaults. The signing key
// deliberately has none.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":8080"
	c.DatabaseDSN = ""
	c.Issuer = "WarehouseAPI"
	c.Audience = "WarehouseAPI"
	c.TokenValidity = 24 * time.Hour
	c.BcryptCost = auth.DefaultHashCost
}

// Validate checks the invariants that make a Config usable. It is called by
// the entrypoint before anything else starts.
func (c *Config) Validate() error {
	if c.SigningKey == "" {
		return ErrMissingSigningKey
	}
	if c.TokenValidity <= 0 {
		return errors.New("config: token validity must be positive")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
