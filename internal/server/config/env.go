package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays WAREHOUSE_* environment variables. The entrypoint loads
// a .env file first, so values from there arrive through this path too.
func parseEnv(config *Config) {
	if v := os.Getenv("WAREHOUSE_HTTP_ADDR"); v != "" {
		config.HTTPAddr = v
	}
	if v := os.Getenv("WAREHOUSE_DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("WAREHOUSE_SIGNING_KEY"); v != "" {
		config.SigningKey = v
	}
	if v := os.Getenv("WAREHOUSE_ISSUER"); v != "" {
		config.Issuer = v
	}
	if v := os.Getenv("WAREHOUSE_AUDIENCE"); v != "" {
		config.Audience = v
	}
	if v := os.Getenv("WAREHOUSE_TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidity = d
		}
	}
	if v := os.Getenv("WAREHOUSE_BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
}
