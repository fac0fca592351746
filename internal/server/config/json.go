package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/akarpenko/warehouse-api/internal/flagx"
	"github.com/akarpenko/warehouse-api/internal/timex"
)

// JsonConfig is the intermediate DTO for JSON configuration files. It uses
// timex.Duration for interval fields so both string values such as "24h" and
// integer nanoseconds parse.
type JsonConfig struct {
	HTTPAddr      string         `json:"http_addr"`
	DatabaseDSN   string         `json:"database_dsn"`
	SigningKey    string         `json:"signing_key"`
	Issuer        string         `json:"issuer"`
	Audience      string         `json:"audience"`
	TokenValidity timex.Duration `json:"token_validity"`
	BcryptCost    int            `json:"bcrypt_cost"`
}

// parseJson overlays values from the JSON file named by the -c/-config flag,
// if any. Only fields present in the file override earlier layers. A missing
// file or invalid JSON is a startup error and panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.HTTPAddr != "" {
		config.HTTPAddr = c.HTTPAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SigningKey != "" {
		config.SigningKey = c.SigningKey
	}
	if c.Issuer != "" {
		config.Issuer = c.Issuer
	}
	if c.Audience != "" {
		config.Audience = c.Audience
	}
	if c.TokenValidity.Duration != 0 {
		config.TokenValidity = time.Duration(c.TokenValidity.Duration)
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
}
