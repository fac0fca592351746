package config

import (
	"flag"
	"os"
	"time"

	"github.com/akarpenko/warehouse-api/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN; empty selects the in-memory stores
//	-s string   token HMAC signing key
//	-i string   token issuer
//	-u string   token audience
//	-t int      token validity, hours
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-i", "-u", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SigningKey, "s", config.SigningKey, "token signing key")
	fs.StringVar(&config.Issuer, "i", config.Issuer, "token issuer")
	fs.StringVar(&config.Audience, "u", config.Audience, "token audience")

	tokenValidity := fs.Int("t", int(config.TokenValidity.Hours()), "token validity (in hours)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidity = time.Duration(*tokenValidity) * time.Hour
}
