package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr: got %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.DatabaseDSN != "" {
		t.Errorf("DatabaseDSN: got %q, want empty", cfg.DatabaseDSN)
	}
	if cfg.SigningKey != "" {
		t.Errorf("SigningKey must have no default, got %q", cfg.SigningKey)
	}
	if cfg.Issuer != "WarehouseAPI" || cfg.Audience != "WarehouseAPI" {
		t.Errorf("issuer/audience: got %q/%q", cfg.Issuer, cfg.Audience)
	}
	if cfg.TokenValidity != 24*time.Hour {
		t.Errorf("TokenValidity: got %v, want 24h", cfg.TokenValidity)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := cfg.Validate(); !errors.Is(err, ErrMissingSigningKey) {
		t.Errorf("expected ErrMissingSigningKey, got %v", err)
	}

	cfg.SigningKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.TokenValidity = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero token validity")
	}
}
