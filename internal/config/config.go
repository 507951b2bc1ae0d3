// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DefaultSecretKey is the development fallback for SECRET_KEY.
const DefaultSecretKey = "dev-secret-key-change-me"

// knownWeakSecrets contains default/example secrets that must be rejected in production.
var knownWeakSecrets = []string{
	DefaultSecretKey,
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	SecretKey   string `env:"SECRET_KEY" envDefault:"dev-secret-key-change-me"`
	DatabaseURL string `env:"DATABASE_URL"`
	ServerHost  string `env:"SITE_HOST" envDefault:"localhost"`
	ServerPort  int    `env:"SITE_PORT" envDefault:"8080"`
	Env         string `env:"SITE_ENV" envDefault:"development"`
	LogLevel    string `env:"SITE_LOG_LEVEL" envDefault:"info"`
	SiteName    string `env:"SITE_NAME" envDefault:"Acme Software"`
	SiteURL     string `env:"SITE_URL" envDefault:"http://localhost:8080"`
	DoSeed      bool   `env:"SITE_DO_SEED" envDefault:"false"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// SlogLevel maps LogLevel to a slog.Level; unknown values mean info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// MinSecretKeyLength is the minimum SECRET_KEY length accepted in production.
const MinSecretKeyLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	switch cfg.Env {
	case "development", "production":
	default:
		return nil, fmt.Errorf("SITE_ENV must be development or production, got %q", cfg.Env)
	}

	if cfg.IsDevelopment() {
		if cfg.SecretKey == DefaultSecretKey {
			slog.Warn("SECRET_KEY is the development default; set it before deploying")
		}
		return cfg, nil
	}

	if len(cfg.SecretKey) < MinSecretKeyLength {
		return nil, fmt.Errorf("SECRET_KEY must be at least %d bytes long in production, got %d bytes; "+
			"generate one with: openssl rand -base64 32",
			MinSecretKeyLength, len(cfg.SecretKey))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.SecretKey == weak {
			return nil, fmt.Errorf("SECRET_KEY is a known default value and must not be used in production")
		}
	}

	if !hasMinimumEntropy(cfg.SecretKey) {
		slog.Warn("SECRET_KEY has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
