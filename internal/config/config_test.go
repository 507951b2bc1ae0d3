// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"log/slog"
	"os"
	"strings"
	"testing"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set %s: %v", key, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.SecretKey != DefaultSecretKey {
		t.Errorf("SecretKey = %q, want %q", cfg.SecretKey, DefaultSecretKey)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("DatabaseURL = %q, want empty", cfg.DatabaseURL)
	}
	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr() = %q, want %q", cfg.ServerAddr(), "localhost:8080")
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false, want true")
	}
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("SlogLevel() = %v, want info", cfg.SlogLevel())
	}
	if cfg.DoSeed {
		t.Error("DoSeed should default to false")
	}
	if cfg.SiteURL != "http://localhost:8080" {
		t.Errorf("SiteURL = %q", cfg.SiteURL)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	secret := "Prod-Secret-Key-With-32-Bytes-Or-More!"
	setEnv(t, "SECRET_KEY", secret)
	setEnv(t, "DATABASE_URL", "mysql://u:p@tcp(db:3306)/site")
	setEnv(t, "SITE_HOST", "0.0.0.0")
	setEnv(t, "SITE_PORT", "3000")
	setEnv(t, "SITE_ENV", "production")
	setEnv(t, "SITE_LOG_LEVEL", "debug")
	setEnv(t, "SITE_NAME", "Example Ltd")
	setEnv(t, "SITE_DO_SEED", "true")
	setEnv(t, "SITE_URL", "https://example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.SecretKey != secret {
		t.Errorf("SecretKey = %q, want %q", cfg.SecretKey, secret)
	}
	if cfg.DatabaseURL != "mysql://u:p@tcp(db:3306)/site" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.ServerAddr() != "0.0.0.0:3000" {
		t.Errorf("ServerAddr() = %q, want %q", cfg.ServerAddr(), "0.0.0.0:3000")
	}
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true, want false")
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want debug", cfg.SlogLevel())
	}
	if cfg.SiteName != "Example Ltd" {
		t.Errorf("SiteName = %q", cfg.SiteName)
	}
	if !cfg.DoSeed {
		t.Error("DoSeed = false, want true")
	}
	if cfg.SiteURL != "https://example.com" {
		t.Errorf("SiteURL = %q", cfg.SiteURL)
	}
}

func TestLoad_ProductionSecretChecks(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		wantErr string
	}{
		{"too short", "short-secret", "at least 32 bytes"},
		{"dev default", DefaultSecretKey, "at least 32 bytes"},
		{"known weak", "change-me-to-32-byte-secret-key!", "known default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			setEnv(t, "SITE_ENV", "production")
			setEnv(t, "SECRET_KEY", tt.secret)

			_, err := Load()
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	os.Clearenv()
	setEnv(t, "SITE_ENV", "staging")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for unknown SITE_ENV")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	os.Clearenv()
	setEnv(t, "SITE_PORT", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for invalid port")
	}
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := (Config{LogLevel: in}).SlogLevel(); got != want {
			t.Errorf("SlogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestHasMinimumEntropy(t *testing.T) {
	if hasMinimumEntropy("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa") {
		t.Error("single character class should not pass")
	}
	if !hasMinimumEntropy("Abcdefgh12345678Abcdefgh12345678") {
		t.Error("three character classes should pass")
	}
}
