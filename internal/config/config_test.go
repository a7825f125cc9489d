// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package config

import "testing"

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ANTECH_SESSION_SECRET", testSecret)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr = %q, want localhost:8080", cfg.ServerAddr())
	}
	if cfg.DBPath != "./data/website.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.CompanyName != "AN Tech Solutions" {
		t.Errorf("CompanyName = %q", cfg.CompanyName)
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment = false, want true")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ANTECH_SESSION_SECRET", testSecret)
	t.Setenv("ANTECH_ENV", "production")
	t.Setenv("ANTECH_SERVER_HOST", "0.0.0.0")
	t.Setenv("ANTECH_SERVER_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.IsDevelopment() {
		t.Error("IsDevelopment = true, want false")
	}
	if cfg.ServerAddr() != "0.0.0.0:9090" {
		t.Errorf("ServerAddr = %q", cfg.ServerAddr())
	}
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("ANTECH_SESSION_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("expected error for missing session secret")
	}
}

func TestLoadShortSecret(t *testing.T) {
	t.Setenv("ANTECH_SESSION_SECRET", "too-short")

	if _, err := Load(); err == nil {
		t.Error("expected error for short session secret")
	}
}
