// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

// Package config loads application configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration.
type Config struct {
	Env           string `env:"ANTECH_ENV" envDefault:"development"`
	ServerHost    string `env:"ANTECH_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"ANTECH_SERVER_PORT" envDefault:"8080"`
	DBPath        string `env:"ANTECH_DB_PATH" envDefault:"./data/website.db"`
	SessionSecret string `env:"ANTECH_SESSION_SECRET,required"`
	LogLevel      string `env:"ANTECH_LOG_LEVEL" envDefault:"info"`
	CompanyName   string `env:"ANTECH_COMPANY_NAME" envDefault:"AN Tech Solutions"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if len(cfg.SessionSecret) < 32 {
		return nil, fmt.Errorf("ANTECH_SESSION_SECRET must be at least 32 characters")
	}

	return cfg, nil
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the host:port address for the HTTP server.
func (c *Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}
