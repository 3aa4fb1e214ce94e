// Gustus - Design Taste Profiling and Reporting
// Copyright 2026 M. Lindqvist (mlindqvist)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mlindqvist/gustus

// Package config loads the application configuration from layered sources
// with clear precedence: environment variables > YAML config file > built-in
// defaults.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/mlindqvist/gustus/internal/logging"
	"github.com/mlindqvist/gustus/internal/scoring"
	"github.com/mlindqvist/gustus/internal/store"
)

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig   `json:"server" koanf:"server"`
	Storage store.Config   `json:"storage" koanf:"storage"`
	Catalog CatalogConfig  `json:"catalog" koanf:"catalog"`
	Scoring scoring.Config `json:"scoring" koanf:"scoring"`
	Logging LoggingConfig  `json:"logging" koanf:"logging"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	// Host is the listen address.
	Host string `json:"host" koanf:"host"`

	// Port is the listen port.
	Port int `json:"port" koanf:"port"`

	// Timeout bounds request read/write and shutdown grace.
	Timeout time.Duration `json:"timeout" koanf:"timeout"`

	// CORSOrigins lists allowed CORS origins.
	CORSOrigins []string `json:"cors_origins" koanf:"cors_origins"`

	// RateLimitReqs is the per-IP request budget per RateLimitWindow.
	RateLimitReqs int `json:"rate_limit_reqs" koanf:"rate_limit_reqs"`

	// RateLimitWindow is the rate-limit accounting window.
	RateLimitWindow time.Duration `json:"rate_limit_window" koanf:"rate_limit_window"`

	// RateLimitDisabled turns off per-IP rate limiting.
	RateLimitDisabled bool `json:"rate_limit_disabled" koanf:"rate_limit_disabled"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CatalogConfig locates the quad library definition.
type CatalogConfig struct {
	// Path is a YAML catalog file. Empty means the built-in catalog.
	Path string `json:"path" koanf:"path"`
}

// LoggingConfig holds the serializable logging settings. Unlike
// logging.Config it carries no writer, so it can round-trip through koanf.
type LoggingConfig struct {
	// Level is the minimum log level.
	Level string `json:"level" koanf:"level"`

	// Format is json or console.
	Format string `json:"format" koanf:"format"`

	// Caller includes caller file and line in log lines.
	Caller bool `json:"caller" koanf:"caller"`
}

// ToLogging converts to the logging package's config.
func (l LoggingConfig) ToLogging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}

// defaultConfig returns the built-in defaults. These load first and are
// overridden by the config file and then environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              8489,
			Timeout:           30 * time.Second,
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Storage: store.DefaultConfig(),
		Catalog: CatalogConfig{
			Path: "",
		},
		Scoring: scoring.DefaultConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks the full configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return errors.New("server timeout must be positive")
	}
	if !c.Server.RateLimitDisabled {
		if c.Server.RateLimitReqs <= 0 {
			return errors.New("rate_limit_reqs must be positive")
		}
		if c.Server.RateLimitWindow <= 0 {
			return errors.New("rate_limit_window must be positive")
		}
	}
	if err := c.Storage.Validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Scoring.Validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	return nil
}
