// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.BaseURL)
	if cfg.Adapter.BaseURL == "" || err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.PollInterval <= 0 || cfg.Workers.PollLimit <= 0 {
		return ErrInvalidWorkerConfigs
	}

	q := cfg.Query
	if q.MediaPageSize <= 0 || q.MembersPageSize <= 0 || q.ProfilesPageSize <= 0 || q.AuditPageSize <= 0 {
		return ErrInvalidQueryConfigs
	}

	return validateLevel(cfg.App.LogLevel)
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}
	if cfg.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidServerConfigs)
	}
	if cfg.AccessTokenTTL <= 0 || cfg.RefreshTokenTTL < cfg.AccessTokenTTL {
		return fmt.Errorf("%w: refresh token must outlive access token", ErrInvalidServerConfigs)
	}

	return validateLevel(cfg.LogLevel)
}

func validateLevel(level string) error {
	if level == "" {
		return nil
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(level)); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, level)
	}
	return nil
}
