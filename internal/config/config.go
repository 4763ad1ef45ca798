// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Workers Workers `envPrefix:"WORKERS_"`
	Query   Query   `envPrefix:"QUERY_"`
	Server  Server  `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flag: --config / -c
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// Version is reported by `client version` and GET /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the CLI writes its log. Empty means next to the
	// executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds settings of the REST gateway.
type Adapter struct {
	// BaseURL is the API root, e.g. "http://localhost:8080/api/". A trailing
	// slash is enforced by the gateway.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds settings of the local session store.
type Storage struct {
	Session Session `envPrefix:"SESSION_"`
}

// Session configures where the auth session is persisted.
type Session struct {
	// DSN is the SQLite file holding the session record.
	// Env: STORAGE_SESSION_DSN
	DSN string `env:"DSN"`

	// Secret seals the stored tokens. Empty means a machine-bound default.
	// Env: STORAGE_SESSION_SECRET
	Secret string `env:"SECRET"`
}

// Workers holds background job settings.
type Workers struct {
	// PollInterval is the notification polling period.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// PollLimit is the page size of each notification request.
	// Env: WORKERS_POLL_LIMIT
	PollLimit int `env:"POLL_LIMIT"`
}

// Query holds listing page sizes and the search debounce delay.
type Query struct {
	MediaPageSize    int           `env:"MEDIA_PAGE_SIZE"`
	MembersPageSize  int           `env:"MEMBERS_PAGE_SIZE"`
	ProfilesPageSize int           `env:"PROFILES_PAGE_SIZE"`
	AuditPageSize    int           `env:"AUDIT_PAGE_SIZE"`
	SearchDebounce   time.Duration `env:"SEARCH_DEBOUNCE"`
}

// Server holds settings of the sandbox backend.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of one inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenSignKey signs HS256 access and refresh tokens.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: SERVER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL"`

	// NoSeed starts the sandbox without demo data.
	// Env: SERVER_NO_SEED
	NoSeed bool `env:"NO_SEED"`
}

// Defaults returns the values used for every field left zero by all
// sources.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "dev",
			LogLevel: "debug",
		},
		Adapter: Adapter{
			BaseURL:        "http://localhost:8080/api/",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			Session: Session{DSN: "legacy-keeper.db"},
		},
		Workers: Workers{
			PollInterval: 20 * time.Second,
			PollLimit:    40,
		},
		Query: Query{
			MediaPageSize:    20,
			MembersPageSize:  20,
			ProfilesPageSize: 20,
			AuditPageSize:    50,
			SearchDebounce:   400 * time.Millisecond,
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			TokenSignKey:    "sandbox-signing-key",
			TokenIssuer:     "legacy-keeper-sandbox",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
}

// GetStructuredConfig loads and merges the configuration. flagCfg is the
// value returned by [BindFlags] after the flag set was parsed; nil skips the
// flag source.
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flagCfg).
		withJSON().
		withDefaults().
		build()
}
