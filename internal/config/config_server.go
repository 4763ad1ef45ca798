package config

import (
	"fmt"
	"time"
)

// ServerConfig is the sandbox backend view of [StructuredConfig].
type ServerConfig struct {
	Version         string
	LogLevel        string
	HTTPAddress     string
	RequestTimeout  time.Duration
	TokenSignKey    string
	TokenIssuer     string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	Seed            bool
}

// GetServerConfig builds and validates the sandbox view.
func GetServerConfig(flagCfg *StructuredConfig) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.ServerView()
	return serverCfg, serverCfg.validate()
}

// ServerView maps the fields relevant to the sandbox backend.
func (cfg *StructuredConfig) ServerView() *ServerConfig {
	return &ServerConfig{
		Version:         cfg.App.Version,
		LogLevel:        cfg.App.LogLevel,
		HTTPAddress:     cfg.Server.HTTPAddress,
		RequestTimeout:  cfg.Server.RequestTimeout,
		TokenSignKey:    cfg.Server.TokenSignKey,
		TokenIssuer:     cfg.Server.TokenIssuer,
		AccessTokenTTL:  cfg.Server.AccessTokenTTL,
		RefreshTokenTTL: cfg.Server.RefreshTokenTTL,
		Seed:            !cfg.Server.NoSeed,
	}
}
