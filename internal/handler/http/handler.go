package http

import (
	"time"

	"github.com/MKhiriev/legacy-keeper/internal/config"
	"github.com/MKhiriev/legacy-keeper/internal/logger"
	"github.com/MKhiriev/legacy-keeper/internal/sandbox"
)

type tokenSettings struct {
	signKey    string
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

type Handler struct {
	sandbox *sandbox.Sandbox
	tokens  tokenSettings
	version string

	logger *logger.Logger
}

func NewHandler(sb *sandbox.Sandbox, cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		sandbox: sb,
		tokens: tokenSettings{
			signKey:    cfg.TokenSignKey,
			issuer:     cfg.TokenIssuer,
			accessTTL:  cfg.AccessTokenTTL,
			refreshTTL: cfg.RefreshTokenTTL,
		},
		version: cfg.Version,
		logger:  logger,
	}
}
