package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/legacy-keeper/internal/config"
	"github.com/MKhiriev/legacy-keeper/internal/handler"
	"github.com/MKhiriev/legacy-keeper/internal/logger"
	"github.com/MKhiriev/legacy-keeper/internal/sandbox"
	"github.com/MKhiriev/legacy-keeper/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "legacy-keeper-sandbox",
		Short:        "In-memory Legacy Keeper REST backend for local development",
		SilenceUsage: true,
	}
	flagCfg := config.BindFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		printBuildInfo()
		return run(flagCfg)
	}
	return cmd
}

func run(flagCfg *config.StructuredConfig) error {
	log := logger.NewLogger("legacy-keeper-sandbox")

	cfg, err := config.GetServerConfig(flagCfg)
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return err
	}
	if cfg.Version == "" {
		cfg.Version = buildVersion
	}
	if cfg.LogLevel != "" && !logger.SetLevel(cfg.LogLevel) {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, keeping debug")
	}

	log.Debug().
		Str("address", cfg.HTTPAddress).
		Dur("request_timeout", cfg.RequestTimeout).
		Bool("seed", cfg.Seed).
		Msg("received configs")

	sb := sandbox.New(sandbox.WithLogger(log.WithComponent("sandbox")))
	if cfg.Seed {
		if err = sb.Seed(); err != nil {
			log.Err(err).Msg("error seeding sandbox")
			return err
		}
		log.Info().
			Str("owner", sandbox.DemoOwnerEmail).
			Str("relative", sandbox.DemoRelativeEmail).
			Msg("demo accounts ready")
	}

	handlers, err := handler.NewHandlers(sb, cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return err
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return err
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
		return err
	}
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
