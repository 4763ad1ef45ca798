package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/legacy-keeper/internal/client"
	"github.com/MKhiriev/legacy-keeper/internal/config"
	"github.com/MKhiriev/legacy-keeper/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// cli carries what every subcommand needs to build an App.
type cli struct {
	flagCfg *config.StructuredConfig
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	cmd := &cobra.Command{
		Use:          "legacy-keeper",
		Short:        "Command-line client for a Legacy Keeper family vault",
		SilenceUsage: true,
	}
	c.flagCfg = config.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newVersionCmd(),
		c.newRegisterCmd(),
		c.newLoginCmd(),
		c.newLogoutCmd(),
		c.newMeCmd(),
		c.newVaultsCmd(),
		c.newMediaCmd(),
		c.newMembersCmd(),
		c.newJoinCmd(),
		c.newInvitesCmd(),
		c.newNotificationsCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			printBuildInfo(cmd.OutOrStdout())
		},
	}
}

// access is what a command needs from the stored session.
type access int

const (
	anyone access = iota
	signedIn
	// inVault also resolves the active vault.
	inVault
)

// action builds the App, checks need and runs fn.
func (c *cli) action(need access, fn func(cmd *cobra.Command, args []string, a *client.App) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.GetClientConfig(c.flagCfg)
		if err != nil {
			return fmt.Errorf("error getting configs: %w", err)
		}
		if cfg.App.Version == "" {
			cfg.App.Version = buildVersion
		}

		log := logger.NewClientLogger("legacy-keeper", cfg.App.LogFile)
		if cfg.App.LogLevel != "" && !logger.SetLevel(cfg.App.LogLevel) {
			log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
		}
		log.Debug().
			Str("api_url", cfg.Adapter.BaseURL).
			Str("session_db", cfg.Storage.DSN).
			Dur("poll_interval", cfg.Workers.PollInterval).
			Msg("received configs")

		notifier := client.NewTerminalNotifier(cmd.OutOrStdout(), cmd.ErrOrStderr())
		a, err := client.NewApp(cfg, notifier, log)
		if err != nil {
			log.Err(err).Msg("init client app error")
			return err
		}
		defer func() {
			if closeErr := a.Close(); closeErr != nil {
				log.Err(closeErr).Msg("error closing client app")
			}
		}()

		if need == anyone {
			err = a.Restore(cmd.Context())
		} else {
			err = a.RequireSession(cmd.Context())
		}
		if err != nil {
			return err
		}
		if need == inVault {
			if _, err = a.ActiveVault(cmd.Context()); err != nil {
				return err
			}
		}

		return fn(cmd, args, a)
	}
}

// secret returns the flag value or reads one line from the command input.
func secret(cmd *cobra.Command, value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s: ", prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(prompt), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printBuildInfo(w io.Writer) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
