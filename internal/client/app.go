package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/legacy-keeper/internal/adapter"
	"github.com/MKhiriev/legacy-keeper/internal/config"
	"github.com/MKhiriev/legacy-keeper/internal/crypto"
	"github.com/MKhiriev/legacy-keeper/internal/debounce"
	"github.com/MKhiriev/legacy-keeper/internal/logger"
	"github.com/MKhiriev/legacy-keeper/internal/query"
	"github.com/MKhiriev/legacy-keeper/internal/service"
	"github.com/MKhiriev/legacy-keeper/internal/store"
	"github.com/MKhiriev/legacy-keeper/internal/workers"
)

// App is one client process: the stored session, the gateway and the
// services built on top of them.
type App struct {
	Services *service.ClientServices

	storages    *store.ClientStorages
	workers     *workers.Workers
	clipboard   Clipboard
	searchDelay time.Duration
	logger      *logger.Logger
}

// Option customises an App.
type Option func(*App)

// WithClipboard replaces the system clipboard.
func WithClipboard(c Clipboard) Option {
	return func(a *App) {
		a.clipboard = c
	}
}

// NewApp opens the session store and wires the gateway, the cache and the
// services. The stored session is not loaded until [App.Restore].
func NewApp(cfg *config.ClientConfig, notifier service.Notifier, log *logger.Logger, opts ...Option) (*App, error) {
	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	keys, err := crypto.NewKeyChain(cfg.Storage.Secret)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create key chain: %w", err)
	}
	session := service.NewSessionService(storages.SessionRepository, keys, log.WithComponent("session"))

	api, err := adapter.NewHTTPServerAdapter(cfg.Adapter, session, log.WithComponent("adapter"))
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	cache := query.NewClient(query.WithLogger(log.WithComponent("query")))
	services := service.NewClientServices(cfg, api, session, cache, notifier, log)

	a := &App{
		Services:    services,
		storages:    storages,
		workers:     workers.NewWorkers(service.NewPollWorker(services.PollJob, cfg.Workers.PollInterval)),
		clipboard:   systemClipboard{},
		searchDelay: cfg.Query.SearchDebounce,
		logger:      log,
	}
	if a.searchDelay <= 0 {
		a.searchDelay = debounce.DefaultDelay
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Restore loads the stored session.
func (a *App) Restore(ctx context.Context) error {
	if _, err := a.Services.Session.Load(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	return nil
}

// RequireSession restores the session and fails when nobody is signed in.
func (a *App) RequireSession(ctx context.Context) error {
	if err := a.Restore(ctx); err != nil {
		return err
	}
	if !a.Services.Session.IsAuthenticated() {
		return service.ErrNotAuthenticated
	}
	return nil
}

// ActiveVault returns the vault commands act on. Without a stored choice
// the first vault of the account is selected and remembered.
func (a *App) ActiveVault(ctx context.Context) (string, error) {
	if id := a.Services.Session.ActiveVaultID(); id != "" {
		return id, nil
	}

	vaults, err := a.Services.Vaults.List(ctx)
	if err != nil {
		return "", err
	}
	if len(vaults) == 0 {
		return "", service.ErrNoActiveVault
	}
	if err = a.Services.Session.SetActiveVault(ctx, vaults[0].ID); err != nil {
		return "", err
	}
	a.logger.Debug().Str("vault_id", vaults[0].ID).Msg("active vault selected")
	return vaults[0].ID, nil
}

// Watch runs the background workers until ctx is cancelled or the session
// ends.
func (a *App) Watch(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.Services.Session.OnLogout(cancel)

	a.workers.Start(ctx)
	defer a.workers.Stop()

	<-ctx.Done()
	if !a.Services.Session.IsAuthenticated() {
		return service.ErrNotAuthenticated
	}
	if err := ctx.Err(); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// SearchInput returns a debounced search term for interactive commands.
// The caller must Stop it.
func (a *App) SearchInput() *debounce.Value[string] {
	return debounce.New("", a.searchDelay, debounce.WithNormalize(strings.TrimSpace))
}

// Copy puts text on the clipboard.
func (a *App) Copy(text string) error {
	if err := a.clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// Close stops the workers and releases the session store.
func (a *App) Close() error {
	a.workers.Stop()
	return a.storages.Close()
}
