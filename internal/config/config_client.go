package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client process settings.
type ClientApp struct {
	Version  string
	LogLevel string
	LogFile  string
}

// ClientAdapter holds settings of the REST gateway.
type ClientAdapter struct {
	BaseURL        string
	RequestTimeout time.Duration
}

// ClientStorage holds settings of the local session store.
type ClientStorage struct {
	DSN    string
	Secret string
}

// ClientWorkers holds notification polling settings.
type ClientWorkers struct {
	PollInterval time.Duration
	PollLimit    int
}

// ClientQuery holds listing page sizes and the search debounce delay.
type ClientQuery struct {
	MediaPageSize    int
	MembersPageSize  int
	ProfilesPageSize int
	AuditPageSize    int
	SearchDebounce   time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Query   ClientQuery
}

// GetClientConfig builds and validates the client view. flagCfg is the value
// returned by [BindFlags]; it may be nil.
func GetClientConfig(flagCfg *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientView()
	return clientCfg, clientCfg.validate()
}

// ClientView maps the fields relevant to the client runtime.
func (cfg *StructuredConfig) ClientView() *ClientConfig {
	secret := cfg.Storage.Session.Secret
	if secret == "" {
		secret = machineSecret()
	}

	return &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DSN:    cfg.Storage.Session.DSN,
			Secret: secret,
		},
		Workers: ClientWorkers{
			PollInterval: cfg.Workers.PollInterval,
			PollLimit:    cfg.Workers.PollLimit,
		},
		Query: ClientQuery{
			MediaPageSize:    cfg.Query.MediaPageSize,
			MembersPageSize:  cfg.Query.MembersPageSize,
			ProfilesPageSize: cfg.Query.ProfilesPageSize,
			AuditPageSize:    cfg.Query.AuditPageSize,
			SearchDebounce:   cfg.Query.SearchDebounce,
		},
	}
}

// machineSecret binds sealed sessions to the host and user when no secret is
// configured.
func machineSecret() string {
	host, _ := os.Hostname()
	home, _ := os.UserHomeDir()
	return "legacy-keeper:" + host + ":" + home
}
