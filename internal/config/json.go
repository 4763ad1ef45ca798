package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
		LogFile  string `json:"log_file"`
	} `json:"app,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		Session struct {
			DSN    string `json:"dsn"`
			Secret string `json:"secret"`
		} `json:"session,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		PollInterval Duration `json:"poll_interval"`
		PollLimit    int      `json:"poll_limit"`
	} `json:"workers,omitempty"`

	Query struct {
		MediaPageSize    int      `json:"media_page_size"`
		MembersPageSize  int      `json:"members_page_size"`
		ProfilesPageSize int      `json:"profiles_page_size"`
		AuditPageSize    int      `json:"audit_page_size"`
		SearchDebounce   Duration `json:"search_debounce"`
	} `json:"query,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		TokenSignKey    string   `json:"token_sign_key"`
		TokenIssuer     string   `json:"token_issuer"`
		AccessTokenTTL  Duration `json:"access_token_ttl"`
		RefreshTokenTTL Duration `json:"refresh_token_ttl"`
		NoSeed          bool     `json:"no_seed"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
			LogFile:  jsonCfg.App.LogFile,
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			Session: Session{
				DSN:    jsonCfg.Storage.Session.DSN,
				Secret: jsonCfg.Storage.Session.Secret,
			},
		},
		Workers: Workers{
			PollInterval: time.Duration(jsonCfg.Workers.PollInterval),
			PollLimit:    jsonCfg.Workers.PollLimit,
		},
		Query: Query{
			MediaPageSize:    jsonCfg.Query.MediaPageSize,
			MembersPageSize:  jsonCfg.Query.MembersPageSize,
			ProfilesPageSize: jsonCfg.Query.ProfilesPageSize,
			AuditPageSize:    jsonCfg.Query.AuditPageSize,
			SearchDebounce:   time.Duration(jsonCfg.Query.SearchDebounce),
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			TokenSignKey:    jsonCfg.Server.TokenSignKey,
			TokenIssuer:     jsonCfg.Server.TokenIssuer,
			AccessTokenTTL:  time.Duration(jsonCfg.Server.AccessTokenTTL),
			RefreshTokenTTL: time.Duration(jsonCfg.Server.RefreshTokenTTL),
			NoSeed:          jsonCfg.Server.NoSeed,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
