package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": {"version": "1.4.0", "log_level": "info"},
		"adapter": {"base_url": "https://vault.example/api/", "request_timeout": "10s"},
		"storage": {"session": {"dsn": "/tmp/lk.db", "secret": "s3cret"}},
		"workers": {"poll_interval": "1m", "poll_limit": 40},
		"query": {"media_page_size": 30, "audit_page_size": 100, "search_debounce": "250ms"},
		"server": {
			"http_address": "0.0.0.0:9000",
			"token_sign_key": "k",
			"access_token_ttl": "5m",
			"refresh_token_ttl": "24h",
			"no_seed": true
		}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "1.4.0", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "https://vault.example/api/", cfg.Adapter.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/lk.db", cfg.Storage.Session.DSN)
	assert.Equal(t, "s3cret", cfg.Storage.Session.Secret)
	assert.Equal(t, time.Minute, cfg.Workers.PollInterval)
	assert.Equal(t, 40, cfg.Workers.PollLimit)
	assert.Equal(t, 30, cfg.Query.MediaPageSize)
	assert.Equal(t, 100, cfg.Query.AuditPageSize)
	assert.Equal(t, 250*time.Millisecond, cfg.Query.SearchDebounce)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Minute, cfg.Server.AccessTokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.Server.RefreshTokenTTL)
	assert.True(t, cfg.Server.NoSeed)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"string", `"90s"`, 90 * time.Second, false},
		{"nanoseconds number", `1000`, time.Microsecond, false},
		{"bad string", `"later"`, 0, true},
		{"bool", `true`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(20 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"20s"`, string(b))
}
