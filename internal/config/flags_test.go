package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"localhost", "localhost:8080", "localhost:8080", false},
		{"ip", "127.0.0.1:9090", "127.0.0.1:9090", false},
		{"any interface", ":8080", ":8080", false},
		{"missing port", "localhost", "", true},
		{"non numeric port", "localhost:http", "", true},
		{"port out of range", "localhost:70000", "", true},
		{"hostname", "vault.example:8080", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
}

func TestBindFlags_Parse(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg := BindFlags(fs)

	err := fs.Parse([]string{
		"-c", "/etc/lk.json",
		"--api-url", "http://127.0.0.1:8080/api/",
		"--request-timeout", "5s",
		"--session-db", "/tmp/session.db",
		"--poll-interval", "45s",
		"--log-level", "warn",
		"-a", "127.0.0.1:9000",
		"--no-seed",
	})
	require.NoError(t, err)

	assert.Equal(t, "/etc/lk.json", cfg.JSONFilePath)
	assert.Equal(t, "http://127.0.0.1:8080/api/", cfg.Adapter.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/session.db", cfg.Storage.Session.DSN)
	assert.Equal(t, 45*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.True(t, cfg.Server.NoSeed)
}

func TestBindFlags_RejectsBadAddress(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)

	assert.Error(t, fs.Parse([]string{"--address", "nowhere"}))
}
