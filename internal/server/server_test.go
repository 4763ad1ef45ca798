package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/MKhiriev/legacy-keeper/internal/config"
	"github.com/MKhiriev/legacy-keeper/internal/handler"
	"github.com/MKhiriev/legacy-keeper/internal/logger"
	"github.com/MKhiriev/legacy-keeper/internal/sandbox"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func newTestServer(t *testing.T, addr string) *server {
	t.Helper()
	cfg := &config.ServerConfig{
		Version:         "test",
		HTTPAddress:     addr,
		RequestTimeout:  2 * time.Second,
		TokenSignKey:    "key",
		TokenIssuer:     "issuer",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}
	handlers, err := handler.NewHandlers(sandbox.New(sandbox.WithLogger(logger.Nop())), cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_RequiresHTTP(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, &config.ServerConfig{HTTPAddress: ":0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoSandboxListener)

	_, err = NewServer(nil, &config.ServerConfig{}, logger.Nop())
	assert.ErrorIs(t, err, errNoSandboxListener)
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	addr := freeAddress(t)
	srv := newTestServer(t, addr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.run(ctx) }()

	client := &http.Client{Timeout: time.Second}
	require.Eventually(t, func() bool {
		resp, err := client.Get("http://" + addr + "/api/version/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)
	client.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_ListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv := newTestServer(t, l.Addr().String())
	err = srv.run(context.Background())
	assert.Error(t, err)
}
