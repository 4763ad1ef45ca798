package client

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/MKhiriev/legacy-keeper/internal/config"
	handler "github.com/MKhiriev/legacy-keeper/internal/handler/http"
	"github.com/MKhiriev/legacy-keeper/internal/logger"
	"github.com/MKhiriev/legacy-keeper/internal/sandbox"
	"github.com/MKhiriev/legacy-keeper/internal/service"
	"github.com/MKhiriev/legacy-keeper/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"))
}

type fakeClipboard struct {
	text string
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

func newSandboxServer(t *testing.T) *httptest.Server {
	t.Helper()

	sb := sandbox.New(sandbox.WithLogger(logger.Nop()))
	require.NoError(t, sb.Seed())

	h := handler.NewHandler(sb, &config.ServerConfig{
		Version:         "test",
		HTTPAddress:     ":0",
		RequestTimeout:  5 * time.Second,
		TokenSignKey:    "client-test-key",
		TokenIssuer:     "client-test",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T, srv *httptest.Server, opts ...Option) (*App, *bytes.Buffer) {
	t.Helper()

	cfg := &config.ClientConfig{
		Adapter: config.ClientAdapter{BaseURL: srv.URL + "/api", RequestTimeout: 5 * time.Second},
		Storage: config.ClientStorage{DSN: ":memory:", Secret: "client-test-secret"},
		Workers: config.ClientWorkers{PollInterval: time.Hour},
	}
	out := &bytes.Buffer{}
	a, err := NewApp(cfg, NewTerminalNotifier(out, out), logger.Nop(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, a.Close()) })
	return a, out
}

func login(t *testing.T, a *App) {
	t.Helper()
	_, err := a.Services.Auth.Login(context.Background(), models.Credentials{
		Email:    sandbox.DemoOwnerEmail,
		Password: sandbox.DemoOwnerPassword,
	})
	require.NoError(t, err)
}

func TestNewApp_EmptySecret(t *testing.T) {
	cfg := &config.ClientConfig{
		Adapter: config.ClientAdapter{BaseURL: "http://localhost:8080/api"},
		Storage: config.ClientStorage{DSN: ":memory:"},
	}
	_, err := NewApp(cfg, service.NewLogNotifier(logger.Nop()), logger.Nop())
	require.Error(t, err)
}

func TestApp_RequireSession(t *testing.T) {
	srv := newSandboxServer(t)
	a, out := newTestApp(t, srv)
	ctx := context.Background()

	require.ErrorIs(t, a.RequireSession(ctx), service.ErrNotAuthenticated)

	login(t, a)
	assert.Contains(t, out.String(), "Maria Keeper")
	require.NoError(t, a.RequireSession(ctx))

	vaultID, err := a.ActiveVault(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, vaultID)
}

func TestApp_ActiveVaultFallsBackToFirstVault(t *testing.T) {
	srv := newSandboxServer(t)
	a, _ := newTestApp(t, srv)
	ctx := context.Background()
	login(t, a)

	want, err := a.ActiveVault(ctx)
	require.NoError(t, err)

	// forget the choice; the first listed vault is picked again
	require.NoError(t, a.Services.Session.SetActiveVault(ctx, ""))
	got, err := a.ActiveVault(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, want, a.Services.Session.ActiveVaultID())
}

func TestApp_Copy(t *testing.T) {
	srv := newSandboxServer(t)
	clip := &fakeClipboard{}
	a, _ := newTestApp(t, srv, WithClipboard(clip))

	require.NoError(t, a.Copy("https://legacy.example/join/abc"))
	assert.Equal(t, "https://legacy.example/join/abc", clip.text)
}

func TestApp_WatchPollsUntilCancelled(t *testing.T) {
	srv := newSandboxServer(t)
	a, _ := newTestApp(t, srv)
	login(t, a)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Watch(ctx) }()

	assert.Eventually(t, func() bool {
		return a.Services.Notifications.UnreadCount() > 0
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestApp_WatchEndsOnLogout(t *testing.T) {
	srv := newSandboxServer(t)
	a, _ := newTestApp(t, srv)
	login(t, a)

	done := make(chan error, 1)
	go func() { done <- a.Watch(context.Background()) }()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, a.Services.Auth.Logout(context.Background()))

	select {
	case err := <-done:
		require.ErrorIs(t, err, service.ErrNotAuthenticated)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after logout")
	}
}

func TestTerminalNotifier(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	n := NewTerminalNotifier(out, errOut)

	n.Success("Signed out", "")
	n.Success("Uploaded", "Wedding portrait")
	n.Error("Upload failed", "file is too large")

	assert.Equal(t, "Signed out\nUploaded: Wedding portrait\n", out.String())
	assert.Equal(t, "error: Upload failed: file is too large\n", errOut.String())
}
