// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/legacy-keeper/internal/config"
	"github.com/MKhiriev/legacy-keeper/internal/logger"
	"github.com/MKhiriev/legacy-keeper/internal/utils"
	"github.com/MKhiriev/legacy-keeper/models"
)

// fakeTokens is an in-memory TokenStore.
type fakeTokens struct {
	mu        sync.Mutex
	tokens    models.Tokens
	rotations int
	logouts   int
}

func (f *fakeTokens) Tokens() models.Tokens {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokens
}

func (f *fakeTokens) RotateTokens(_ context.Context, tokens models.Tokens) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rotations++
	f.tokens.AccessToken = tokens.AccessToken
	if tokens.RefreshToken != "" {
		f.tokens.RefreshToken = tokens.RefreshToken
	}
	return nil
}

func (f *fakeTokens) ForceLogout(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logouts++
	f.tokens = models.Tokens{}
}

func newTestAdapter(t *testing.T, serverURL string, tokens *fakeTokens) *httpServerAdapter {
	t.Helper()
	if tokens == nil {
		tokens = &fakeTokens{}
	}
	a, err := newHTTPServerAdapter(config.ClientAdapter{BaseURL: serverURL + "/api", RequestTimeout: 5 * time.Second}, tokens, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// ── base URL ────────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "adds trailing slash", raw: "https://vault.example.com/api", want: "https://vault.example.com/api/"},
		{name: "keeps trailing slash", raw: "https://vault.example.com/api/", want: "https://vault.example.com/api/"},
		{name: "adds scheme", raw: "localhost:8000/api", want: "http://localhost:8000/api/"},
		{name: "root", raw: "http://localhost:8000", want: "http://localhost:8000/"},
		{name: "trims spaces", raw: "  http://localhost:8000/api  ", want: "http://localhost:8000/api/"},
		{name: "empty", raw: "   ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNewHTTPServerAdapter_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, &fakeTokens{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

// ── headers ─────────────────────────────────────────────────────────────────

func TestSend_SetsBearerAndTraceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/vaults/", r.URL.Path)
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		assert.Len(t, r.Header.Get(traceIDHeader), 36)
		writeJSON(t, w, http.StatusOK, []models.APIVault{{ID: "v1", Name: "Family"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, &fakeTokens{tokens: models.Tokens{AccessToken: "access-1"}})
	vaults, err := a.ListVaults(context.Background())

	require.NoError(t, err)
	require.Len(t, vaults, 1)
	assert.Equal(t, "v1", vaults[0].ID)
	assert.Equal(t, 60, vaults[0].SafetyWindowMinutes)
}

func TestSend_NoAuthorizationWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusCreated, models.APIUser{ID: "u1", Email: "ann@example.com"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	user, err := a.Register(context.Background(), models.Registration{Email: "ann@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

// ── token refresh ───────────────────────────────────────────────────────────

func TestSend_RefreshesOnceForConcurrentUnauthorized(t *testing.T) {
	const callers = 5

	var refreshes atomic.Int32
	var stale sync.WaitGroup
	stale.Add(callers)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/" + pathTokenRefresh:
			refreshes.Add(1)
			var req models.APIRefreshRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "refresh-1", req.Refresh)
			time.Sleep(100 * time.Millisecond)
			writeJSON(t, w, http.StatusOK, models.APIRefreshResponse{Access: "access-2", Refresh: "refresh-2"})
		case "/api/media/m1/":
			if r.Header.Get("Authorization") != "Bearer access-2" {
				// hold every stale request until all callers are in flight
				stale.Done()
				stale.Wait()
				writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "token expired"})
				return
			}
			writeJSON(t, w, http.StatusOK, models.APIMediaItem{ID: "m1", Vault: "v1"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	tokens := &fakeTokens{tokens: models.Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"}}
	a := newTestAdapter(t, srv.URL, tokens)

	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := a.GetMedia(context.Background(), "m1")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), refreshes.Load())
	assert.Equal(t, models.Tokens{AccessToken: "access-2", RefreshToken: "refresh-2"}, tokens.Tokens())
	assert.Equal(t, 0, tokens.logouts)
}

func TestSend_RefreshFailureLogsOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/"+pathTokenRefresh {
			writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "refresh expired"})
			return
		}
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "token expired"})
	}))
	defer srv.Close()

	tokens := &fakeTokens{tokens: models.Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"}}
	a := newTestAdapter(t, srv.URL, tokens)

	_, err := a.ListVaults(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, tokens.logouts)
	assert.Equal(t, models.Tokens{}, tokens.Tokens())
}

func TestSend_MissingRefreshTokenLogsOut(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	tokens := &fakeTokens{tokens: models.Tokens{AccessToken: "access-1"}}
	a := newTestAdapter(t, srv.URL, tokens)

	err := a.DeleteMedia(context.Background(), "m1")

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 1, tokens.logouts)
}

func TestSend_NoRefreshOnAuthPaths(t *testing.T) {
	var refreshes atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/"+pathTokenRefresh {
			refreshes.Add(1)
		}
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "No active account found with the given credentials"})
	}))
	defer srv.Close()

	tokens := &fakeTokens{tokens: models.Tokens{AccessToken: "stale", RefreshToken: "refresh-1"}}
	a := newTestAdapter(t, srv.URL, tokens)

	_, err := a.Login(context.Background(), models.Credentials{Email: "ann@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, "No active account found with the given credentials", ErrorMessage(err, "fallback"))
	assert.Zero(t, refreshes.Load())
	assert.Zero(t, tokens.logouts)
}

func TestSend_RefreshesAheadOfExpiry(t *testing.T) {
	soon, err := utils.GenerateJWTToken("test", "u1", models.AccessTokenKind, 10*time.Second, "key")
	require.NoError(t, err)

	var refreshes atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/"+pathTokenRefresh {
			refreshes.Add(1)
			writeJSON(t, w, http.StatusOK, models.APIRefreshResponse{Access: "access-2"})
			return
		}
		assert.Equal(t, "Bearer access-2", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, []models.APIVault{})
	}))
	defer srv.Close()

	tokens := &fakeTokens{tokens: models.Tokens{AccessToken: soon.SignedString, RefreshToken: "refresh-1"}}
	a := newTestAdapter(t, srv.URL, tokens)

	_, err = a.ListVaults(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(1), refreshes.Load())
	assert.Equal(t, "access-2", tokens.Tokens().AccessToken)
}

func TestExpiresSoon(t *testing.T) {
	now := time.Now()
	long, err := utils.GenerateJWTToken("test", "u1", models.AccessTokenKind, time.Hour, "key")
	require.NoError(t, err)
	short, err := utils.GenerateJWTToken("test", "u1", models.AccessTokenKind, time.Second, "key")
	require.NoError(t, err)

	assert.False(t, expiresSoon("", now))
	assert.False(t, expiresSoon("opaque", now))
	assert.False(t, expiresSoon(long.SignedString, now))
	assert.True(t, expiresSoon(short.SignedString, now))
}

// ── auth ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	vaultID := "v9"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/login/", r.URL.Path)

		var creds models.Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "ann@example.com", creds.Email)

		writeJSON(t, w, http.StatusOK, models.APIAuthResponse{
			Access:  "a",
			Refresh: "r",
			User:    models.APIUser{ID: "u1", Email: "ann@example.com", FullName: "Ann Lee", ActiveVaultID: &vaultID},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	res, err := a.Login(context.Background(), models.Credentials{Email: "ann@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, models.Tokens{AccessToken: "a", RefreshToken: "r"}, res.Tokens)
	assert.Equal(t, "v9", res.ActiveVaultID)
	assert.Equal(t, "Ann Lee", res.User.FullName)
	assert.Contains(t, res.User.ProfilePhoto, "ui-avatars.com")
}

func TestLeaveVault_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/vaults/v1/leave/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	res, err := a.LeaveVault(context.Background(), "v1")

	require.NoError(t, err)
	assert.Empty(t, res.Message)
}
