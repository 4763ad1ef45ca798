package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/legacy-keeper/internal/config"
	"github.com/MKhiriev/legacy-keeper/internal/logger"
	"github.com/MKhiriev/legacy-keeper/internal/sandbox"
	"github.com/MKhiriev/legacy-keeper/models"
)

const testPassword = "correct-horse"

type testEnv struct {
	t   *testing.T
	sb  *sandbox.Sandbox
	cfg *config.ServerConfig
	h   *Handler
	srv *httptest.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.ServerConfig{
		Version:         "1.2.3",
		HTTPAddress:     ":0",
		RequestTimeout:  5 * time.Second,
		TokenSignKey:    "test-sign-key",
		TokenIssuer:     "test-issuer",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}
	sb := sandbox.New(sandbox.WithLogger(logger.Nop()))
	h := NewHandler(sb, cfg, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return &testEnv{t: t, sb: sb, cfg: cfg, h: h, srv: srv}
}

type reply struct {
	status int
	header http.Header
	body   []byte
}

func (r reply) decode(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.body, v), "body: %s", r.body)
}

func (r reply) detail(t *testing.T) string {
	t.Helper()
	var payload map[string]any
	r.decode(t, &payload)
	detail, _ := payload["detail"].(string)
	return detail
}

// do sends body as JSON unless it is an io.Reader, in which case
// contentType must name its encoding.
func (e *testEnv) do(method, path, token string, body any, contentType ...string) reply {
	e.t.Helper()

	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case io.Reader:
		rdr = b
	default:
		raw, err := json.Marshal(b)
		require.NoError(e.t, err)
		rdr = bytes.NewReader(raw)
		contentType = []string{"application/json"}
	}

	req, err := http.NewRequest(method, e.srv.URL+path, rdr)
	require.NoError(e.t, err)
	if len(contentType) > 0 {
		req.Header.Set("Content-Type", contentType[0])
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.srv.Client().Do(req)
	require.NoError(e.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(e.t, err)
	return reply{status: resp.StatusCode, header: resp.Header, body: raw}
}

// signUp registers an account and logs it in.
func (e *testEnv) signUp(email, fullName string) models.APIAuthResponse {
	e.t.Helper()

	res := e.do(http.MethodPost, "/api/users/register/", "", models.Registration{
		Email:    email,
		Password: testPassword,
		FullName: fullName,
	})
	require.Equal(e.t, http.StatusCreated, res.status, "%s", res.body)

	res = e.do(http.MethodPost, "/api/users/login/", "", models.Credentials{Email: email, Password: testPassword})
	require.Equal(e.t, http.StatusOK, res.status, "%s", res.body)

	var auth models.APIAuthResponse
	res.decode(e.t, &auth)
	return auth
}

func (e *testEnv) upload(userID, vaultID, title, dateTaken string) models.APIMediaItem {
	e.t.Helper()

	item, err := e.sb.CreateMedia(userID, sandbox.MediaUpload{
		VaultID:   vaultID,
		Title:     title,
		DateTaken: dateTaken,
		Files: []models.UploadFile{{
			Name:     title + ".jpg",
			MimeType: "image/jpeg",
			Content:  []byte("content of " + title),
		}},
	})
	require.NoError(e.t, err)
	return item
}
