package http

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/legacy-keeper/internal/app"
	"github.com/MKhiriev/legacy-keeper/models"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	res := env.do(http.MethodPost, "/api/users/register/", "", models.Registration{
		Email:    "Ana@Example.com",
		Password: testPassword,
		FullName: "Ana Silva",
	})
	require.Equal(t, http.StatusCreated, res.status)

	var user models.APIUser
	res.decode(t, &user)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "Ana Silva", user.FullName)
	require.NotNil(t, user.ActiveVaultID)
}

func TestRegister_Errors(t *testing.T) {
	env := newTestEnv(t)
	env.signUp("ana@example.com", "Ana Silva")

	t.Run("email taken", func(t *testing.T) {
		res := env.do(http.MethodPost, "/api/users/register/", "", models.Registration{
			Email: "ana@example.com", Password: testPassword, FullName: "Other",
		})
		require.Equal(t, http.StatusBadRequest, res.status)

		var payload map[string][]string
		res.decode(t, &payload)
		assert.Equal(t, []string{app.MsgEmailAlreadyExists}, payload["email"])
	})

	t.Run("missing fields", func(t *testing.T) {
		res := env.do(http.MethodPost, "/api/users/register/", "", models.Registration{})
		require.Equal(t, http.StatusBadRequest, res.status)

		var payload map[string][]string
		res.decode(t, &payload)
		assert.Contains(t, payload, "email")
		assert.Contains(t, payload, "password")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		res := env.do(http.MethodPost, "/api/users/register/", "", strings.NewReader("{"), "application/json")
		require.Equal(t, http.StatusBadRequest, res.status)
		assert.Equal(t, app.MsgInvalidDataProvided, res.detail(t))
	})
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	auth := env.signUp("ana@example.com", "Ana Silva")

	assert.NotEmpty(t, auth.Access)
	assert.NotEmpty(t, auth.Refresh)
	assert.NotEqual(t, auth.Access, auth.Refresh)
	assert.Equal(t, "ana@example.com", auth.User.Email)

	res := env.do(http.MethodPost, "/api/users/login/", "", models.Credentials{Email: "ana@example.com", Password: "wrong-password"})
	require.Equal(t, http.StatusUnauthorized, res.status)
	assert.Equal(t, app.MsgInvalidCredentials, res.detail(t))
}

func TestAuth_ProtectedRoutes(t *testing.T) {
	env := newTestEnv(t)
	auth := env.signUp("ana@example.com", "Ana Silva")

	tests := []struct {
		name       string
		token      string
		wantStatus int
		wantDetail string
	}{
		{"access token", auth.Access, http.StatusOK, ""},
		{"no token", "", http.StatusUnauthorized, app.MsgAuthRequired},
		{"garbage", "not-a-jwt", http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
		{"refresh token", auth.Refresh, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := env.do(http.MethodGet, "/api/users/me/", tt.token, nil)
			require.Equal(t, tt.wantStatus, res.status, "%s", res.body)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, res.detail(t))
			}
		})
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	env := newTestEnv(t)

	req, err := http.NewRequest(http.MethodGet, env.srv.URL+"/api/users/me/", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Token abc")

	resp, err := env.srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRefreshToken(t *testing.T) {
	env := newTestEnv(t)
	auth := env.signUp("ana@example.com", "Ana Silva")

	res := env.do(http.MethodPost, "/api/users/token/refresh/", "", models.APIRefreshRequest{Refresh: auth.Refresh})
	require.Equal(t, http.StatusOK, res.status, "%s", res.body)

	var rotated models.APIRefreshResponse
	res.decode(t, &rotated)
	require.NotEmpty(t, rotated.Access)
	assert.NotEmpty(t, rotated.Refresh)

	res = env.do(http.MethodGet, "/api/users/me/", rotated.Access, nil)
	assert.Equal(t, http.StatusOK, res.status)

	t.Run("access token is rejected", func(t *testing.T) {
		res := env.do(http.MethodPost, "/api/users/token/refresh/", "", models.APIRefreshRequest{Refresh: auth.Access})
		require.Equal(t, http.StatusUnauthorized, res.status)
		assert.Equal(t, app.MsgTokenIsExpiredOrInvalid, res.detail(t))
	})

	t.Run("missing token", func(t *testing.T) {
		res := env.do(http.MethodPost, "/api/users/token/refresh/", "", models.APIRefreshRequest{})
		require.Equal(t, http.StatusBadRequest, res.status)
	})
}

func TestUpdateMe(t *testing.T) {
	env := newTestEnv(t)
	auth := env.signUp("ana@example.com", "Ana Silva")

	form := url.Values{"fullName": {"Ana M. Silva"}, "bio": {"Keeps the albums."}}
	res := env.do(http.MethodPatch, "/api/users/me/", auth.Access,
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusOK, res.status, "%s", res.body)

	var user models.APIUser
	res.decode(t, &user)
	assert.Equal(t, "Ana M. Silva", user.FullName)
	assert.Equal(t, "Keeps the albums.", user.Bio)

	res = env.do(http.MethodPatch, "/api/users/me/", auth.Access,
		strings.NewReader(url.Values{"fullName": {"  "}}.Encode()), "application/x-www-form-urlencoded")
	assert.Equal(t, http.StatusBadRequest, res.status)
}
