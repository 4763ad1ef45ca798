// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/legacy-keeper/internal/app"
)

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	env := newTestEnv(t)

	res := env.do(http.MethodGet, "/api/genealogy/profiles/", "", nil)
	require.Equal(t, http.StatusNotFound, res.status)
	assert.Equal(t, app.MsgNotFound, res.detail(t))

	res = env.do(http.MethodPut, "/api/version/", "", nil)
	require.Equal(t, http.StatusMethodNotAllowed, res.status)
	assert.Equal(t, `Method "PUT" not allowed.`, res.detail(t))
}

func TestNotFound_UnservedVaultRoutes(t *testing.T) {
	env := newTestEnv(t)
	auth := env.signUp("ana@example.com", "Ana Silva")

	for _, path := range []string{
		"/api/audit/logs/",
		"/api/vaults/" + *auth.User.ActiveVaultID + "/health-analysis/",
	} {
		res := env.do(http.MethodGet, path, auth.Access, nil)
		require.Equal(t, http.StatusNotFound, res.status, path)
		assert.Equal(t, app.MsgNotFound, res.detail(t), path)
	}
}
