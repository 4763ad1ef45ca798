package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/legacy-keeper/internal/sandbox"
	"github.com/MKhiriev/legacy-keeper/models"
)

func sandboxActiveOnly() sandbox.MembersFilter {
	active := true
	return sandbox.MembersFilter{Active: &active}
}

func TestShareableInviteLifecycle(t *testing.T) {
	env := newTestEnv(t)
	owner := env.signUp("ana@example.com", "Ana Silva")
	vaultID := *owner.User.ActiveVaultID
	listPath := "/api/vaults/" + vaultID + "/invites/shareable/"

	var created models.APIShareableInviteEnvelope
	res := env.do(http.MethodPost, listPath, owner.Access, models.APIShareableInviteRequest{
		Role:      models.RoleViewer,
		ExpiresAt: time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, res.status, "%s", res.body)
	res.decode(t, &created)
	invite := created.Invite
	assert.Equal(t, "/join/"+invite.Token, invite.Link)
	assert.False(t, invite.IsRevoked)
	assert.False(t, invite.IsExpired)

	var page models.PaginatedResponse[models.APIShareableInvite]
	res = env.do(http.MethodGet, listPath+"?page=1&pageSize=10", owner.Access, nil)
	require.Equal(t, http.StatusOK, res.status)
	res.decode(t, &page)
	require.Equal(t, 1, page.Count)
	assert.Equal(t, invite.ID, page.Results[0].ID)

	var revoked models.MessageResult
	res = env.do(http.MethodPatch, "/api/invites/shareable/"+invite.ID+"/revoke/", owner.Access, nil)
	require.Equal(t, http.StatusOK, res.status)
	res.decode(t, &revoked)
	assert.Equal(t, "Invite link revoked.", revoked.Message)

	res = env.do(http.MethodGet, listPath, owner.Access, nil)
	res.decode(t, &page)
	assert.True(t, page.Results[0].IsRevoked)

	res = env.do(http.MethodDelete, "/api/invites/shareable/"+invite.ID+"/", owner.Access, nil)
	require.Equal(t, http.StatusNoContent, res.status)

	res = env.do(http.MethodGet, listPath, owner.Access, nil)
	res.decode(t, &page)
	assert.Zero(t, page.Count)
}

func TestCreateShareableInvite_Validation(t *testing.T) {
	env := newTestEnv(t)
	owner := env.signUp("ana@example.com", "Ana Silva")
	listPath := "/api/vaults/" + *owner.User.ActiveVaultID + "/invites/shareable/"

	res := env.do(http.MethodPost, listPath, owner.Access, models.APIShareableInviteRequest{
		Role:      "OWNER",
		ExpiresAt: time.Now().Add(-time.Hour).UTC().Format(time.RFC3339),
	})
	require.Equal(t, http.StatusBadRequest, res.status)

	var fields map[string][]string
	res.decode(t, &fields)
	assert.Contains(t, fields, "role")
	assert.Contains(t, fields, "expiresAt")

	stranger := env.signUp("bob@example.com", "Bob Stone")
	res = env.do(http.MethodGet, listPath, stranger.Access, nil)
	assert.Equal(t, http.StatusForbidden, res.status)
}
