package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/legacy-keeper/internal/app"
	"github.com/MKhiriev/legacy-keeper/models"
)

// family creates an owner and a contributor who joined through a shareable
// link.
func family(t *testing.T, env *testEnv) (owner, relative models.APIAuthResponse, vaultID string) {
	t.Helper()

	owner = env.signUp("ana@example.com", "Ana Silva")
	vaultID = *owner.User.ActiveVaultID

	var created models.APIShareableInviteEnvelope
	res := env.do(http.MethodPost, "/api/vaults/"+vaultID+"/invites/shareable/", owner.Access, models.APIShareableInviteRequest{
		Role:      models.RoleContributor,
		ExpiresAt: time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, res.status, "%s", res.body)
	res.decode(t, &created)

	relative = env.signUp("bob@example.com", "Bob Stone")
	var joined models.JoinVaultResult
	res = env.do(http.MethodPost, "/api/join/", relative.Access, map[string]string{"token": created.Invite.Token})
	require.Equal(t, http.StatusOK, res.status, "%s", res.body)
	res.decode(t, &joined)
	require.Equal(t, vaultID, joined.VaultID)

	return owner, relative, vaultID
}

func TestListMembers(t *testing.T) {
	env := newTestEnv(t)
	owner, _, vaultID := family(t, env)

	var page models.PaginatedResponse[models.APIMembership]
	res := env.do(http.MethodGet, "/api/vaults/"+vaultID+"/members/", owner.Access, nil)
	require.Equal(t, http.StatusOK, res.status)
	res.decode(t, &page)
	require.Equal(t, 2, page.Count)
	assert.Equal(t, models.RoleAdmin, page.Results[0].Role)

	res = env.do(http.MethodGet, "/api/vaults/"+vaultID+"/members/?role=CONTRIBUTOR&search=bob&isActive=true", owner.Access, nil)
	require.Equal(t, http.StatusOK, res.status)
	res.decode(t, &page)
	require.Equal(t, 1, page.Count)
	assert.Equal(t, "bob@example.com", page.Results[0].User.Email)
}

func TestMemberManagement(t *testing.T) {
	env := newTestEnv(t)
	owner, relative, vaultID := family(t, env)

	members, err := env.sb.Members(owner.User.ID, vaultID, sandboxActiveOnly())
	require.NoError(t, err)
	var bobID string
	for _, m := range members {
		if m.User.ID == relative.User.ID {
			bobID = m.ID
		}
	}
	require.NotEmpty(t, bobID)
	membersPath := "/api/vaults/" + vaultID + "/members/" + bobID + "/"

	t.Run("contributor cannot change roles", func(t *testing.T) {
		res := env.do(http.MethodPatch, membersPath, relative.Access, map[string]models.UserRole{"role": models.RoleAdmin})
		require.Equal(t, http.StatusForbidden, res.status)
	})

	t.Run("invalid role", func(t *testing.T) {
		res := env.do(http.MethodPatch, membersPath, owner.Access, map[string]string{"role": "OWNER"})
		require.Equal(t, http.StatusBadRequest, res.status)
		assert.Contains(t, string(res.body), "role")
	})

	t.Run("promote", func(t *testing.T) {
		var member models.APIMembership
		res := env.do(http.MethodPatch, membersPath, owner.Access, map[string]models.UserRole{"role": models.RoleViewer})
		require.Equal(t, http.StatusOK, res.status)
		res.decode(t, &member)
		assert.Equal(t, models.RoleViewer, member.Role)
	})

	t.Run("remove", func(t *testing.T) {
		res := env.do(http.MethodDelete, membersPath, owner.Access, nil)
		require.Equal(t, http.StatusNoContent, res.status)

		res = env.do(http.MethodDelete, membersPath, owner.Access, nil)
		assert.Equal(t, http.StatusNotFound, res.status)
	})
}

func TestInviteMember(t *testing.T) {
	env := newTestEnv(t)
	owner := env.signUp("ana@example.com", "Ana Silva")
	vaultID := *owner.User.ActiveVaultID

	var invited models.InviteMemberResult
	res := env.do(http.MethodPost, "/api/vaults/"+vaultID+"/invite/", owner.Access, models.InviteMemberRequest{
		Email: "carla@example.com",
		Role:  models.RoleViewer,
	})
	require.Equal(t, http.StatusCreated, res.status, "%s", res.body)
	res.decode(t, &invited)
	assert.Equal(t, "Invitation sent to carla@example.com", invited.Message)
	require.NotEmpty(t, invited.Token)

	carla := env.signUp("carla@example.com", "Carla Dias")
	res = env.do(http.MethodPost, "/api/join/", carla.Access, map[string]string{"token": invited.Token})
	require.Equal(t, http.StatusOK, res.status)

	dave := env.signUp("dave@example.com", "Dave Dias")
	res = env.do(http.MethodPost, "/api/join/", dave.Access, map[string]string{"token": invited.Token})
	require.Equal(t, http.StatusBadRequest, res.status)
	assert.Equal(t, app.MsgInviteUnavailable, res.detail(t))
}

func TestLeaveAndTransfer(t *testing.T) {
	env := newTestEnv(t)
	owner, relative, vaultID := family(t, env)
	vaultPath := "/api/vaults/" + vaultID + "/"

	res := env.do(http.MethodPost, vaultPath+"leave/", owner.Access, nil)
	require.Equal(t, http.StatusBadRequest, res.status)
	assert.Equal(t, app.MsgOwnerCannotLeave, res.detail(t))

	members, err := env.sb.Members(owner.User.ID, vaultID, sandboxActiveOnly())
	require.NoError(t, err)
	var bobID string
	for _, m := range members {
		if m.User.ID == relative.User.ID {
			bobID = m.ID
		}
	}

	res = env.do(http.MethodPost, vaultPath+"transfer-ownership/", owner.Access, models.TransferOwnershipRequest{
		MembershipID: bobID, Password: "wrong-password",
	})
	require.Equal(t, http.StatusBadRequest, res.status)
	assert.Equal(t, app.MsgWrongPassword, res.detail(t))

	var transferred models.MessageResult
	res = env.do(http.MethodPost, vaultPath+"transfer-ownership/", owner.Access, models.TransferOwnershipRequest{
		MembershipID: bobID, Password: testPassword,
	})
	require.Equal(t, http.StatusOK, res.status, "%s", res.body)
	res.decode(t, &transferred)
	assert.Equal(t, relative.User.ID, transferred.OwnerID)

	var left models.MessageResult
	res = env.do(http.MethodPost, vaultPath+"leave/", owner.Access, nil)
	require.Equal(t, http.StatusOK, res.status, "%s", res.body)
	res.decode(t, &left)
	assert.Contains(t, left.Message, "You have left")

	res = env.do(http.MethodGet, vaultPath, owner.Access, nil)
	assert.Equal(t, http.StatusForbidden, res.status)
}

func TestVaults(t *testing.T) {
	env := newTestEnv(t)
	owner, relative, vaultID := family(t, env)

	var vaults []models.APIVault
	res := env.do(http.MethodGet, "/api/vaults/", relative.Access, nil)
	require.Equal(t, http.StatusOK, res.status)
	res.decode(t, &vaults)
	assert.Len(t, vaults, 2)

	var vault models.APIVault
	res = env.do(http.MethodGet, "/api/vaults/"+vaultID+"/", owner.Access, nil)
	require.Equal(t, http.StatusOK, res.status)
	res.decode(t, &vault)
	assert.True(t, vault.IsOwner)
	assert.Equal(t, 2, vault.MemberCount)
}
