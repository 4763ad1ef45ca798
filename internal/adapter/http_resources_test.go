package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/legacy-keeper/models"
)

func TestCreateShareableInvite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/vaults/v1/invites/shareable/", r.URL.Path)

		var body models.APIShareableInviteRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.RoleViewer, body.Role)
		assert.Equal(t, "2026-05-01T10:00:00Z", body.ExpiresAt)

		writeJSON(t, w, http.StatusCreated, models.APIShareableInviteEnvelope{Invite: models.APIShareableInvite{
			ID:        "i1",
			Link:      "https://vault.example.com/join/abc",
			Role:      "VIEWER",
			ExpiresAt: "2026-05-01T10:00:00Z",
		}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	expires := time.Date(2026, 5, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	inv, err := a.CreateShareableInvite(context.Background(), "v1", models.CreateShareableInviteRequest{Role: models.RoleViewer, ExpiresAt: expires})

	require.NoError(t, err)
	assert.Equal(t, "i1", inv.ID)
	assert.Equal(t, models.RoleViewer, inv.Role)
	assert.True(t, inv.ExpiresAt.Equal(expires))
}

func TestListShareableInvites_DefaultPaging(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("pageSize"))
		assert.Empty(t, r.URL.Query().Get("vault"))
		writeJSON(t, w, http.StatusOK, models.PaginatedResponse[models.APIShareableInvite]{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	page, err := a.ListShareableInvites(context.Background(), "v1", models.InvitesQueryParams{})

	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestRevokeAndDeleteShareableInvite(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPatch {
			writeJSON(t, w, http.StatusOK, models.MessageResult{Message: "revoked"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	res, err := a.RevokeShareableInvite(context.Background(), "i1")
	require.NoError(t, err)
	assert.Equal(t, "revoked", res.Message)
	require.NoError(t, a.DeleteShareableInvite(context.Background(), "i1"))

	assert.Equal(t, []string{
		"PATCH /api/invites/shareable/i1/revoke/",
		"DELETE /api/invites/shareable/i1/",
	}, seen)
}

func TestListRelationships_ArrayOrEnvelope(t *testing.T) {
	envelope := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/genealogy/relationships/", r.URL.Path)
		assert.Equal(t, "v1", r.URL.Query().Get("vault"))
		rows := []models.APIRelationship{{ID: "r1", FromPerson: "p1", ToPerson: "p2", RelationshipType: "PARENT_OF"}}
		if envelope {
			writeJSON(t, w, http.StatusOK, models.PaginatedResponse[models.APIRelationship]{Count: 1, Results: rows})
			return
		}
		writeJSON(t, w, http.StatusOK, rows)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	for _, envelope = range []bool{false, true} {
		rels, err := a.ListRelationships(context.Background(), "v1")
		require.NoError(t, err)
		require.Len(t, rels, 1)
		assert.Equal(t, "r1", rels[0].ID)
	}
}

func TestUpdateProfile_ClearsDates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/genealogy/profiles/p1/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		form := r.MultipartForm
		assert.Equal(t, []string{""}, form.Value["deathDate"])
		assert.NotContains(t, form.Value, "vault")
		assert.NotContains(t, form.Value, "birthDate")
		assert.NotContains(t, form.Value, "fullName")

		writeJSON(t, w, http.StatusOK, models.APIPersonProfile{ID: "p1", FullName: "Rosa"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	p, err := a.UpdateProfile(context.Background(), "p1", models.ProfileRequest{VaultID: "v1", FullName: ptr(""), DeathDate: ptr("")})

	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
}

func TestExportAuditLogs(t *testing.T) {
	tests := []struct {
		name        string
		disposition string
		want        string
	}{
		{name: "server name", disposition: `attachment; filename="audit-2026-03.xlsx"`, want: "audit-2026-03.xlsx"},
		{name: "fallback", disposition: "", want: "audit-log-v1.xlsx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/audit/logs/export/", r.URL.Path)
				assert.Equal(t, "v1", r.URL.Query().Get("vault"))
				if tt.disposition != "" {
					w.Header().Set("Content-Disposition", tt.disposition)
				}
				_, _ = w.Write([]byte("xlsx"))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, nil)
			var buf bytes.Buffer
			name, err := a.ExportAuditLogs(context.Background(), "v1", models.AuditLogsQueryParams{}, &buf)

			require.NoError(t, err)
			assert.Equal(t, tt.want, name)
			assert.Equal(t, "xlsx", buf.String())
		})
	}
}

func TestListNotifications(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notifications/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.APINotificationsResponse{
			Items: []models.APINotification{
				{ID: "n1", Title: "New upload", Type: "UPLOAD", CreatedAt: "2026-03-01T09:00:00+02:00", Route: "/vault"},
			},
			UnreadCount: 3,
			ServerTime:  "2026-03-01T10:00:00Z",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	feed, err := a.ListNotifications(context.Background(), models.NotificationsQueryParams{})

	require.NoError(t, err)
	assert.Equal(t, 3, feed.UnreadCount)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), feed.ServerTime.UTC())
	require.Len(t, feed.Items, 1)
	assert.Equal(t, models.NotificationUpload, feed.Items[0].Type)
	assert.Equal(t, time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC), feed.Items[0].CreatedAt)
}

func TestCleanupRedundant(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/vaults/v1/cleanup-redundant/", r.URL.Path)
		var req models.VaultCleanupRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.DryRun)
		writeJSON(t, w, http.StatusOK, models.VaultCleanupResult{DryRun: true, GroupsSelected: 2, ReclaimableBytes: 2048})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, nil)
	res, err := a.CleanupRedundant(context.Background(), "v1", models.VaultCleanupRequest{DryRun: true})

	require.NoError(t, err)
	assert.Equal(t, 2, res.GroupsSelected)
	assert.Equal(t, int64(2048), res.ReclaimableBytes)
}
