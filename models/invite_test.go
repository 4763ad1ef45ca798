package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareableInvite_Status(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name   string
		invite ShareableInvite
		want   InviteStatus
	}{
		{"active", ShareableInvite{ExpiresAt: future}, InviteActive},
		{"expired flag", ShareableInvite{ExpiresAt: past, IsExpired: true}, InviteExpired},
		{"revoked before expiry", ShareableInvite{ExpiresAt: future, IsRevoked: true}, InviteRevoked},
		{"revoked wins over expired", ShareableInvite{ExpiresAt: past, IsRevoked: true, IsExpired: true}, InviteRevoked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.invite.Status())
		})
	}
}

func TestShareableInvite_StatusAt(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	// server has not flagged it yet, but expiresAt is in the past
	stale := ShareableInvite{ExpiresAt: now.Add(-time.Minute)}
	assert.Equal(t, InviteExpired, stale.StatusAt(now))

	revoked := ShareableInvite{ExpiresAt: now.Add(-time.Minute), IsRevoked: true}
	assert.Equal(t, InviteRevoked, revoked.StatusAt(now))

	active := ShareableInvite{ExpiresAt: now.Add(time.Minute)}
	assert.Equal(t, InviteActive, active.StatusAt(now))
}

func TestShareableInvite_JSONOmitsZeroCreatedAt(t *testing.T) {
	raw, err := json.Marshal(ShareableInvite{ID: "i1"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "createdAt")

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	raw, err = json.Marshal(ShareableInvite{ID: "i1", CreatedAt: created})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"createdAt":"2024-05-01T12:00:00Z"`)
}
