// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// InviteStatus is the display status of a shareable invite link. It is
// always derived, never stored.
type InviteStatus string

const (
	InviteActive  InviteStatus = "ACTIVE"
	InviteRevoked InviteStatus = "REVOKED"
	InviteExpired InviteStatus = "EXPIRED"
)

// ShareableInvite is a reusable, expiring, revocable link granting Role to
// whoever joins through it. The server owns the record; the client only
// requests revoke/delete transitions.
type ShareableInvite struct {
	ID          string    `json:"id"`
	VaultID     string    `json:"vaultId,omitempty"`
	Link        string    `json:"link"`
	Token       string    `json:"token,omitempty"`
	Role        UserRole  `json:"role"`
	ExpiresAt   time.Time `json:"expiresAt"`
	IsRevoked   bool      `json:"isRevoked"`
	IsExpired   bool      `json:"isExpired"`
	JoinedCount int       `json:"joinedCount"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

// Status derives the display status from the server flags. Revocation wins
// over expiry.
func (i ShareableInvite) Status() InviteStatus {
	switch {
	case i.IsRevoked:
		return InviteRevoked
	case i.IsExpired:
		return InviteExpired
	default:
		return InviteActive
	}
}

// StatusAt is Status with expiry also derived from now, for links whose
// expiresAt passed after the list was fetched.
func (i ShareableInvite) StatusAt(now time.Time) InviteStatus {
	if !i.IsRevoked && !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt) {
		return InviteExpired
	}
	return i.Status()
}

// CreateShareableInviteRequest asks for a new link.
type CreateShareableInviteRequest struct {
	Role      UserRole  `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}
