package sandbox

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/legacy-keeper/models"
)

// joinLink is the path the web app redeems tokens on.
func joinLink(token string) string {
	return "/join/" + token
}

func (s *Sandbox) inviteByToken(token string) *inviteRecord {
	token = strings.TrimSpace(token)
	for _, inv := range s.invites {
		if inv.token == token {
			return inv
		}
	}
	return nil
}

// ShareableInvites lists the shareable links of a vault, newest first.
// Email invites are not part of the list.
func (s *Sandbox) ShareableInvites(userID, vaultID string) ([]models.APIShareableInvite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, _, err := s.manageLocked(userID, vaultID); err != nil {
		return nil, err
	}

	var records []*inviteRecord
	for _, inv := range s.invites {
		if inv.vaultID == vaultID && inv.membershipID == "" {
			records = append(records, inv)
		}
	}
	slices.SortFunc(records, func(a, b *inviteRecord) int {
		if c := b.createdAt.Compare(a.createdAt); c != 0 {
			return c
		}
		return cmp.Compare(b.id, a.id)
	})

	out := make([]models.APIShareableInvite, 0, len(records))
	for _, inv := range records {
		out = append(out, s.apiInvite(inv))
	}
	return out, nil
}

// CreateShareableInvite issues a reusable link granting req.Role until
// req.ExpiresAt.
func (s *Sandbox) CreateShareableInvite(userID, vaultID string, req models.APIShareableInviteRequest) (models.APIShareableInvite, error) {
	verr := &ValidationError{}
	if !validRole(req.Role) {
		verr.add("role", invalidChoice(req.Role))
	}
	expiresAt, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(req.ExpiresAt))
	switch {
	case err != nil:
		verr.add("expiresAt", "Datetime has wrong format.")
	case !expiresAt.After(s.now()):
		verr.add("expiresAt", "Expiry must be in the future.")
	}
	if err = verr.orNil(); err != nil {
		return models.APIShareableInvite{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, _, err = s.manageLocked(userID, vaultID); err != nil {
		return models.APIShareableInvite{}, err
	}

	inv := &inviteRecord{
		id:        s.ids.Generate(),
		vaultID:   vaultID,
		token:     s.ids.Token(),
		role:      req.Role,
		createdBy: userID,
		expiresAt: expiresAt,
		createdAt: s.now(),
	}
	s.invites[inv.id] = inv
	return s.apiInvite(inv), nil
}

func (s *Sandbox) shareableInviteLocked(userID, inviteID string) (*inviteRecord, error) {
	inv, ok := s.invites[inviteID]
	if !ok || inv.membershipID != "" {
		return nil, ErrNotFound
	}
	if _, _, err := s.manageLocked(userID, inv.vaultID); err != nil {
		return nil, err
	}
	return inv, nil
}

// RevokeShareableInvite disables a link. Revoking twice is not an error.
func (s *Sandbox) RevokeShareableInvite(userID, inviteID string) (models.MessageResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, err := s.shareableInviteLocked(userID, inviteID)
	if err != nil {
		return models.MessageResult{}, err
	}
	inv.revoked = true
	return models.MessageResult{Message: "Invite link revoked."}, nil
}

// DeleteShareableInvite removes a link.
func (s *Sandbox) DeleteShareableInvite(userID, inviteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.shareableInviteLocked(userID, inviteID); err != nil {
		return err
	}
	delete(s.invites, inviteID)
	return nil
}

func (s *Sandbox) apiInvite(inv *inviteRecord) models.APIShareableInvite {
	return models.APIShareableInvite{
		ID:          inv.id,
		Vault:       inv.vaultID,
		Link:        joinLink(inv.token),
		Token:       inv.token,
		Role:        inv.role,
		ExpiresAt:   formatTime(inv.expiresAt),
		IsRevoked:   inv.revoked,
		IsExpired:   !s.now().Before(inv.expiresAt),
		JoinedCount: inv.joined,
		CreatedAt:   formatTime(inv.createdAt),
	}
}
