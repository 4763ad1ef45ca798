package sandbox

import (
	"cmp"
	"slices"

	"github.com/MKhiriev/legacy-keeper/models"
)

const defaultSafetyWindowMinutes = 60

func (s *Sandbox) createVaultLocked(owner *account, name, familyName string) *vaultRecord {
	now := s.now()
	v := &vaultRecord{
		id:         s.ids.Generate(),
		name:       name,
		familyName: familyName,
		ownerID:    owner.id,
		createdAt:  now,
	}
	s.vaults[v.id] = v

	m := &membership{
		id:        s.ids.Generate(),
		vaultID:   v.id,
		userID:    owner.id,
		email:     owner.email,
		role:      models.RoleAdmin,
		active:    true,
		createdAt: now,
	}
	s.memberships[m.id] = m

	if owner.activeVaultID == "" {
		owner.activeVaultID = v.id
	}
	return v
}

// membershipLocked returns the active membership of userID in vaultID.
func (s *Sandbox) membershipLocked(userID, vaultID string) *membership {
	for _, m := range s.memberships {
		if m.active && m.vaultID == vaultID && m.userID == userID {
			return m
		}
	}
	return nil
}

// accessLocked resolves the caller's membership. An unknown vault is
// ErrNotFound, a vault the caller is not part of is ErrForbidden.
func (s *Sandbox) accessLocked(userID, vaultID string) (*vaultRecord, *membership, error) {
	v, ok := s.vaults[vaultID]
	if !ok {
		return nil, nil, ErrNotFound
	}
	m := s.membershipLocked(userID, vaultID)
	if m == nil {
		return nil, nil, ErrForbidden
	}
	return v, m, nil
}

// manageLocked is accessLocked restricted to admins and the owner.
func (s *Sandbox) manageLocked(userID, vaultID string) (*vaultRecord, *membership, error) {
	v, m, err := s.accessLocked(userID, vaultID)
	if err != nil {
		return nil, nil, err
	}
	if m.role != models.RoleAdmin && v.ownerID != userID {
		return nil, nil, ErrForbidden
	}
	return v, m, nil
}

func (s *Sandbox) vaultMembersLocked(vaultID string) []*membership {
	var out []*membership
	for _, m := range s.memberships {
		if m.vaultID == vaultID {
			out = append(out, m)
		}
	}
	slices.SortFunc(out, func(a, b *membership) int {
		if c := a.createdAt.Compare(b.createdAt); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})
	return out
}

// Vaults lists the vaults userID is an active member of, by name.
func (s *Sandbox) Vaults(userID string) []models.APIVault {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.APIVault{}
	for _, m := range s.memberships {
		if m.active && m.userID == userID {
			out = append(out, s.apiVaultLocked(s.vaults[m.vaultID], m))
		}
	}
	slices.SortFunc(out, func(a, b models.APIVault) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Vault returns one vault of userID.
func (s *Sandbox) Vault(userID, vaultID string) (models.APIVault, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, m, err := s.accessLocked(userID, vaultID)
	if err != nil {
		return models.APIVault{}, err
	}
	return s.apiVaultLocked(v, m), nil
}

func (s *Sandbox) apiVaultLocked(v *vaultRecord, viewer *membership) models.APIVault {
	members := 0
	for _, m := range s.vaultMembersLocked(v.id) {
		if m.active {
			members++
		}
	}
	var used int64
	for _, item := range s.media {
		if item.vaultID != v.id {
			continue
		}
		for _, id := range item.fileIDs {
			used += int64(len(s.files[id].content))
		}
	}

	return models.APIVault{
		ID:                  v.id,
		Name:                v.name,
		FamilyName:          v.familyName,
		Description:         v.description,
		SafetyWindowMinutes: ptr(defaultSafetyWindowMinutes),
		StorageQuality:      "HIGH",
		DefaultVisibility:   "FAMILY",
		StorageUsedBytes:    used,
		MemberCount:         members,
		MyRole:              ptr(viewer.role),
		IsOwner:             v.ownerID == viewer.userID,
	}
}
