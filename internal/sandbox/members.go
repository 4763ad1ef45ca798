package sandbox

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/legacy-keeper/internal/utils"
	"github.com/MKhiriev/legacy-keeper/models"
)

// MembersFilter is the decoded query of the members listing.
type MembersFilter struct {
	Search string
	Role   models.UserRole
	Active *bool
}

func validRole(role models.UserRole) bool {
	switch role {
	case models.RoleAdmin, models.RoleContributor, models.RoleViewer:
		return true
	}
	return false
}

func invalidChoice(role models.UserRole) string {
	return fmt.Sprintf("%q is not a valid choice.", role)
}

// Members lists the memberships of a vault, oldest first.
func (s *Sandbox) Members(userID, vaultID string, f MembersFilter) ([]models.APIMembership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, _, err := s.accessLocked(userID, vaultID); err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := []models.APIMembership{}
	for _, m := range s.vaultMembersLocked(vaultID) {
		if f.Role != "" && m.role != f.Role {
			continue
		}
		if f.Active != nil && m.active != *f.Active {
			continue
		}
		api := s.apiMembershipLocked(m)
		if search != "" && !strings.Contains(strings.ToLower(api.User.FullName+" "+api.User.Email), search) {
			continue
		}
		out = append(out, api)
	}
	return out, nil
}

func (s *Sandbox) apiMembershipLocked(m *membership) models.APIMembership {
	user := models.APIUserShort{ID: m.userID, FullName: m.email, Email: m.email}
	if acc, ok := s.accounts[m.userID]; ok {
		user.FullName = acc.fullName
		user.Email = acc.email
	}
	return models.APIMembership{
		ID:        m.id,
		User:      user,
		Role:      m.role,
		CreatedAt: formatTime(m.createdAt),
		IsActive:  m.active,
	}
}

func (s *Sandbox) vaultMembershipLocked(vaultID, membershipID string) (*membership, error) {
	m, ok := s.memberships[membershipID]
	if !ok || m.vaultID != vaultID {
		return nil, ErrNotFound
	}
	return m, nil
}

// RemoveMember deletes a membership. The owner cannot be removed.
func (s *Sandbox) RemoveMember(userID, vaultID, membershipID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, _, err := s.manageLocked(userID, vaultID)
	if err != nil {
		return err
	}
	m, err := s.vaultMembershipLocked(vaultID, membershipID)
	if err != nil {
		return err
	}
	if m.userID == v.ownerID {
		return ErrForbidden
	}

	s.dropMembershipLocked(m)
	return nil
}

// dropMembershipLocked deletes m and moves its account to another vault
// when m was the active one.
func (s *Sandbox) dropMembershipLocked(m *membership) {
	delete(s.memberships, m.id)
	for _, inv := range s.invites {
		if inv.membershipID == m.id {
			inv.revoked = true
		}
	}

	acc, ok := s.accounts[m.userID]
	if !ok || acc.activeVaultID != m.vaultID {
		return
	}
	acc.activeVaultID = ""
	for _, other := range s.memberships {
		if other.active && other.userID == acc.id {
			acc.activeVaultID = other.vaultID
			break
		}
	}
}

// UpdateMemberRole changes the role of a member. The owner keeps ADMIN.
func (s *Sandbox) UpdateMemberRole(userID, vaultID, membershipID string, role models.UserRole) (models.APIMembership, error) {
	if !validRole(role) {
		return models.APIMembership{}, fieldError("role", invalidChoice(role))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v, _, err := s.manageLocked(userID, vaultID)
	if err != nil {
		return models.APIMembership{}, err
	}
	m, err := s.vaultMembershipLocked(vaultID, membershipID)
	if err != nil {
		return models.APIMembership{}, err
	}
	if m.userID == v.ownerID {
		return models.APIMembership{}, ErrForbidden
	}

	m.role = role
	if m.active {
		s.notifyLocked(m.userID, notificationRecord{
			title:   "Your role changed",
			message: fmt.Sprintf("You are now %s in %s", strings.ToLower(string(role)), v.name),
			kind:    kindSecurity,
			route:   "/members",
			vaultID: vaultID,
		})
	}
	return s.apiMembershipLocked(m), nil
}

// InviteMember creates a pending membership and a single use invite for
// email.
func (s *Sandbox) InviteMember(userID, vaultID string, req models.InviteMemberRequest) (models.InviteMemberResult, error) {
	email := normalizeEmail(req.Email)
	verr := &ValidationError{}
	switch {
	case email == "":
		verr.add("email", msgRequired)
	case !validEmail(email):
		verr.add("email", msgInvalidEmail)
	}
	if !validRole(req.Role) {
		verr.add("role", invalidChoice(req.Role))
	}
	if err := verr.orNil(); err != nil {
		return models.InviteMemberResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, _, err := s.manageLocked(userID, vaultID); err != nil {
		return models.InviteMemberResult{}, err
	}
	for _, m := range s.vaultMembersLocked(vaultID) {
		if s.apiMembershipLocked(m).User.Email == email {
			return models.InviteMemberResult{}, fieldError("email", "This person is already a member of the vault.")
		}
	}

	now := s.now()
	m := &membership{
		id:        s.ids.Generate(),
		vaultID:   vaultID,
		email:     email,
		role:      req.Role,
		createdAt: now,
	}
	s.memberships[m.id] = m

	inv := &inviteRecord{
		id:           s.ids.Generate(),
		vaultID:      vaultID,
		token:        s.ids.Token(),
		role:         req.Role,
		createdBy:    userID,
		expiresAt:    now.Add(DefaultInviteTTL),
		createdAt:    now,
		membershipID: m.id,
	}
	s.invites[inv.id] = inv

	return models.InviteMemberResult{
		Message: "Invitation sent to " + email,
		Link:    joinLink(inv.token),
		Token:   inv.token,
	}, nil
}

// JoinVault redeems an invite token for userID.
func (s *Sandbox) JoinVault(userID, token string) (models.JoinVaultResult, error) {
	if strings.TrimSpace(token) == "" {
		return models.JoinVaultResult{}, fieldError("token", msgRequired)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return models.JoinVaultResult{}, ErrNotFound
	}
	inv := s.inviteByToken(token)
	if inv == nil || !inv.usable(s.now()) {
		return models.JoinVaultResult{}, ErrInviteUnavailable
	}

	v := s.vaults[inv.vaultID]
	if m := s.membershipLocked(userID, inv.vaultID); m != nil {
		return models.JoinVaultResult{
			Message:       "You are already a member of this vault.",
			VaultID:       v.id,
			VaultName:     v.name,
			Role:          m.role,
			AlreadyMember: true,
		}, nil
	}

	m := s.joinLocked(acc, inv)
	return models.JoinVaultResult{
		Message:   "Successfully joined " + v.name,
		VaultID:   v.id,
		VaultName: v.name,
		Role:      m.role,
	}, nil
}

// joinLocked makes acc an active member through inv and switches it to the
// vault.
func (s *Sandbox) joinLocked(acc *account, inv *inviteRecord) *membership {
	m, ok := s.memberships[inv.membershipID]
	if !ok {
		m = &membership{
			id:        s.ids.Generate(),
			vaultID:   inv.vaultID,
			role:      inv.role,
			createdAt: s.now(),
		}
		s.memberships[m.id] = m
	}
	m.userID = acc.id
	m.email = acc.email
	m.active = true

	inv.joined++
	acc.activeVaultID = inv.vaultID

	s.notifyVaultLocked(inv.vaultID, acc.id, notificationRecord{
		title:   "New member joined",
		message: fmt.Sprintf("%s joined %s", acc.fullName, s.vaults[inv.vaultID].name),
		kind:    kindMemberJoin,
		route:   "/members",
	})
	return m
}

// LeaveVault removes userID from a vault. The owner has to transfer
// ownership first.
func (s *Sandbox) LeaveVault(userID, vaultID string) (models.MessageResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, m, err := s.accessLocked(userID, vaultID)
	if err != nil {
		return models.MessageResult{}, err
	}
	if v.ownerID == userID {
		return models.MessageResult{}, ErrOwnerCannotLeave
	}

	s.dropMembershipLocked(m)
	return models.MessageResult{Message: "You have left " + v.name}, nil
}

// TransferOwnership hands the vault over to an active member. The caller
// must be the owner and confirm with their password.
func (s *Sandbox) TransferOwnership(userID, vaultID string, req models.TransferOwnershipRequest) (models.MessageResult, error) {
	verr := &ValidationError{}
	if req.MembershipID == "" {
		verr.add("membershipId", msgRequired)
	}
	if req.Password == "" {
		verr.add("password", msgRequired)
	}
	if err := verr.orNil(); err != nil {
		return models.MessageResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v, _, err := s.accessLocked(userID, vaultID)
	if err != nil {
		return models.MessageResult{}, err
	}
	if v.ownerID != userID {
		return models.MessageResult{}, ErrForbidden
	}
	if !utils.EqualHash(s.accounts[userID].passwordHash, utils.HashString(req.Password, s.passwordKey)) {
		return models.MessageResult{}, ErrWrongPassword
	}
	target, err := s.vaultMembershipLocked(vaultID, req.MembershipID)
	if err != nil || !target.active {
		return models.MessageResult{}, ErrNotFound
	}

	v.ownerID = target.userID
	target.role = models.RoleAdmin
	s.notifyLocked(target.userID, notificationRecord{
		title:   "You now own " + v.name,
		message: "Vault ownership was transferred to you.",
		kind:    kindSecurity,
		route:   "/vault",
		vaultID: vaultID,
	})

	return models.MessageResult{Message: "Ownership transferred.", OwnerID: target.userID}, nil
}
