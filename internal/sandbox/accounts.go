package sandbox

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/legacy-keeper/internal/utils"
	"github.com/MKhiriev/legacy-keeper/models"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Name == ""
}

// Register creates an account. Without a join token the account gets a
// vault of its own; with one it joins the inviting vault instead.
func (s *Sandbox) Register(reg models.Registration) (models.APIUser, error) {
	email := normalizeEmail(reg.Email)
	fullName := strings.TrimSpace(reg.FullName)

	verr := &ValidationError{}
	switch {
	case email == "":
		verr.add("email", msgRequired)
	case !validEmail(email):
		verr.add("email", msgInvalidEmail)
	}
	if len(reg.Password) < minPasswordLength {
		verr.add("password", fmt.Sprintf("Ensure this field has at least %d characters.", minPasswordLength))
	}
	if fullName == "" {
		verr.add("fullName", msgRequired)
	}
	if err := verr.orNil(); err != nil {
		return models.APIUser{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.emails[email]; taken {
		return models.APIUser{}, ErrEmailTaken
	}

	var invite *inviteRecord
	if reg.JoinToken != "" {
		if invite = s.inviteByToken(reg.JoinToken); invite == nil || !invite.usable(s.now()) {
			return models.APIUser{}, ErrInviteUnavailable
		}
	}

	acc := &account{
		id:           s.ids.Generate(),
		email:        email,
		fullName:     fullName,
		passwordHash: utils.HashString(reg.Password, s.passwordKey),
		createdAt:    s.now(),
	}
	s.accounts[acc.id] = acc
	s.emails[email] = acc.id

	if invite != nil {
		s.joinLocked(acc, invite)
	} else {
		s.createVaultLocked(acc, fullName+"'s Vault", lastName(fullName))
	}

	s.logger.Debug().Str("user_id", acc.id).Msg("account registered")
	return s.apiUserLocked(acc), nil
}

// Authenticate checks an email/password pair and returns the account.
func (s *Sandbox) Authenticate(creds models.Credentials) (models.APIUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[normalizeEmail(creds.Email)]
	if !ok {
		return models.APIUser{}, ErrInvalidCredentials
	}
	acc := s.accounts[id]
	if !utils.EqualHash(acc.passwordHash, utils.HashString(creds.Password, s.passwordKey)) {
		return models.APIUser{}, ErrInvalidCredentials
	}
	return s.apiUserLocked(acc), nil
}

// Account returns the account with id userID.
func (s *Sandbox) Account(userID string) (models.APIUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return models.APIUser{}, ErrNotFound
	}
	return s.apiUserLocked(acc), nil
}

// UpdateAccount changes the name and bio. Nil leaves a field as is.
func (s *Sandbox) UpdateAccount(userID string, fullName, bio *string) (models.APIUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return models.APIUser{}, ErrNotFound
	}
	if fullName != nil {
		name := strings.TrimSpace(*fullName)
		if name == "" {
			return models.APIUser{}, fieldError("fullName", msgRequired)
		}
		acc.fullName = name
	}
	if bio != nil {
		acc.bio = *bio
	}
	return s.apiUserLocked(acc), nil
}

func (s *Sandbox) apiUserLocked(acc *account) models.APIUser {
	u := models.APIUser{
		ID:               acc.id,
		Email:            acc.email,
		FullName:         acc.fullName,
		Bio:              acc.bio,
		SubscriptionTier: models.TierBasic,
		StorageUsed:      ptr(s.storageUsedByLocked(acc.id)),
	}
	if acc.activeVaultID != "" {
		u.ActiveVaultID = ptr(acc.activeVaultID)
		if m := s.membershipLocked(acc.id, acc.activeVaultID); m != nil {
			u.Role = string(m.role)
		}
	}
	return u
}

func (s *Sandbox) storageUsedByLocked(userID string) int64 {
	var total int64
	for _, item := range s.media {
		if item.uploaderID != userID {
			continue
		}
		for _, id := range item.fileIDs {
			total += int64(len(s.files[id].content))
		}
	}
	return total
}

func lastName(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) < 2 {
		return ""
	}
	return fields[len(fields)-1]
}
