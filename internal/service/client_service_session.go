package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/legacy-keeper/internal/crypto"
	"github.com/MKhiriev/legacy-keeper/internal/logger"
	"github.com/MKhiriev/legacy-keeper/internal/store"
	"github.com/MKhiriev/legacy-keeper/internal/utils"
	"github.com/MKhiriev/legacy-keeper/models"
)

type sessionService struct {
	repo   store.SessionRepository
	keys   crypto.KeyChain
	logger *logger.Logger

	mu       sync.RWMutex
	session  models.Session
	onLogout []func()
}

// NewSessionService keeps the session record in memory and persists every
// change to repo, sealed with keys.
func NewSessionService(repo store.SessionRepository, keys crypto.KeyChain, log *logger.Logger) SessionService {
	return &sessionService{repo: repo, keys: keys, logger: log}
}

func (s *sessionService) Load(ctx context.Context) (models.Session, error) {
	blob, err := s.repo.GetSession(ctx, models.SessionStorageKey)
	if errors.Is(err, store.ErrSessionNotFound) {
		return s.replace(models.Session{}), nil
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("error loading session: %w", err)
	}

	var sess models.Session
	plain, err := s.keys.Open(blob)
	if err == nil {
		err = json.Unmarshal(plain, &sess)
	}
	if err != nil {
		// another secret or an older record shape; start over
		s.logger.Warn().Err(err).Str("func", "sessionService.Load").Msg("dropping unreadable session record")
		if delErr := s.repo.DeleteSession(ctx, models.SessionStorageKey); delErr != nil {
			s.logger.Err(delErr).Str("func", "sessionService.Load").Msg("error deleting session record")
		}
		return s.replace(models.Session{}), nil
	}

	if sess.AccessToken == "" {
		sess = models.Session{}
	}
	sess.IsAuthenticated = sess.AccessToken != "" && sess.CurrentUser != nil
	return s.replace(sess), nil
}

func (s *sessionService) replace(sess models.Session) models.Session {
	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()
	return sess
}

func (s *sessionService) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess := s.session
	if sess.CurrentUser != nil {
		user := *sess.CurrentUser
		sess.CurrentUser = &user
	}
	return sess
}

func (s *sessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.IsAuthenticated
}

func (s *sessionService) ActiveVaultID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.ActiveVaultID
}

func (s *sessionService) Tokens() models.Tokens {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Tokens{AccessToken: s.session.AccessToken, RefreshToken: s.session.RefreshToken}
}

func (s *sessionService) RotateTokens(ctx context.Context, tokens models.Tokens) error {
	return s.update(ctx, func(sess *models.Session) {
		sess.AccessToken = tokens.AccessToken
		if tokens.RefreshToken != "" {
			sess.RefreshToken = tokens.RefreshToken
		}
	})
}

func (s *sessionService) ForceLogout(ctx context.Context) {
	if err := s.Logout(ctx); err != nil {
		s.logger.Err(err).Str("func", "sessionService.ForceLogout").Msg("error clearing session")
	}
}

func (s *sessionService) SignIn(ctx context.Context, res models.AuthResult) error {
	user := res.User
	return s.update(ctx, func(sess *models.Session) {
		*sess = models.Session{
			CurrentUser:     &user,
			IsAuthenticated: true,
			AccessToken:     res.Tokens.AccessToken,
			RefreshToken:    res.Tokens.RefreshToken,
			ActiveVaultID:   res.ActiveVaultID,
		}
	})
}

func (s *sessionService) SetCurrentUser(ctx context.Context, user models.User) error {
	return s.update(ctx, func(sess *models.Session) {
		sess.CurrentUser = &user
	})
}

func (s *sessionService) SetActiveVault(ctx context.Context, vaultID string) error {
	return s.update(ctx, func(sess *models.Session) {
		sess.ActiveVaultID = vaultID
	})
}

func (s *sessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.session = models.Session{}
	hooks := append([]func(){}, s.onLogout...)
	s.mu.Unlock()

	err := s.repo.DeleteSession(ctx, models.SessionStorageKey)
	for _, fn := range hooks {
		fn()
	}
	if err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

func (s *sessionService) AccessTokenExpiry() (time.Time, bool) {
	access := s.Tokens().AccessToken
	if access == "" {
		return time.Time{}, false
	}
	token, err := utils.ParseUnverified(access)
	if err != nil || token.ExpiresAt == nil {
		return time.Time{}, false
	}
	return token.ExpiresAt.Time, true
}

func (s *sessionService) OnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = append(s.onLogout, fn)
}

// update applies fn to the record and persists the result. The in-memory
// record changes even when persisting fails.
func (s *sessionService) update(ctx context.Context, fn func(*models.Session)) error {
	s.mu.Lock()
	fn(&s.session)
	snapshot := s.session
	s.mu.Unlock()

	return s.persist(ctx, snapshot)
}

func (s *sessionService) persist(ctx context.Context, sess models.Session) error {
	plain, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}
	blob, err := s.keys.Seal(plain)
	if err != nil {
		return fmt.Errorf("error sealing session: %w", err)
	}
	if err = s.repo.SaveSession(ctx, models.SessionStorageKey, blob); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	return nil
}
