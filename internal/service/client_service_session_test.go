// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/legacy-keeper/internal/crypto"
	"github.com/MKhiriev/legacy-keeper/internal/logger"
	"github.com/MKhiriev/legacy-keeper/internal/mock"
	"github.com/MKhiriev/legacy-keeper/internal/store"
	"github.com/MKhiriev/legacy-keeper/internal/utils"
	"github.com/MKhiriev/legacy-keeper/models"
)

func newTestKeyChain(t *testing.T) crypto.KeyChain {
	t.Helper()
	keys, err := crypto.NewKeyChain("session-test-secret")
	require.NoError(t, err)
	return keys
}

func testAuthResult() models.AuthResult {
	return models.AuthResult{
		User:          models.User{ID: "u1", FullName: "Ada Keeper", Email: "ada@example.com", Role: models.RoleAdmin},
		Tokens:        models.Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"},
		ActiveVaultID: "v1",
	}
}

func TestSessionService_SignIn_PersistsSealedRecord(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemorySessionRepository()
	keys := newTestKeyChain(t)
	svc := NewSessionService(repo, keys, logger.Nop())

	require.NoError(t, svc.SignIn(ctx, testAuthResult()))

	assert.True(t, svc.IsAuthenticated())
	assert.Equal(t, "v1", svc.ActiveVaultID())
	assert.Equal(t, models.Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"}, svc.Tokens())

	blob, err := repo.GetSession(ctx, models.SessionStorageKey)
	require.NoError(t, err)
	assert.NotContains(t, blob, "access-1", "record must be sealed")

	plain, err := keys.Open(blob)
	require.NoError(t, err)
	var stored models.Session
	require.NoError(t, json.Unmarshal(plain, &stored))
	assert.Equal(t, "refresh-1", stored.RefreshToken)
	require.NotNil(t, stored.CurrentUser)
	assert.Equal(t, "u1", stored.CurrentUser.ID)
}

func TestSessionService_Load_RestoresPreviousSession(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemorySessionRepository()
	keys := newTestKeyChain(t)

	first := NewSessionService(repo, keys, logger.Nop())
	require.NoError(t, first.SignIn(ctx, testAuthResult()))

	second := NewSessionService(repo, keys, logger.Nop())
	sess, err := second.Load(ctx)
	require.NoError(t, err)

	assert.True(t, sess.IsAuthenticated)
	assert.True(t, second.IsAuthenticated())
	assert.Equal(t, "v1", second.ActiveVaultID())
}

func TestSessionService_Load_NoRecord(t *testing.T) {
	svc := NewSessionService(store.NewMemorySessionRepository(), newTestKeyChain(t), logger.Nop())

	sess, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Session{}, sess)
	assert.False(t, svc.IsAuthenticated())
}

func TestSessionService_Load_UnreadableRecordIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	repo := mock.NewMockSessionRepository(ctrl)
	keys := mock.NewMockKeyChain(ctrl)

	gomock.InOrder(
		repo.EXPECT().GetSession(ctx, models.SessionStorageKey).Return("garbage", nil),
		keys.EXPECT().Open("garbage").Return(nil, crypto.ErrSealedDataCorrupted),
		repo.EXPECT().DeleteSession(ctx, models.SessionStorageKey).Return(nil),
	)

	svc := NewSessionService(repo, keys, logger.Nop())
	sess, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.False(t, sess.IsAuthenticated)
}

func TestSessionService_Load_RecordWithoutTokenIsAnonymous(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemorySessionRepository()
	keys := newTestKeyChain(t)

	plain, err := json.Marshal(models.Session{
		CurrentUser:     &models.User{ID: "u1"},
		IsAuthenticated: true,
	})
	require.NoError(t, err)
	blob, err := keys.Seal(plain)
	require.NoError(t, err)
	require.NoError(t, repo.SaveSession(ctx, models.SessionStorageKey, blob))

	svc := NewSessionService(repo, keys, logger.Nop())
	sess, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess.CurrentUser)
	assert.False(t, svc.IsAuthenticated())
}

func TestSessionService_Load_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	repo := mock.NewMockSessionRepository(ctrl)
	repo.EXPECT().GetSession(ctx, models.SessionStorageKey).Return("", errors.New("disk gone"))

	svc := NewSessionService(repo, mock.NewMockKeyChain(ctrl), logger.Nop())
	_, err := svc.Load(ctx)
	assert.Error(t, err)
}

func TestSessionService_RotateTokens_KeepsRefreshWhenEmpty(t *testing.T) {
	ctx := context.Background()
	svc := NewSessionService(store.NewMemorySessionRepository(), newTestKeyChain(t), logger.Nop())
	require.NoError(t, svc.SignIn(ctx, testAuthResult()))

	require.NoError(t, svc.RotateTokens(ctx, models.Tokens{AccessToken: "access-2"}))
	assert.Equal(t, models.Tokens{AccessToken: "access-2", RefreshToken: "refresh-1"}, svc.Tokens())

	require.NoError(t, svc.RotateTokens(ctx, models.Tokens{AccessToken: "access-3", RefreshToken: "refresh-3"}))
	assert.Equal(t, models.Tokens{AccessToken: "access-3", RefreshToken: "refresh-3"}, svc.Tokens())
}

func TestSessionService_Logout_ClearsAndRunsHooks(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemorySessionRepository()
	svc := NewSessionService(repo, newTestKeyChain(t), logger.Nop())
	require.NoError(t, svc.SignIn(ctx, testAuthResult()))

	calls := 0
	svc.OnLogout(func() { calls++ })
	svc.OnLogout(func() { calls++ })

	require.NoError(t, svc.Logout(ctx))

	assert.Equal(t, 2, calls)
	assert.False(t, svc.IsAuthenticated())
	assert.Equal(t, models.Tokens{}, svc.Tokens())
	_, err := repo.GetSession(ctx, models.SessionStorageKey)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestSessionService_ForceLogout_SwallowsRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	repo := mock.NewMockSessionRepository(ctrl)
	repo.EXPECT().DeleteSession(ctx, models.SessionStorageKey).Return(errors.New("locked"))

	svc := NewSessionService(repo, mock.NewMockKeyChain(ctrl), logger.Nop())
	hooked := false
	svc.OnLogout(func() { hooked = true })

	svc.ForceLogout(ctx)
	assert.True(t, hooked, "hooks run even when the record cannot be deleted")
}

func TestSessionService_Session_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	svc := NewSessionService(store.NewMemorySessionRepository(), newTestKeyChain(t), logger.Nop())
	require.NoError(t, svc.SignIn(ctx, testAuthResult()))

	sess := svc.Session()
	sess.CurrentUser.FullName = "changed"

	assert.Equal(t, "Ada Keeper", svc.Session().CurrentUser.FullName)
}

func TestSessionService_AccessTokenExpiry(t *testing.T) {
	ctx := context.Background()
	svc := NewSessionService(store.NewMemorySessionRepository(), newTestKeyChain(t), logger.Nop())

	_, ok := svc.AccessTokenExpiry()
	assert.False(t, ok, "no token")

	token, err := utils.GenerateJWTToken("sandbox", "u1", models.AccessTokenKind, time.Hour, "k")
	require.NoError(t, err)
	res := testAuthResult()
	res.Tokens.AccessToken = token.SignedString
	require.NoError(t, svc.SignIn(ctx, res))

	exp, ok := svc.AccessTokenExpiry()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	require.NoError(t, svc.RotateTokens(ctx, models.Tokens{AccessToken: "not-a-jwt"}))
	_, ok = svc.AccessTokenExpiry()
	assert.False(t, ok)
}
