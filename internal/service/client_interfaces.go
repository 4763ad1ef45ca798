// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client services of legacy-keeper. Each service
// turns a user intent into cache queries and mutations on a shared
// *query.Client and reports the outcome of every mutation to a Notifier.
//
// Vault-scoped services read the vault to work in from a VaultScope, the
// session service in production. Without an active vault they return
// ErrNoActiveVault and never reach the gateway.
package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/legacy-keeper/internal/adapter"
	"github.com/MKhiriev/legacy-keeper/internal/query"
	"github.com/MKhiriev/legacy-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// Notifier surfaces the outcome of user-initiated mutations.
type Notifier interface {
	Success(title, message string)
	Error(title, message string)
}

// VaultScope yields the vault listings and mutations are scoped to.
type VaultScope interface {
	ActiveVaultID() string
}

// SessionService owns the persisted session record. It is the TokenStore of
// the gateway.
type SessionService interface {
	adapter.TokenStore
	VaultScope

	// Load restores the record persisted under models.SessionStorageKey. A
	// missing or unreadable record yields a logged-out session.
	Load(ctx context.Context) (models.Session, error)

	Session() models.Session
	IsAuthenticated() bool

	// SignIn stores the result of a login and persists it.
	SignIn(ctx context.Context, res models.AuthResult) error
	SetCurrentUser(ctx context.Context, user models.User) error
	SetActiveVault(ctx context.Context, vaultID string) error

	// Logout clears the record and runs the OnLogout hooks.
	Logout(ctx context.Context) error

	// AccessTokenExpiry reads the exp claim of the access token without
	// verifying it.
	AccessTokenExpiry() (time.Time, bool)
	OnLogout(fn func())
}

// ClientAuthService signs users in and out and edits the account.
type ClientAuthService interface {
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	Register(ctx context.Context, reg models.Registration) (models.User, error)
	Me(ctx context.Context) (models.User, error)
	UpdateMe(ctx context.Context, upd models.UserUpdate) (models.User, error)
	Logout(ctx context.Context) error
}

// ClientMediaService lists and edits the media of the active vault.
type ClientMediaService interface {
	List(ctx context.Context, params models.MediaQueryParams) (query.InfiniteData[models.MediaItem], error)
	NextPage(ctx context.Context, params models.MediaQueryParams) (query.InfiniteData[models.MediaItem], error)
	Favorites(ctx context.Context, params models.MediaQueryParams) (query.InfiniteData[models.MediaItem], error)
	NextFavoritesPage(ctx context.Context, params models.MediaQueryParams) (query.InfiniteData[models.MediaItem], error)
	Filters(ctx context.Context, params models.MediaQueryParams) (models.MediaFilterSummary, error)
	Get(ctx context.Context, mediaID string) (models.MediaItem, error)

	Upload(ctx context.Context, req models.UploadMediaRequest) (models.MediaItem, error)
	Update(ctx context.Context, req models.UpdateMediaRequest) (models.MediaItem, error)

	// ToggleFavorite flags the item in every cached listing before the
	// server answers and restores the listings if it refuses.
	ToggleFavorite(ctx context.Context, mediaID string, isFavorite bool) (models.FavoriteState, error)

	// Delete removes the item from every cached listing before the server
	// answers and restores the listings if it refuses.
	Delete(ctx context.Context, mediaID string) error

	// BulkDelete deletes ids independently. It returns the ids that were
	// deleted; a partial failure also returns a *BulkDeleteError.
	BulkDelete(ctx context.Context, ids []string) ([]string, error)

	Download(ctx context.Context, item models.MediaItem, w io.Writer) (int64, error)
}

// ClientMembersService manages the memberships of the active vault.
type ClientMembersService interface {
	List(ctx context.Context, params models.MembersQueryParams) (query.InfiniteData[models.FamilyMember], error)
	NextPage(ctx context.Context, params models.MembersQueryParams) (query.InfiniteData[models.FamilyMember], error)
	Invite(ctx context.Context, req models.InviteMemberRequest) (models.InviteMemberResult, error)
	Remove(ctx context.Context, membershipID string) error
	UpdateRole(ctx context.Context, membershipID string, role models.UserRole) (models.FamilyMember, error)

	// Leave leaves vaultID. Leaving the active vault ends the session.
	Leave(ctx context.Context, vaultID string) (models.MessageResult, error)
	TransferOwnership(ctx context.Context, req models.TransferOwnershipRequest) (models.MessageResult, error)
	Join(ctx context.Context, token string) (models.JoinVaultResult, error)
}

// ClientInvitesService manages shareable invite links of the active vault.
type ClientInvitesService interface {
	List(ctx context.Context, params models.InvitesQueryParams) (models.Page[models.ShareableInvite], error)
	Create(ctx context.Context, req models.CreateShareableInviteRequest) (models.ShareableInvite, error)
	Revoke(ctx context.Context, inviteID string) (models.MessageResult, error)
	Delete(ctx context.Context, inviteID string) error
}

// ClientGenealogyService manages the family tree of the active vault.
type ClientGenealogyService interface {
	Profiles(ctx context.Context, params models.ProfilesQueryParams) (query.InfiniteData[models.PersonProfile], error)
	NextProfilesPage(ctx context.Context, params models.ProfilesQueryParams) (query.InfiniteData[models.PersonProfile], error)
	Profile(ctx context.Context, profileID string) (models.PersonProfile, error)
	CreateProfile(ctx context.Context, req models.ProfileRequest) (models.PersonProfile, error)
	UpdateProfile(ctx context.Context, profileID string, req models.ProfileRequest) (models.PersonProfile, error)
	DeleteProfile(ctx context.Context, profileID string) error

	Relationships(ctx context.Context) ([]models.Relationship, error)
	CreateRelationship(ctx context.Context, req models.CreateRelationshipRequest) (models.Relationship, error)
	DeleteRelationship(ctx context.Context, relationshipID string) error

	TreeData(ctx context.Context) (models.TreeData, error)

	MediaTags(ctx context.Context, mediaID string) ([]models.MediaTag, error)
	CreateMediaTag(ctx context.Context, req models.CreateMediaTagRequest) (models.MediaTag, error)
	DeleteMediaTag(ctx context.Context, mediaID, tagID string) error
}

// ClientAuditService reads the audit trail of the active vault.
type ClientAuditService interface {
	Logs(ctx context.Context, params models.AuditLogsQueryParams) (query.InfiniteData[models.AuditLog], error)
	NextLogsPage(ctx context.Context, params models.AuditLogsQueryParams) (query.InfiniteData[models.AuditLog], error)

	// Export writes the export into w and returns the server file name.
	Export(ctx context.Context, params models.AuditLogsQueryParams, w io.Writer) (string, error)
}

// ClientVaultsService manages the vaults of the user.
type ClientVaultsService interface {
	List(ctx context.Context) ([]models.VaultSummary, error)
	Get(ctx context.Context, vaultID string) (models.VaultSummary, error)
	Create(ctx context.Context, req models.VaultRequest) (models.VaultSummary, error)
	Update(ctx context.Context, vaultID string, req models.VaultRequest) (models.VaultSummary, error)
	HealthAnalysis(ctx context.Context, vaultID string) (models.VaultHealthReport, error)
	Cleanup(ctx context.Context, vaultID string, req models.VaultCleanupRequest) (models.VaultCleanupResult, error)
}

// NotificationCenter keeps the in-app notification list of the session.
type NotificationCenter interface {
	// Poll merges notifications newer than the latest known one. It is a
	// no-op while the client is not visible or another poll is running.
	// Failures are logged and retried on the next poll.
	Poll(ctx context.Context)

	// Refresh replaces the list with the latest notifications.
	Refresh(ctx context.Context) error

	Notifications() []models.Notification
	UnreadCount() int

	Dismiss(ctx context.Context, notificationID string) error
	Clear(ctx context.Context) error
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context) error

	Preferences(ctx context.Context) (models.NotificationPreferences, error)
	UpdatePreferences(ctx context.Context, upd models.NotificationPreferencesUpdate) (models.NotificationPreferences, error)

	// Reset forgets every notification, as on logout.
	Reset()
}

// NotificationPollJob polls a NotificationCenter on a ticker.
type NotificationPollJob interface {
	// Start launches the polling goroutine, stopping a previous one first.
	// A non-positive interval means DefaultPollInterval.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the goroutine and waits for it to exit.
	Stop()
}
