// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the remote data gateway of the legacy-keeper client: one
// method per REST operation, mapping wire payloads onto domain models.
//
// The HTTP implementation ([NewHTTPServerAdapter]) roots every path at a base
// URL ending in a slash, sends the access token held by a [TokenStore] and
// recovers a 401 by refreshing the token once. Concurrent refreshes share one
// request; a failed refresh logs the session out.
//
// Non-2xx responses are returned as *[APIError], which unwraps to the status
// sentinels in errors.go so callers can match them with [errors.Is].
// [ErrorMessage] extracts the text to show for any error.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/legacy-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// TokenStore holds the token pair the gateway authenticates with. The
// session service implements it.
type TokenStore interface {
	// Tokens returns the current pair. Empty values mean "not logged in".
	Tokens() models.Tokens

	// RotateTokens stores a refreshed pair. An empty RefreshToken keeps the
	// current one.
	RotateTokens(ctx context.Context, tokens models.Tokens) error

	// ForceLogout drops the session after an unrecoverable 401.
	ForceLogout(ctx context.Context)
}

// AuthAPI covers the account endpoints.
type AuthAPI interface {
	Login(ctx context.Context, creds models.Credentials) (models.AuthResult, error)
	Register(ctx context.Context, reg models.Registration) (models.User, error)
	Me(ctx context.Context) (models.User, error)
	UpdateMe(ctx context.Context, upd models.UserUpdate) (models.User, error)
}

// MediaAPI covers media items of a vault.
type MediaAPI interface {
	ListMedia(ctx context.Context, vaultID string, params models.MediaQueryParams, page, pageSize int) (models.Page[models.MediaItem], error)
	ListFavoriteMedia(ctx context.Context, vaultID string, params models.MediaQueryParams, page, pageSize int) (models.Page[models.MediaItem], error)
	MediaFilters(ctx context.Context, vaultID string, params models.MediaQueryParams) (models.MediaFilterSummary, error)
	GetMedia(ctx context.Context, mediaID string) (models.MediaItem, error)

	// UploadMedia creates one item from 1 to models.MaxUploadFiles files.
	UploadMedia(ctx context.Context, vaultID string, req models.UploadMediaRequest) (models.MediaItem, error)

	// UpdateMedia sends a JSON patch, or a multipart one when files are
	// added or removed.
	UpdateMedia(ctx context.Context, req models.UpdateMediaRequest) (models.MediaItem, error)
	DeleteMedia(ctx context.Context, mediaID string) error
	ToggleFavorite(ctx context.Context, mediaID string, isFavorite bool) (models.FavoriteState, error)

	// DownloadFile copies the file at fileURL, absolute or relative to the
	// base URL, into w.
	DownloadFile(ctx context.Context, fileURL string, w io.Writer) (int64, error)
}

// MembersAPI covers vault memberships.
type MembersAPI interface {
	ListMembers(ctx context.Context, vaultID string, params models.MembersQueryParams, page, pageSize int) (models.Page[models.FamilyMember], error)
	RemoveMember(ctx context.Context, vaultID, membershipID string) error
	UpdateMemberRole(ctx context.Context, vaultID, membershipID string, role models.UserRole) (models.FamilyMember, error)
	InviteMember(ctx context.Context, vaultID string, req models.InviteMemberRequest) (models.InviteMemberResult, error)
	JoinVault(ctx context.Context, token string) (models.JoinVaultResult, error)
	LeaveVault(ctx context.Context, vaultID string) (models.MessageResult, error)
	TransferOwnership(ctx context.Context, vaultID string, req models.TransferOwnershipRequest) (models.MessageResult, error)
}

// InvitesAPI covers shareable invite links. The server owns their state;
// the client only requests transitions.
type InvitesAPI interface {
	ListShareableInvites(ctx context.Context, vaultID string, params models.InvitesQueryParams) (models.Page[models.ShareableInvite], error)
	CreateShareableInvite(ctx context.Context, vaultID string, req models.CreateShareableInviteRequest) (models.ShareableInvite, error)
	RevokeShareableInvite(ctx context.Context, inviteID string) (models.MessageResult, error)
	DeleteShareableInvite(ctx context.Context, inviteID string) error
}

// GenealogyAPI covers profiles, relationships, the tree and media tags.
type GenealogyAPI interface {
	ListProfiles(ctx context.Context, vaultID string, params models.ProfilesQueryParams, page, pageSize int) (models.Page[models.PersonProfile], error)
	GetProfile(ctx context.Context, profileID string) (models.PersonProfile, error)
	CreateProfile(ctx context.Context, req models.ProfileRequest) (models.PersonProfile, error)
	UpdateProfile(ctx context.Context, profileID string, req models.ProfileRequest) (models.PersonProfile, error)
	DeleteProfile(ctx context.Context, profileID string) error

	ListRelationships(ctx context.Context, vaultID string) ([]models.Relationship, error)
	CreateRelationship(ctx context.Context, req models.CreateRelationshipRequest) (models.Relationship, error)
	DeleteRelationship(ctx context.Context, relationshipID string) error

	TreeData(ctx context.Context, vaultID string) (models.TreeData, error)

	ListMediaTags(ctx context.Context, mediaID string) ([]models.MediaTag, error)
	CreateMediaTag(ctx context.Context, req models.CreateMediaTagRequest) (models.MediaTag, error)
	DeleteMediaTag(ctx context.Context, tagID string) error
}

// AuditAPI covers the audit trail.
type AuditAPI interface {
	ListAuditLogs(ctx context.Context, vaultID string, params models.AuditLogsQueryParams, page, pageSize int) (models.Page[models.AuditLog], error)

	// ExportAuditLogs writes the export into w and returns the file name
	// suggested by the server.
	ExportAuditLogs(ctx context.Context, vaultID string, params models.AuditLogsQueryParams, w io.Writer) (string, error)
}

// VaultsAPI covers vaults and their maintenance.
type VaultsAPI interface {
	ListVaults(ctx context.Context) ([]models.VaultSummary, error)
	GetVault(ctx context.Context, vaultID string) (models.VaultSummary, error)
	CreateVault(ctx context.Context, req models.VaultRequest) (models.VaultSummary, error)
	UpdateVault(ctx context.Context, vaultID string, req models.VaultRequest) (models.VaultSummary, error)
	HealthAnalysis(ctx context.Context, vaultID string) (models.VaultHealthReport, error)
	CleanupRedundant(ctx context.Context, vaultID string, req models.VaultCleanupRequest) (models.VaultCleanupResult, error)
}

// NotificationsAPI covers in-app notifications.
type NotificationsAPI interface {
	ListNotifications(ctx context.Context, params models.NotificationsQueryParams) (models.NotificationFeed, error)
	DismissNotification(ctx context.Context, notificationID string) error
	ClearNotifications(ctx context.Context) error
	MarkNotificationRead(ctx context.Context, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context) error
	NotificationPreferences(ctx context.Context) (models.NotificationPreferences, error)
	UpdateNotificationPreferences(ctx context.Context, upd models.NotificationPreferencesUpdate) (models.NotificationPreferences, error)
}

// ServerAdapter is the whole gateway.
type ServerAdapter interface {
	AuthAPI
	MediaAPI
	MembersAPI
	InvitesAPI
	GenealogyAPI
	AuditAPI
	VaultsAPI
	NotificationsAPI
}
