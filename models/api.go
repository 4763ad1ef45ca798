// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// The API* types mirror the REST payloads one to one. The gateway maps them
// onto the domain types; the sandbox backend renders them directly.

// APIErrorResponse is the structured error payload. Any other keys carry
// field-level validation messages.
type APIErrorResponse map[string]any

// APIUser is the account shape of the auth endpoints.
type APIUser struct {
	ID               string           `json:"id"`
	Email            string           `json:"email"`
	FullName         string           `json:"fullName"`
	Bio              string           `json:"bio,omitempty"`
	Avatar           *string          `json:"avatar,omitempty"`
	Role             string           `json:"role,omitempty"`
	ActiveVaultID    *string          `json:"activeVaultId,omitempty"`
	SubscriptionTier SubscriptionTier `json:"subscriptionTier,omitempty"`
	StorageUsed      *int64           `json:"storageUsed,omitempty"`
}

// APIAuthResponse is returned by login.
type APIAuthResponse struct {
	Access  string  `json:"access"`
	Refresh string  `json:"refresh"`
	User    APIUser `json:"user"`
}

// APIRefreshRequest exchanges a refresh token.
type APIRefreshRequest struct {
	Refresh string `json:"refresh"`
}

// APIRefreshResponse carries the new access token and optionally a rotated
// refresh token.
type APIRefreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// APIUserShort is the user embedded in a membership.
type APIUserShort struct {
	ID       string  `json:"id"`
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Avatar   *string `json:"avatar,omitempty"`
}

// APIMembership is a vault membership.
type APIMembership struct {
	ID        string       `json:"id"`
	User      APIUserShort `json:"user"`
	Role      UserRole     `json:"role"`
	CreatedAt string       `json:"createdAt"`
	IsActive  bool         `json:"isActive"`
}

// APIVault is a vault.
type APIVault struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	FamilyName          string    `json:"familyName,omitempty"`
	Description         string    `json:"description,omitempty"`
	SafetyWindowMinutes *int      `json:"safetyWindowMinutes,omitempty"`
	StorageQuality      string    `json:"storageQuality,omitempty"`
	DefaultVisibility   string    `json:"defaultVisibility,omitempty"`
	StorageUsedBytes    int64     `json:"storageUsedBytes,omitempty"`
	MemberCount         int       `json:"memberCount,omitempty"`
	MyRole              *UserRole `json:"myRole,omitempty"`
	IsOwner             bool      `json:"isOwner,omitempty"`
}

// APIVaultHealthItem, APIVaultHealthGroup and APIVaultHealthReport describe
// a duplicate analysis.
type APIVaultHealthItem struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	FileSize  int64   `json:"fileSize"`
	CreatedAt string  `json:"createdAt"`
	FileURL   *string `json:"fileUrl,omitempty"`
}

type APIVaultHealthGroup struct {
	Hash             string               `json:"hash"`
	ReclaimableBytes int64                `json:"reclaimableBytes"`
	DuplicateCount   int                  `json:"duplicateCount"`
	Primary          APIVaultHealthItem   `json:"primary"`
	Duplicates       []APIVaultHealthItem `json:"duplicates"`
}

type APIVaultHealthReport struct {
	VaultID              string                `json:"vaultId"`
	GeneratedAt          string                `json:"generatedAt"`
	TotalItems           int                   `json:"totalItems"`
	DuplicateGroupsCount int                   `json:"duplicateGroupsCount"`
	DuplicateItemsCount  int                   `json:"duplicateItemsCount"`
	ReclaimableBytes     int64                 `json:"reclaimableBytes"`
	Groups               []APIVaultHealthGroup `json:"groups"`
}

// APIMediaFile is one attachment of a media item.
type APIMediaFile struct {
	ID           string  `json:"id"`
	FileURL      *string `json:"fileUrl,omitempty"`
	FileSize     int64   `json:"fileSize,omitempty"`
	MimeType     string  `json:"mimeType,omitempty"`
	FileType     string  `json:"fileType,omitempty"`
	OriginalName string  `json:"originalName,omitempty"`
	IsPrimary    bool    `json:"isPrimary,omitempty"`
	CreatedAt    string  `json:"createdAt,omitempty"`
}

// APILinkedRelative is a profile linked to a media item.
type APILinkedRelative struct {
	ID       string  `json:"id"`
	FullName *string `json:"fullName,omitempty"`
	PhotoURL *string `json:"photoUrl,omitempty"`
}

// APIMediaItem is a media item.
type APIMediaItem struct {
	ID              string              `json:"id"`
	Vault           string              `json:"vault"`
	Uploader        *string             `json:"uploader,omitempty"`
	UploaderName    *string             `json:"uploaderName,omitempty"`
	UploaderAvatar  *string             `json:"uploaderAvatar,omitempty"`
	LinkedRelatives []APILinkedRelative `json:"linkedRelatives,omitempty"`
	IsFavorite      bool                `json:"isFavorite"`
	MediaType       MediaType           `json:"mediaType"`
	Visibility      string              `json:"visibility,omitempty"`
	Title           string              `json:"title,omitempty"`
	Description     string              `json:"description,omitempty"`
	DateTaken       *string             `json:"dateTaken,omitempty"`
	CreatedAt       string              `json:"createdAt"`
	FileURL         *string             `json:"fileUrl,omitempty"`
	AIStatus        string              `json:"aiStatus,omitempty"`
	Metadata        map[string]any      `json:"metadata,omitempty"`
	Files           []APIMediaFile      `json:"files,omitempty"`
}

// APIFavoriteResponse answers a favorite toggle.
type APIFavoriteResponse struct {
	MediaID    string `json:"mediaId"`
	IsFavorite bool   `json:"isFavorite"`
}

// APIMediaFilterSummary lists filter facets.
type APIMediaFilterSummary struct {
	TotalCount int           `json:"totalCount"`
	People     []FacetOption `json:"people"`
	Tags       []FacetOption `json:"tags"`
	Locations  []FacetOption `json:"locations"`
	Eras       []FacetOption `json:"eras"`
	Types      []FacetOption `json:"types"`
	DateRange  struct {
		Start *string `json:"start"`
		End   *string `json:"end"`
	} `json:"dateRange"`
}

// APIPersonProfile is a genealogy profile.
type APIPersonProfile struct {
	ID           string  `json:"id"`
	Vault        string  `json:"vault"`
	FullName     string  `json:"fullName"`
	MaidenName   *string `json:"maidenName,omitempty"`
	BirthDate    *string `json:"birthDate,omitempty"`
	BirthPlace   *string `json:"birthPlace,omitempty"`
	DeathDate    *string `json:"deathDate,omitempty"`
	IsDeceased   bool    `json:"isDeceased,omitempty"`
	Bio          string  `json:"bio,omitempty"`
	ProfilePhoto *string `json:"profilePhoto,omitempty"`
	PhotoURL     *string `json:"photoUrl,omitempty"`
	LinkedUser   *string `json:"linkedUser,omitempty"`
}

// APIRelationship is a tree edge.
type APIRelationship struct {
	ID               string           `json:"id"`
	FromPerson       string           `json:"fromPerson"`
	ToPerson         string           `json:"toPerson"`
	RelationshipType RelationshipType `json:"relationshipType"`
	FromPersonName   string           `json:"fromPersonName,omitempty"`
	ToPersonName     string           `json:"toPersonName,omitempty"`
}

// APITreeData is the tree endpoint payload.
type APITreeData struct {
	Nodes []APIPersonProfile `json:"nodes"`
	Edges []APIRelationship  `json:"edges"`
	Vault *struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		FamilyName  string `json:"familyName,omitempty"`
		MemberCount int    `json:"memberCount,omitempty"`
	} `json:"vault,omitempty"`
}

// APIMediaTag is a person tag on a media item.
type APIMediaTag struct {
	ID              string             `json:"id"`
	MediaItem       string             `json:"mediaItem"`
	Person          string             `json:"person"`
	PersonName      string             `json:"personName"`
	FaceCoordinates map[string]float64 `json:"faceCoordinates,omitempty"`
	CreatedBy       string             `json:"createdBy,omitempty"`
}

// APIAuditLog is an audit entry. Changes is either a string or an object.
type APIAuditLog struct {
	ID         string          `json:"id"`
	Timestamp  string          `json:"timestamp"`
	ActorName  *string         `json:"actorName,omitempty"`
	Action     string          `json:"action"`
	TargetType string          `json:"targetType,omitempty"`
	Changes    json.RawMessage `json:"changes,omitempty"`
}

// APINotification is an in-app notification.
type APINotification struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Message          string         `json:"message"`
	Type             string         `json:"type,omitempty"`
	NotificationType string         `json:"notificationType,omitempty"`
	IsRead           bool           `json:"isRead"`
	Route            string         `json:"route,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
	VaultID          *string        `json:"vaultId,omitempty"`
	ActorName        string         `json:"actorName,omitempty"`
	CreatedAt        string         `json:"createdAt"`
}

// APINotificationsResponse is the notifications endpoint payload.
type APINotificationsResponse struct {
	Items       []APINotification `json:"items"`
	UnreadCount int               `json:"unreadCount"`
	ServerTime  string            `json:"serverTime"`
}

// APIShareableInvite is a shareable invite link.
type APIShareableInvite struct {
	ID          string   `json:"id"`
	Vault       string   `json:"vault,omitempty"`
	Link        string   `json:"link"`
	Token       string   `json:"token,omitempty"`
	Role        UserRole `json:"role"`
	ExpiresAt   string   `json:"expiresAt"`
	IsRevoked   bool     `json:"isRevoked"`
	IsExpired   bool     `json:"isExpired"`
	JoinedCount int      `json:"joinedCount"`
	CreatedAt   string   `json:"createdAt,omitempty"`
}

// APIShareableInviteEnvelope wraps a created invite.
type APIShareableInviteEnvelope struct {
	Invite APIShareableInvite `json:"invite"`
}

// APIShareableInviteRequest creates a shareable invite.
type APIShareableInviteRequest struct {
	Role      UserRole `json:"role"`
	ExpiresAt string   `json:"expiresAt"`
}
