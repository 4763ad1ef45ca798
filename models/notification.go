// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// NotificationType groups in-app notifications.
type NotificationType string

const (
	NotificationUpload   NotificationType = "upload"
	NotificationComment  NotificationType = "comment"
	NotificationSecurity NotificationType = "security"
	NotificationTree     NotificationType = "tree"
	NotificationMember   NotificationType = "member"
	NotificationSystem   NotificationType = "system"
)

// ParseNotificationType normalizes a wire value; unknown values are "system".
func ParseNotificationType(value string) NotificationType {
	switch t := NotificationType(strings.ToLower(strings.TrimSpace(value))); t {
	case NotificationUpload, NotificationComment, NotificationSecurity, NotificationTree, NotificationMember:
		return t
	default:
		return NotificationSystem
	}
}

// Notification is one in-app notification.
type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
	Route     string           `json:"route"`
	ActorName string           `json:"actorName,omitempty"`
	VaultID   string           `json:"vaultId,omitempty"`
	Metadata  map[string]any   `json:"metadata,omitempty"`
}

// NotificationFeed is one response of the notifications endpoint.
type NotificationFeed struct {
	Items       []Notification
	UnreadCount int
	ServerTime  time.Time
}

// NotificationPreferences are the per-user notification switches.
type NotificationPreferences struct {
	InAppEnabled   bool `json:"inAppEnabled"`
	PushEnabled    bool `json:"pushEnabled"`
	NewUploads     bool `json:"newUploads"`
	Comments       bool `json:"comments"`
	TreeUpdates    bool `json:"treeUpdates"`
	SecurityAlerts bool `json:"securityAlerts"`
	MemberJoins    bool `json:"memberJoins"`
	PushAvailable  bool `json:"pushAvailable"`
}

// NotificationPreferencesUpdate is a partial update; nil fields are not sent.
// PushAvailable is server-controlled and cannot be updated.
type NotificationPreferencesUpdate struct {
	InAppEnabled   *bool `json:"inAppEnabled,omitempty"`
	PushEnabled    *bool `json:"pushEnabled,omitempty"`
	NewUploads     *bool `json:"newUploads,omitempty"`
	Comments       *bool `json:"comments,omitempty"`
	TreeUpdates    *bool `json:"treeUpdates,omitempty"`
	SecurityAlerts *bool `json:"securityAlerts,omitempty"`
	MemberJoins    *bool `json:"memberJoins,omitempty"`
}
