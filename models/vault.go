// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StorageQuality is the upload quality setting of a vault.
type StorageQuality string

const (
	QualityBalanced StorageQuality = "balanced"
	QualityHigh     StorageQuality = "high"
	QualityOriginal StorageQuality = "original"
)

// VaultSummary is a vault as listed for the current user.
type VaultSummary struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	FamilyName          string         `json:"familyName"`
	Description         string         `json:"description"`
	SafetyWindowMinutes int            `json:"safetyWindowMinutes"`
	StorageQuality      StorageQuality `json:"storageQuality"`
	DefaultVisibility   Visibility     `json:"defaultVisibility"`
	StorageUsedBytes    int64          `json:"storageUsedBytes"`
	MemberCount         int            `json:"memberCount"`
	MyRole              *UserRole      `json:"myRole"`
	IsOwner             bool           `json:"isOwner"`
}

// VaultRequest creates or updates a vault. Nil fields are not sent.
type VaultRequest struct {
	Name                *string
	FamilyName          *string
	Description         *string
	SafetyWindowMinutes *int
	StorageQuality      *StorageQuality
	DefaultVisibility   *Visibility
	CoverPhoto          *UploadFile
	CoverPhotoURL       *string
}

// VaultHealthItem is one media item inside a duplicate group.
type VaultHealthItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	FileSize  int64     `json:"fileSize"`
	CreatedAt time.Time `json:"createdAt"`
	FileURL   string    `json:"fileUrl,omitempty"`
}

// VaultHealthGroup is a set of byte-identical uploads.
type VaultHealthGroup struct {
	Hash             string            `json:"hash"`
	ReclaimableBytes int64             `json:"reclaimableBytes"`
	DuplicateCount   int               `json:"duplicateCount"`
	Primary          VaultHealthItem   `json:"primary"`
	Duplicates       []VaultHealthItem `json:"duplicates"`
}

// VaultHealthReport is the duplicate analysis of a vault.
type VaultHealthReport struct {
	VaultID              string             `json:"vaultId"`
	GeneratedAt          time.Time          `json:"generatedAt"`
	TotalItems           int                `json:"totalItems"`
	DuplicateGroupsCount int                `json:"duplicateGroupsCount"`
	DuplicateItemsCount  int                `json:"duplicateItemsCount"`
	ReclaimableBytes     int64              `json:"reclaimableBytes"`
	Groups               []VaultHealthGroup `json:"groups"`
}

// VaultCleanupRequest selects duplicate groups to merge.
type VaultCleanupRequest struct {
	GroupHashes []string `json:"groupHashes,omitempty"`
	DryRun      bool     `json:"dryRun"`
}

// VaultCleanupResult is the outcome (or preview) of a cleanup.
type VaultCleanupResult struct {
	DryRun                   bool               `json:"dryRun"`
	GroupsSelected           int                `json:"groupsSelected,omitempty"`
	GroupsProcessed          int                `json:"groupsProcessed,omitempty"`
	DuplicateItemsCount      int                `json:"duplicateItemsCount,omitempty"`
	DeletedItemsCount        int                `json:"deletedItemsCount,omitempty"`
	ReclaimableBytes         int64              `json:"reclaimableBytes,omitempty"`
	RecoveredBytes           int64              `json:"recoveredBytes,omitempty"`
	RemainingDuplicateGroups int                `json:"remainingDuplicateGroups,omitempty"`
	Message                  string             `json:"message,omitempty"`
	Groups                   []VaultHealthGroup `json:"groups,omitempty"`
}
