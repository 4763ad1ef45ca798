// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserRole is the role a user holds inside a vault.
type UserRole string

const (
	RoleAdmin       UserRole = "ADMIN"
	RoleContributor UserRole = "CONTRIBUTOR"
	RoleViewer      UserRole = "VIEWER"
)

// ParseUserRole maps a wire value onto a known role. Anything unknown,
// including an empty value, degrades to RoleViewer.
func ParseUserRole(value string) UserRole {
	switch UserRole(value) {
	case RoleAdmin, RoleContributor, RoleViewer:
		return UserRole(value)
	default:
		return RoleViewer
	}
}

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleContributor, RoleViewer:
		return true
	}
	return false
}

// SubscriptionTier is the storage plan of an account.
type SubscriptionTier string

const (
	TierBasic    SubscriptionTier = "BASIC"
	TierHeritage SubscriptionTier = "HERITAGE"
	TierDynasty  SubscriptionTier = "DYNASTY"
)

// StorageLimitsGB is the storage quota per tier, in gigabytes.
var StorageLimitsGB = map[SubscriptionTier]int{
	TierBasic:    10,
	TierHeritage: 50,
	TierDynasty:  500,
}

// User is the authenticated account as the client sees it.
type User struct {
	ID               string           `json:"id"`
	FullName         string           `json:"fullName"`
	Email            string           `json:"email"`
	Bio              string           `json:"bio,omitempty"`
	Role             UserRole         `json:"role"`
	ProfilePhoto     string           `json:"profilePhoto,omitempty"`
	SubscriptionTier SubscriptionTier `json:"subscriptionTier"`
	StorageUsed      int64            `json:"storageUsed"`
}

// UserUpdate is a partial update applied to the current user. Nil fields are
// left untouched.
type UserUpdate struct {
	FullName         *string
	Bio              *string
	ProfilePhoto     *string
	SubscriptionTier *SubscriptionTier

	// Avatar is uploaded with the update; ProfilePhoto and SubscriptionTier
	// are local only.
	Avatar *UploadFile
}

// Apply returns a copy of u with the non-nil fields of upd applied.
func (upd UserUpdate) Apply(u User) User {
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.ProfilePhoto != nil {
		u.ProfilePhoto = *upd.ProfilePhoto
	}
	if upd.SubscriptionTier != nil {
		u.SubscriptionTier = *upd.SubscriptionTier
	}
	return u
}
