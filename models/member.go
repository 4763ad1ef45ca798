// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MemberStatus is the membership state of a vault member.
type MemberStatus string

const (
	MemberActive  MemberStatus = "ACTIVE"
	MemberPending MemberStatus = "PENDING"
)

// FamilyMember is a user's membership in a vault.
type FamilyMember struct {
	User
	Status     MemberStatus `json:"status"`
	JoinedDate string       `json:"joinedDate"`
	LastActive string       `json:"lastActive,omitempty"`
}

// InviteMemberRequest invites someone by email.
type InviteMemberRequest struct {
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// InviteMemberResult is the server's answer to an email invite.
type InviteMemberResult struct {
	Message string `json:"message"`
	Link    string `json:"link,omitempty"`
	Token   string `json:"token,omitempty"`
}

// JoinVaultResult is returned after redeeming an invite token.
type JoinVaultResult struct {
	Message       string   `json:"message"`
	VaultID       string   `json:"vaultId,omitempty"`
	VaultName     string   `json:"vaultName,omitempty"`
	Role          UserRole `json:"role,omitempty"`
	AlreadyMember bool     `json:"alreadyMember,omitempty"`
}

// MessageResult is the generic {message} answer of action endpoints.
type MessageResult struct {
	Message string `json:"message"`
	OwnerID string `json:"ownerId,omitempty"`
}

// TransferOwnershipRequest hands a vault over to another member.
type TransferOwnershipRequest struct {
	MembershipID string `json:"membershipId"`
	Password     string `json:"password"`
}
