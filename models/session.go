// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionStorageKey is the versioned key under which the session record is
// persisted. Bump the suffix when the record shape changes.
const SessionStorageKey = "legacy_keeper_auth_v4"

// Session is the only client state that survives restarts.
type Session struct {
	CurrentUser     *User  `json:"currentUser"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	AccessToken     string `json:"accessToken,omitempty"`
	RefreshToken    string `json:"refreshToken,omitempty"`
	ActiveVaultID   string `json:"activeVaultId,omitempty"`
}

// Tokens is an access/refresh pair. An empty RefreshToken means "keep the
// current one".
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

// AuthResult is returned by a successful login.
type AuthResult struct {
	User          User
	Tokens        Tokens
	ActiveVaultID string
}

// Credentials are the email/password pair used to log in.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the payload of a sign-up request.
type Registration struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FullName  string `json:"fullName"`
	JoinToken string `json:"joinToken,omitempty"`
}
