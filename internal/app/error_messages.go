// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings.
//
// Msg* constants are written into "detail" fields of sandbox API responses.
// The Notice* constants are the titles and messages the client services
// pass to their Notifier, so the CLI and tests see the same wording.
package app

// Sandbox API messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "Invalid data provided."

	// MsgInvalidCredentials is returned when the email/password pair does not
	// match any account.
	MsgInvalidCredentials = "No active account found with the given credentials"

	// MsgEmailAlreadyExists is returned on registration with a taken email.
	MsgEmailAlreadyExists = "A user with this email already exists."

	// MsgInternalServerError is returned when an unexpected failure occurs.
	MsgInternalServerError = "Internal server error."

	// MsgTokenIsExpiredOrInvalid is returned when a bearer or refresh token
	// is expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "Given token not valid for any token type"

	// MsgAuthRequired is returned when a protected route has no bearer token.
	MsgAuthRequired = "Authentication credentials were not provided."

	// MsgAccessDenied is returned when the caller's role does not allow the
	// operation.
	MsgAccessDenied = "You do not have permission to perform this action."

	// MsgNotFound is returned for unknown resources.
	MsgNotFound = "Not found."

	// MsgVaultRequired is returned when a listing is requested without the
	// vault query parameter.
	MsgVaultRequired = "The vault parameter is required."

	// MsgInviteUnavailable is returned when joining through a revoked or
	// expired link.
	MsgInviteUnavailable = "This invite link is no longer valid."

	// MsgOwnerCannotLeave is returned when the vault owner tries to leave.
	MsgOwnerCannotLeave = "The owner must transfer ownership before leaving."

	// MsgWrongPassword is returned when an ownership transfer carries a wrong
	// password.
	MsgWrongPassword = "Password is incorrect."

	// MsgTooManyFiles is returned when an upload carries more files than
	// allowed.
	MsgTooManyFiles = "You can upload up to 10 files at once."

	// MsgFileRequired is returned when an upload carries no file.
	MsgFileRequired = "No file was submitted."
)

// Client notices.
const (
	NoticeDefaultError   = "Please try again."
	NoticeReviewFallback = "Please review your details and try again."

	NoticeWelcomeBack      = "Welcome back."
	NoticeLoginFailed      = "Unable to login."
	NoticeLoginFallback    = "Please verify your credentials and try again."
	NoticeRegistered       = "Registration successful."
	NoticeVerifyEmailFirst = "Please verify your email before logging in."
	NoticeRegisterFailed   = "Unable to create account."
	NoticeSignedOut        = "Signed out."

	NoticeArtifactRemoved      = "Artifact successfully removed from vault"
	NoticeArtifactRemoveFailed = "Failed to delete artifact"
	NoticeBatchPurgeFailed     = "Failed to complete batch purge"
	// NoticeArtifactsRemovedFmt takes the number of removed items.
	NoticeArtifactsRemovedFmt = "%d artifacts removed successfully"

	NoticeMemoryPreserved      = "Memory preserved in vault"
	NoticeMemoryPreserveFailed = "Failed to preserve memory"
	NoticeUploadFallback       = "Please verify file size and details, then try again."
	NoticeMemoryUpdated        = "Memory details updated"
	NoticeMemoryUpdateFailed   = "Failed to update memory"

	NoticeFavoriteFailed = "Failed to update favorite status"
	NoticeDownloaded     = "Download complete"
	NoticeDownloadFailed = "Failed to download file"

	NoticeLinkCreated      = "Shareable link created"
	NoticeLinkCreateFailed = "Failed to create shareable link"
	NoticeLinkRevoked      = "Shareable link revoked"
	NoticeLinkRevokeFailed = "Failed to revoke shareable link"
	NoticeLinkDeleted      = "Shareable link deleted"
	NoticeLinkDeleteFailed = "Failed to delete shareable link"

	NoticeInviteSent         = "Invitation dispatched to circle member"
	NoticeInviteFailed       = "Failed to send invitation"
	NoticeMemberRevoked      = "Member clearance revoked"
	NoticeMemberRemoveFailed = "Failed to remove member"
	NoticeRoleUpdated        = "Member role updated"
	NoticeRoleUpdateFailed   = "Failed to update member role"
	NoticeVaultLeft          = "You have left the vault"
	NoticeLeaveFailed        = "Failed to leave vault"
	NoticeVaultJoined        = "Successfully joined vault"
	NoticeJoinFailed         = "Failed to join vault"
	NoticeOwnershipMoved     = "Vault ownership transferred"
	NoticeOwnershipFailed    = "Failed to transfer ownership"

	NoticeProfileSaved       = "Profile saved"
	NoticeProfileSaveFailed  = "Failed to save profile"
	NoticeProfileDeleted     = "Profile deleted"
	NoticeProfileDeleteFail  = "Failed to delete profile"
	NoticeRelationAdded      = "Relationship added"
	NoticeRelationAddFailed  = "Failed to add relationship"
	NoticeRelationRemoved    = "Relationship removed"
	NoticeRelationRemoveFail = "Failed to remove relationship"
	NoticeTagAdded           = "Person tagged"
	NoticeTagAddFailed       = "Failed to tag person"
	NoticeTagRemoved         = "Tag removed"
	NoticeTagRemoveFailed    = "Failed to remove tag"

	NoticeJoinFallback = "Please check your invitation link and try again."

	NoticeVaultCreated       = "Vault created successfully"
	NoticeVaultCreateFailed  = "Failed to create vault"
	NoticeCleanupPreview     = "Redundancy preview generated"
	NoticeVaultSaved         = "Vault settings saved"
	NoticeVaultSaveFailed    = "Failed to save vault settings"
	NoticeCleanupDone        = "Redundant copies removed"
	NoticeCleanupFailed      = "Failed to clean up duplicates"
	NoticeAuditExported      = "Audit log exported"
	NoticeAuditExportFailed  = "Failed to export audit log"
	NoticeProfileUpdated     = "Account updated"
	NoticeProfileUpdateFail  = "Failed to update account"
	NoticeNotificationFailed = "Failed to update notifications"
	NoticeNotificationsLoad  = "Failed to load notifications"
	NoticeDismissFailed      = "Failed to dismiss notification"
	NoticeClearFailed        = "Failed to clear notifications"
	NoticePreferencesSaved   = "Notification preferences saved"
	NoticePreferencesFailed  = "Failed to save notification preferences"
)

// MsgInvalidPage is returned when a listing is requested past its last page.
const MsgInvalidPage = "Invalid page."
