package service

import (
	"strconv"

	"github.com/MKhiriev/legacy-keeper/internal/query"
	"github.com/MKhiriev/legacy-keeper/models"
)

// Cache key roots. Prefix invalidation works on these.
var (
	keyMedia               = query.NewKey("media")
	keyMediaFavorites      = query.NewKey("mediaFavorites")
	keyMediaFilters        = query.NewKey("mediaFilters")
	keyMembers             = query.NewKey("members")
	keyShareableInvites    = query.NewKey("shareableInvites")
	keyProfiles            = query.NewKey("profiles")
	keyProfile             = query.NewKey("profile")
	keyRelationships       = query.NewKey("relationships")
	keyTreeData            = query.NewKey("treeData")
	keyMediaTags           = query.NewKey("mediaTags")
	keyAuditLogs           = query.NewKey("auditLogs")
	keyVaults              = query.NewKey("vaults")
	keyVault               = query.NewKey("vault")
	keyVaultHealthAnalysis = query.NewKey("vaultHealthAnalysis")

	keyNotificationPreferences = query.NewKey("notificationPreferences")
)

// vaultScopedKeys are dropped from the cache when the user leaves a vault.
var vaultScopedKeys = []query.Key{
	keyMembers, keyMedia, keyProfiles, keyRelationships, keyTreeData, keyAuditLogs, keyVaults,
}

func mediaListKey(vaultID string, params models.MediaQueryParams) query.Key {
	return keyMedia.With(vaultID, params.Values().Encode())
}

func mediaFavoritesKey(vaultID string, params models.MediaQueryParams) query.Key {
	return keyMediaFavorites.With(vaultID, params.Values().Encode())
}

func mediaFiltersKey(vaultID string, params models.MediaQueryParams) query.Key {
	return keyMediaFilters.With(vaultID, params.WithoutSort().Values().Encode())
}

func mediaItemKey(mediaID string) query.Key {
	return keyMedia.With(mediaID)
}

func membersKey(vaultID string, params models.MembersQueryParams) query.Key {
	return keyMembers.With(vaultID).With(params.KeyParts()...)
}

func shareableInvitesKey(vaultID string, params models.InvitesQueryParams) query.Key {
	return keyShareableInvites.With(vaultID, strconv.Itoa(params.Page), strconv.Itoa(params.PageSize))
}

func profilesKey(vaultID string, params models.ProfilesQueryParams) query.Key {
	return keyProfiles.With(vaultID, params.Values().Encode())
}

func profileKey(profileID string) query.Key {
	return keyProfile.With(profileID)
}

func relationshipsKey(vaultID string) query.Key {
	return keyRelationships.With(vaultID)
}

func treeDataKey(vaultID string) query.Key {
	return keyTreeData.With(vaultID)
}

func mediaTagsKey(mediaID string) query.Key {
	return keyMediaTags.With(mediaID)
}

func auditLogsKey(vaultID string, params models.AuditLogsQueryParams) query.Key {
	return keyAuditLogs.With(vaultID, params.Values().Encode())
}

func vaultKey(vaultID string) query.Key {
	return keyVault.With(vaultID)
}

func vaultHealthKey(vaultID string) query.Key {
	return keyVaultHealthAnalysis.With(vaultID)
}
