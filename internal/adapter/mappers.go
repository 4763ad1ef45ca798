package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/legacy-keeper/models"
)

const (
	untitledMedia        = "Untitled memory"
	mediaPlaceholder     = "https://placehold.co/600x800?text=Memory"
	profilePlaceholder   = "https://placehold.co/200x200?text=Profile"
	defaultAttachment    = "Attachment"
	defaultMemoryFile    = "Memory file"
	defaultNotification  = "Notification"
	defaultAuditActor    = "System"
	defaultAuditTarget   = "resource"
	defaultSafetyWindow  = 60
	avatarFallbackFormat = "https://ui-avatars.com/api/?name=%s&background=E2E8F0&color=334155"
)

var absoluteURL = regexp.MustCompile(`(?i)^https?://`)

// mapper turns wire payloads into domain models. Relative file URLs are
// resolved against base.
type mapper struct {
	base *url.URL
	now  func() time.Time
}

func (m mapper) absolute(value *string) string {
	if value == nil {
		return ""
	}
	return m.absoluteString(*value)
}

func (m mapper) absoluteString(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if absoluteURL.MatchString(value) {
		return value
	}
	ref, err := url.Parse(value)
	if err != nil || m.base == nil {
		return value
	}
	return m.base.ResolveReference(ref).String()
}

func (m mapper) clock() time.Time {
	if m.now != nil {
		return m.now()
	}
	return time.Now()
}

func fallbackAvatar(fullName, email string) string {
	label := fullName
	if label == "" {
		label = email
	}
	if label == "" {
		label = "LegacyKeeper"
	}
	return fmt.Sprintf(avatarFallbackFormat, url.PathEscape(label))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// parseTime accepts RFC 3339 timestamps and plain dates. It reports false
// for anything else.
func parseTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (m mapper) user(u models.APIUser) models.User {
	photo := m.absolute(u.Avatar)
	if photo == "" {
		photo = fallbackAvatar(u.FullName, u.Email)
	}
	tier := u.SubscriptionTier
	if tier == "" {
		tier = models.TierBasic
	}
	var storage int64
	if u.StorageUsed != nil {
		storage = *u.StorageUsed
	}

	return models.User{
		ID:               u.ID,
		FullName:         u.FullName,
		Email:            u.Email,
		Bio:              u.Bio,
		Role:             models.ParseUserRole(u.Role),
		ProfilePhoto:     photo,
		SubscriptionTier: tier,
		StorageUsed:      storage,
	}
}

func (m mapper) member(mb models.APIMembership) models.FamilyMember {
	photo := m.absolute(mb.User.Avatar)
	if photo == "" {
		photo = fallbackAvatar(mb.User.FullName, mb.User.Email)
	}
	status := models.MemberPending
	if mb.IsActive {
		status = models.MemberActive
	}

	return models.FamilyMember{
		User: models.User{
			ID:               mb.ID,
			FullName:         mb.User.FullName,
			Email:            mb.User.Email,
			Role:             mb.Role,
			ProfilePhoto:     photo,
			SubscriptionTier: models.TierBasic,
		},
		Status:     status,
		JoinedDate: mb.CreatedAt,
	}
}

func fileTypeFromMime(mimeType string, fallback models.MediaType) models.MediaFileType {
	mime := strings.ToLower(mimeType)
	switch {
	case strings.HasPrefix(mime, "image/"):
		return models.FilePhoto
	case strings.HasPrefix(mime, "video/"):
		return models.FileVideo
	case strings.HasPrefix(mime, "audio/"):
		return models.FileAudio
	}

	switch fallback {
	case models.MediaPhoto:
		return models.FilePhoto
	case models.MediaVideo:
		return models.FileVideo
	default:
		return models.FileDocument
	}
}

// mediaTypeFromMime picks the item type of an upload from its primary file.
func mediaTypeFromMime(mimeType string) models.MediaType {
	mime := strings.ToLower(mimeType)
	switch {
	case strings.HasPrefix(mime, "image/"):
		return models.MediaPhoto
	case strings.HasPrefix(mime, "video/"):
		return models.MediaVideo
	default:
		return models.MediaDocument
	}
}

func (m mapper) mediaFiles(item models.APIMediaItem) []models.MediaFile {
	if len(item.Files) > 0 {
		files := make([]models.MediaFile, 0, len(item.Files))
		for _, f := range item.Files {
			fileURL := m.absolute(f.FileURL)
			if fileURL == "" {
				continue
			}

			id := f.ID
			if id == "" {
				id = fileURL
			}
			fileType := models.MediaFileType(strings.ToUpper(f.FileType))
			switch fileType {
			case models.FilePhoto, models.FileVideo, models.FileAudio, models.FileDocument:
			default:
				fileType = fileTypeFromMime(f.MimeType, item.MediaType)
			}
			name := f.OriginalName
			if name == "" {
				name = defaultAttachment
			}

			files = append(files, models.MediaFile{
				ID:           id,
				FileURL:      fileURL,
				FileSize:     f.FileSize,
				MimeType:     f.MimeType,
				FileType:     fileType,
				OriginalName: name,
				IsPrimary:    f.IsPrimary,
				CreatedAt:    f.CreatedAt,
			})
		}
		return files
	}

	fileURL := m.absolute(item.FileURL)
	if fileURL == "" {
		return []models.MediaFile{}
	}
	name := item.Title
	if name == "" {
		name = defaultMemoryFile
	}
	return []models.MediaFile{{
		ID:           "primary-" + item.ID,
		FileURL:      fileURL,
		FileType:     fileTypeFromMime("", item.MediaType),
		OriginalName: name,
		IsPrimary:    true,
		CreatedAt:    item.CreatedAt,
	}}
}

func metadataTags(metadata map[string]any) []string {
	tags := []string{}
	switch raw := metadata["tags"].(type) {
	case []any:
		for _, v := range raw {
			if s := strings.TrimSpace(fmt.Sprint(v)); s != "" {
				tags = append(tags, s)
			}
		}
	case string:
		for _, v := range strings.Split(raw, ",") {
			if s := strings.TrimSpace(v); s != "" {
				tags = append(tags, s)
			}
		}
	}
	return tags
}

func metadataLocation(metadata map[string]any) string {
	raw, _ := metadata["location"].(string)
	return strings.TrimSpace(raw)
}

func visibility(value string) models.Visibility {
	if strings.ToUpper(strings.TrimSpace(value)) == "PRIVATE" {
		return models.VisibilityPrivate
	}
	return models.VisibilityFamily
}

func (m mapper) linkedRelatives(in []models.APILinkedRelative) []models.LinkedRelative {
	seen := make(map[string]struct{}, len(in))
	out := make([]models.LinkedRelative, 0, len(in))
	for _, r := range in {
		id := strings.TrimSpace(r.ID)
		name := strings.TrimSpace(deref(r.FullName))
		if id == "" || name == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, models.LinkedRelative{ID: id, FullName: name, PhotoURL: m.absolute(r.PhotoURL)})
	}
	return out
}

func (m mapper) media(item models.APIMediaItem) models.MediaItem {
	files := m.mediaFiles(item)

	var primary, thumbnail *models.MediaFile
	for i := range files {
		if files[i].IsPrimary {
			primary = &files[i]
			break
		}
	}
	if primary == nil && len(files) > 0 {
		primary = &files[0]
	}
	for i := range files {
		if files[i].FileType == models.FilePhoto {
			thumbnail = &files[i]
			break
		}
	}
	if thumbnail == nil {
		thumbnail = primary
	}

	thumbnailURL, fileURL := mediaPlaceholder, ""
	if thumbnail != nil {
		thumbnailURL = thumbnail.FileURL
	}
	if primary != nil {
		fileURL = primary.FileURL
	}

	title := item.Title
	if title == "" {
		title = untitledMedia
	}
	dateTaken := deref(item.DateTaken)
	if dateTaken == "" {
		dateTaken = item.CreatedAt
	}
	status := models.MediaStatus(item.AIStatus)
	if status == "" {
		status = models.MediaPending
	}
	metadata := item.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	uploaded, _ := parseTime(item.CreatedAt)

	return models.MediaItem{
		ID:              item.ID,
		VaultID:         item.Vault,
		UploaderID:      deref(item.Uploader),
		UploaderName:    strings.TrimSpace(deref(item.UploaderName)),
		UploaderAvatar:  m.absolute(item.UploaderAvatar),
		LinkedRelatives: m.linkedRelatives(item.LinkedRelatives),
		IsFavorite:      item.IsFavorite,
		Type:            item.MediaType,
		Visibility:      visibility(item.Visibility),
		Title:           title,
		Description:     item.Description,
		DateTaken:       dateTaken,
		UploadTimestamp: uploaded,
		ThumbnailURL:    thumbnailURL,
		FileURL:         fileURL,
		Tags:            metadataTags(metadata),
		Status:          status,
		Location:        metadataLocation(metadata),
		Metadata:        metadata,
		Files:           files,
	}
}

func facetOptions(in []models.FacetOption) []models.FacetOption {
	if in == nil {
		return []models.FacetOption{}
	}
	return in
}

func filterSummary(s models.APIMediaFilterSummary) models.MediaFilterSummary {
	types := make([]models.FacetOption, 0, len(s.Types))
	for _, t := range s.Types {
		if models.MediaType(t.Value).Valid() {
			types = append(types, t)
		}
	}

	return models.MediaFilterSummary{
		TotalCount: s.TotalCount,
		People:     facetOptions(s.People),
		Tags:       facetOptions(s.Tags),
		Locations:  facetOptions(s.Locations),
		Eras:       facetOptions(s.Eras),
		Types:      types,
		DateRange:  models.DateRange{Start: deref(s.DateRange.Start), End: deref(s.DateRange.End)},
	}
}

func (m mapper) profile(p models.APIPersonProfile) models.PersonProfile {
	photo := m.absolute(p.PhotoURL)
	if photo == "" {
		photo = profilePlaceholder
	}

	return models.PersonProfile{
		ID:             p.ID,
		FullName:       p.FullName,
		Gender:         models.GenderMale,
		BirthDate:      deref(p.BirthDate),
		DeathDate:      deref(p.DeathDate),
		BirthPlace:     strings.TrimSpace(deref(p.BirthPlace)),
		Biography:      p.Bio,
		PhotoURL:       photo,
		IsLinkedToUser: deref(p.LinkedUser) != "",
	}
}

func relationship(r models.APIRelationship) models.Relationship {
	return models.Relationship{
		ID:        r.ID,
		PersonAID: r.FromPerson,
		PersonBID: r.ToPerson,
		Type:      r.RelationshipType,
	}
}

func (m mapper) tree(t models.APITreeData) models.TreeData {
	out := models.TreeData{
		Profiles:      make([]models.PersonProfile, 0, len(t.Nodes)),
		Relationships: make([]models.Relationship, 0, len(t.Edges)),
	}
	for _, n := range t.Nodes {
		out.Profiles = append(out.Profiles, m.profile(n))
	}
	for _, e := range t.Edges {
		out.Relationships = append(out.Relationships, relationship(e))
	}
	if t.Vault != nil {
		out.Vault = &models.TreeVault{
			ID:          t.Vault.ID,
			Name:        t.Vault.Name,
			FamilyName:  t.Vault.FamilyName,
			MemberCount: t.Vault.MemberCount,
		}
	}
	return out
}

func mediaTag(t models.APIMediaTag) models.MediaTag {
	return models.MediaTag{
		ID:              t.ID,
		MediaID:         t.MediaItem,
		PersonID:        t.Person,
		PersonName:      t.PersonName,
		FaceCoordinates: t.FaceCoordinates,
	}
}

// auditDetails renders the changes field: strings verbatim, anything else as
// compact JSON ("{}" when absent).
func auditDetails(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "{}"
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

func auditLog(l models.APIAuditLog) models.AuditLog {
	actor := deref(l.ActorName)
	if actor == "" {
		actor = defaultAuditActor
	}
	target := l.TargetType
	if target == "" {
		target = defaultAuditTarget
	}
	ts, _ := parseTime(l.Timestamp)

	return models.AuditLog{
		ID:        l.ID,
		Timestamp: ts,
		ActorName: actor,
		Action:    l.Action,
		Target:    target,
		Details:   auditDetails(l.Changes),
	}
}

func vault(v models.APIVault) models.VaultSummary {
	window := defaultSafetyWindow
	if v.SafetyWindowMinutes != nil {
		window = *v.SafetyWindowMinutes
	}
	quality := models.QualityHigh
	if v.StorageQuality != "" {
		quality = models.StorageQuality(strings.ToLower(v.StorageQuality))
	}
	vis := models.VisibilityFamily
	if v.DefaultVisibility != "" {
		vis = models.Visibility(strings.ToLower(v.DefaultVisibility))
	}

	return models.VaultSummary{
		ID:                  v.ID,
		Name:                v.Name,
		FamilyName:          v.FamilyName,
		Description:         v.Description,
		SafetyWindowMinutes: window,
		StorageQuality:      quality,
		DefaultVisibility:   vis,
		StorageUsedBytes:    v.StorageUsedBytes,
		MemberCount:         v.MemberCount,
		MyRole:              v.MyRole,
		IsOwner:             v.IsOwner,
	}
}

func (m mapper) healthItem(i models.APIVaultHealthItem) models.VaultHealthItem {
	created, _ := parseTime(i.CreatedAt)
	return models.VaultHealthItem{
		ID:        i.ID,
		Title:     i.Title,
		FileSize:  i.FileSize,
		CreatedAt: created,
		FileURL:   m.absolute(i.FileURL),
	}
}

func (m mapper) healthReport(r models.APIVaultHealthReport) models.VaultHealthReport {
	generated, _ := parseTime(r.GeneratedAt)
	out := models.VaultHealthReport{
		VaultID:              r.VaultID,
		GeneratedAt:          generated,
		TotalItems:           r.TotalItems,
		DuplicateGroupsCount: r.DuplicateGroupsCount,
		DuplicateItemsCount:  r.DuplicateItemsCount,
		ReclaimableBytes:     r.ReclaimableBytes,
		Groups:               make([]models.VaultHealthGroup, 0, len(r.Groups)),
	}
	for _, g := range r.Groups {
		group := models.VaultHealthGroup{
			Hash:             g.Hash,
			ReclaimableBytes: g.ReclaimableBytes,
			DuplicateCount:   g.DuplicateCount,
			Primary:          m.healthItem(g.Primary),
			Duplicates:       make([]models.VaultHealthItem, 0, len(g.Duplicates)),
		}
		for _, d := range g.Duplicates {
			group.Duplicates = append(group.Duplicates, m.healthItem(d))
		}
		out.Groups = append(out.Groups, group)
	}
	return out
}

func (m mapper) notification(n models.APINotification) models.Notification {
	title := n.Title
	if title == "" {
		title = defaultNotification
	}
	kind := n.Type
	if kind == "" {
		kind = n.NotificationType
	}
	created, ok := parseTime(n.CreatedAt)
	if !ok {
		created = m.clock()
	}
	route := n.Route
	if route == "" {
		route = "/"
	}
	metadata := n.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	return models.Notification{
		ID:        n.ID,
		Title:     title,
		Message:   n.Message,
		Type:      models.ParseNotificationType(kind),
		IsRead:    n.IsRead,
		CreatedAt: created.UTC(),
		Route:     route,
		ActorName: n.ActorName,
		VaultID:   deref(n.VaultID),
		Metadata:  metadata,
	}
}

func shareableInvite(i models.APIShareableInvite) models.ShareableInvite {
	expires, _ := parseTime(i.ExpiresAt)
	created, _ := parseTime(i.CreatedAt)

	return models.ShareableInvite{
		ID:          i.ID,
		VaultID:     i.Vault,
		Link:        i.Link,
		Token:       i.Token,
		Role:        models.ParseUserRole(string(i.Role)),
		ExpiresAt:   expires,
		IsRevoked:   i.IsRevoked,
		IsExpired:   i.IsExpired,
		JoinedCount: i.JoinedCount,
		CreatedAt:   created,
	}
}
