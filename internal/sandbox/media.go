package sandbox

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/legacy-keeper/models"
)

const dateLayout = "2006-01-02"

// MediaFilter is the decoded query of the media listings.
type MediaFilter struct {
	Search    string
	Types     []models.MediaType
	Tags      []string
	Locations []string
	Era       string
	DateFrom  string
	DateTo    string

	// Ordering is "-created_at" (default), "created_at", "-date_taken",
	// "date_taken" or "title".
	Ordering string
}

// MediaUpload creates a media item. The first file is the primary one.
type MediaUpload struct {
	VaultID     string
	MediaType   models.MediaType
	Title       string
	Description string
	DateTaken   string
	Location    string
	Tags        []string
	Visibility  models.Visibility
	Files       []models.UploadFile
}

func validDate(value string) bool {
	_, err := time.Parse(dateLayout, value)
	return err == nil
}

func mediaTypeOf(mimeType string) models.MediaType {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return models.MediaPhoto
	case strings.HasPrefix(mimeType, "video/"):
		return models.MediaVideo
	default:
		return models.MediaDocument
	}
}

func fileTypeOf(mimeType string) models.MediaFileType {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return models.FilePhoto
	case strings.HasPrefix(mimeType, "video/"):
		return models.FileVideo
	case strings.HasPrefix(mimeType, "audio/"):
		return models.FileAudio
	default:
		return models.FileDocument
	}
}

func parseVisibility(value models.Visibility) (models.Visibility, bool) {
	switch v := models.Visibility(strings.ToLower(strings.TrimSpace(string(value)))); v {
	case "":
		return models.VisibilityFamily, true
	case models.VisibilityFamily, models.VisibilityPrivate:
		return v, true
	default:
		return "", false
	}
}

// effectiveDate is the date a memory is filed under: the day it was taken,
// or the upload day when unknown.
func (m *mediaRecord) effectiveDate() string {
	if m.dateTaken != "" {
		return m.dateTaken
	}
	return m.createdAt.UTC().Format(dateLayout)
}

func (m *mediaRecord) era() string {
	year, err := strconv.Atoi(m.effectiveDate()[:4])
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%ds", year/10*10)
}

func (m *mediaRecord) visibleTo(userID string) bool {
	return m.visibility != models.VisibilityPrivate || m.uploaderID == userID
}

func containsFold(list []string, value string) bool {
	return slices.ContainsFunc(list, func(s string) bool {
		return strings.EqualFold(s, value)
	})
}

func (f MediaFilter) matches(m *mediaRecord) bool {
	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		haystack := strings.ToLower(strings.Join(append([]string{m.title, m.description, m.location}, m.tags...), " "))
		if !strings.Contains(haystack, search) {
			return false
		}
	}
	if len(f.Types) > 0 && !slices.Contains(f.Types, m.mediaType) {
		return false
	}
	if len(f.Tags) > 0 && !slices.ContainsFunc(f.Tags, func(tag string) bool { return containsFold(m.tags, tag) }) {
		return false
	}
	if len(f.Locations) > 0 && !containsFold(f.Locations, m.location) {
		return false
	}
	if f.Era != "" && !strings.EqualFold(f.Era, m.era()) {
		return false
	}
	date := m.effectiveDate()
	if f.DateFrom != "" && date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && date > f.DateTo {
		return false
	}
	return true
}

// sortMedia orders items by f.Ordering. Ties fall back to the id so every
// page of a listing is stable.
func sortMedia(items []*mediaRecord, ordering string) {
	byID := func(a, b *mediaRecord) int { return cmp.Compare(a.id, b.id) }

	var less func(a, b *mediaRecord) int
	switch ordering {
	case "created_at":
		less = func(a, b *mediaRecord) int { return a.createdAt.Compare(b.createdAt) }
	case "date_taken":
		less = func(a, b *mediaRecord) int { return cmp.Compare(a.effectiveDate(), b.effectiveDate()) }
	case "-date_taken":
		less = func(a, b *mediaRecord) int { return cmp.Compare(b.effectiveDate(), a.effectiveDate()) }
	case "title":
		less = func(a, b *mediaRecord) int { return cmp.Compare(strings.ToLower(a.title), strings.ToLower(b.title)) }
	default:
		less = func(a, b *mediaRecord) int { return b.createdAt.Compare(a.createdAt) }
	}

	slices.SortFunc(items, func(a, b *mediaRecord) int {
		if c := less(a, b); c != 0 {
			return c
		}
		return byID(a, b)
	})
}

func (s *Sandbox) matchMediaLocked(userID, vaultID string, f MediaFilter, favoritesOnly bool) []*mediaRecord {
	var out []*mediaRecord
	for _, m := range s.media {
		if m.vaultID != vaultID || !m.visibleTo(userID) {
			continue
		}
		if favoritesOnly && !m.favoredBy[userID] {
			continue
		}
		if f.matches(m) {
			out = append(out, m)
		}
	}
	return out
}

// ListMedia returns every matching item of the vault in listing order. The
// caller pages the result.
func (s *Sandbox) ListMedia(userID, vaultID string, f MediaFilter, favoritesOnly bool) ([]models.APIMediaItem, error) {
	if vaultID == "" {
		return nil, ErrVaultRequired
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, _, err := s.accessLocked(userID, vaultID); err != nil {
		return nil, err
	}

	items := s.matchMediaLocked(userID, vaultID, f, favoritesOnly)
	sortMedia(items, f.Ordering)

	out := make([]models.APIMediaItem, 0, len(items))
	for _, m := range items {
		out = append(out, s.apiMediaLocked(m, userID))
	}
	return out, nil
}

// MediaFilters counts the facets of the items matching f.
func (s *Sandbox) MediaFilters(userID, vaultID string, f MediaFilter) (models.APIMediaFilterSummary, error) {
	if vaultID == "" {
		return models.APIMediaFilterSummary{}, ErrVaultRequired
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, _, err := s.accessLocked(userID, vaultID); err != nil {
		return models.APIMediaFilterSummary{}, err
	}

	items := s.matchMediaLocked(userID, vaultID, f, false)
	tags, locations, eras, types := facetCounter{}, facetCounter{}, facetCounter{}, facetCounter{}
	var start, end string
	for _, m := range items {
		for _, t := range m.tags {
			tags.add(t)
		}
		locations.add(m.location)
		eras.add(m.era())
		types.add(string(m.mediaType))

		date := m.effectiveDate()
		if start == "" || date < start {
			start = date
		}
		if date > end {
			end = date
		}
	}

	summary := models.APIMediaFilterSummary{
		TotalCount: len(items),
		People:     []models.FacetOption{},
		Tags:       tags.options(),
		Locations:  locations.options(),
		Eras:       eras.options(),
		Types:      types.options(),
	}
	if start != "" {
		summary.DateRange.Start = ptr(start)
		summary.DateRange.End = ptr(end)
	}
	return summary, nil
}

type facetCounter map[string]int

func (c facetCounter) add(value string) {
	if value = strings.TrimSpace(value); value != "" {
		c[value]++
	}
}

// options sorts by count, then value.
func (c facetCounter) options() []models.FacetOption {
	out := make([]models.FacetOption, 0, len(c))
	for v, n := range c {
		out = append(out, models.FacetOption{Value: v, Count: n})
	}
	slices.SortFunc(out, func(a, b models.FacetOption) int {
		if n := cmp.Compare(b.Count, a.Count); n != 0 {
			return n
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return out
}

// GetMedia returns one item.
func (s *Sandbox) GetMedia(userID, mediaID string) (models.APIMediaItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, _, err := s.mediaAccessLocked(userID, mediaID)
	if err != nil {
		return models.APIMediaItem{}, err
	}
	return s.apiMediaLocked(m, userID), nil
}

func (s *Sandbox) mediaAccessLocked(userID, mediaID string) (*mediaRecord, *membership, error) {
	m, ok := s.media[mediaID]
	if !ok || !m.visibleTo(userID) {
		return nil, nil, ErrNotFound
	}
	_, mb, err := s.accessLocked(userID, m.vaultID)
	if err != nil {
		return nil, nil, err
	}
	return m, mb, nil
}

func (s *Sandbox) canEditLocked(m *mediaRecord, mb *membership) bool {
	return m.uploaderID == mb.userID || mb.role == models.RoleAdmin || s.vaults[m.vaultID].ownerID == mb.userID
}

// CreateMedia stores an upload. Viewers cannot upload.
func (s *Sandbox) CreateMedia(userID string, up MediaUpload) (models.APIMediaItem, error) {
	switch {
	case len(up.Files) == 0:
		return models.APIMediaItem{}, ErrFileRequired
	case len(up.Files) > models.MaxUploadFiles:
		return models.APIMediaItem{}, ErrTooManyFiles
	}

	verr := &ValidationError{}
	if up.VaultID == "" {
		verr.add("vault", msgRequired)
	}
	if up.DateTaken != "" && !validDate(up.DateTaken) {
		verr.add("dateTaken", "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")
	}
	visibility, ok := parseVisibility(up.Visibility)
	if !ok {
		verr.add("visibility", fmt.Sprintf("%q is not a valid choice.", up.Visibility))
	}
	if err := verr.orNil(); err != nil {
		return models.APIMediaItem{}, err
	}

	mediaType := up.MediaType
	if !mediaType.Valid() {
		mediaType = mediaTypeOf(up.Files[0].MimeType)
	}
	title := strings.TrimSpace(up.Title)
	if title == "" {
		title = up.Files[0].Name
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, mb, err := s.accessLocked(userID, up.VaultID)
	if err != nil {
		return models.APIMediaItem{}, err
	}
	if mb.role == models.RoleViewer {
		return models.APIMediaItem{}, ErrForbidden
	}

	m := &mediaRecord{
		id:          s.ids.Generate(),
		vaultID:     up.VaultID,
		uploaderID:  userID,
		title:       title,
		description: up.Description,
		mediaType:   mediaType,
		visibility:  visibility,
		dateTaken:   up.DateTaken,
		location:    strings.TrimSpace(up.Location),
		tags:        cleanTags(up.Tags),
		favoredBy:   map[string]bool{},
		createdAt:   s.now(),
	}
	s.addFilesLocked(m, up.Files)
	s.media[m.id] = m

	if visibility == models.VisibilityFamily {
		s.notifyVaultLocked(up.VaultID, userID, notificationRecord{
			title:   "New memory uploaded",
			message: fmt.Sprintf("%s added %q", s.accounts[userID].fullName, title),
			kind:    kindUpload,
			route:   "/vault",
		})
	}

	return s.apiMediaLocked(m, userID), nil
}

func (s *Sandbox) addFilesLocked(m *mediaRecord, files []models.UploadFile) {
	for _, f := range files {
		rec := &fileRecord{
			id:        s.ids.Generate(),
			mediaID:   m.id,
			name:      f.Name,
			mimeType:  f.MimeType,
			content:   slices.Clone(f.Content),
			createdAt: s.now(),
		}
		s.files[rec.id] = rec
		m.fileIDs = append(m.fileIDs, rec.id)
	}
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" && !containsFold(out, t) {
			out = append(out, t)
		}
	}
	return out
}

// UpdateMedia applies a partial update. Only the uploader and vault admins
// may edit.
func (s *Sandbox) UpdateMedia(userID string, req models.UpdateMediaRequest) (models.APIMediaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, mb, err := s.mediaAccessLocked(userID, req.ID)
	if err != nil {
		return models.APIMediaItem{}, err
	}
	if !s.canEditLocked(m, mb) {
		return models.APIMediaItem{}, ErrForbidden
	}

	verr := &ValidationError{}
	if req.DateTaken != nil && *req.DateTaken != "" && !validDate(*req.DateTaken) {
		verr.add("dateTaken", "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.")
	}
	var visibility models.Visibility
	if req.Visibility != nil {
		var ok bool
		if visibility, ok = parseVisibility(*req.Visibility); !ok {
			verr.add("visibility", fmt.Sprintf("%q is not a valid choice.", *req.Visibility))
		}
	}
	remaining := slices.DeleteFunc(slices.Clone(m.fileIDs), func(id string) bool {
		return slices.Contains(req.RemoveFileIDs, id)
	})
	if len(remaining)+len(req.NewFiles) == 0 {
		verr.add("removeFileIds", "A memory needs at least one file.")
	}
	if err = verr.orNil(); err != nil {
		return models.APIMediaItem{}, err
	}
	if len(remaining)+len(req.NewFiles) > models.MaxUploadFiles {
		return models.APIMediaItem{}, ErrTooManyFiles
	}

	if req.Title != nil {
		m.title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		m.description = *req.Description
	}
	switch {
	case req.ClearDateTaken:
		m.dateTaken = ""
	case req.DateTaken != nil:
		m.dateTaken = *req.DateTaken
	}
	if req.Visibility != nil {
		m.visibility = visibility
	}
	if req.Location != nil {
		m.location = strings.TrimSpace(*req.Location)
	}
	if req.SetTags {
		m.tags = cleanTags(req.Tags)
	}
	for _, id := range m.fileIDs {
		if !slices.Contains(remaining, id) {
			delete(s.files, id)
		}
	}
	m.fileIDs = remaining
	s.addFilesLocked(m, req.NewFiles)

	return s.apiMediaLocked(m, userID), nil
}

// DeleteMedia removes an item and its files.
func (s *Sandbox) DeleteMedia(userID, mediaID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, mb, err := s.mediaAccessLocked(userID, mediaID)
	if err != nil {
		return err
	}
	if !s.canEditLocked(m, mb) {
		return ErrForbidden
	}

	for _, id := range m.fileIDs {
		delete(s.files, id)
	}
	delete(s.media, mediaID)
	return nil
}

// SetFavorite marks or unmarks an item for userID only.
func (s *Sandbox) SetFavorite(userID, mediaID string, favorite bool) (models.APIFavoriteResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, _, err := s.mediaAccessLocked(userID, mediaID)
	if err != nil {
		return models.APIFavoriteResponse{}, err
	}
	if favorite {
		m.favoredBy[userID] = true
	} else {
		delete(m.favoredBy, userID)
	}
	return models.APIFavoriteResponse{MediaID: mediaID, IsFavorite: favorite}, nil
}

// File returns an attachment userID can see.
func (s *Sandbox) File(userID, fileID string) (FileContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.files[fileID]
	if !ok {
		return FileContent{}, ErrNotFound
	}
	if _, _, err := s.mediaAccessLocked(userID, f.mediaID); err != nil {
		return FileContent{}, err
	}
	return FileContent{Name: f.name, MimeType: f.mimeType, Content: slices.Clone(f.content)}, nil
}

func fileURL(fileID string) *string {
	return ptr("media/files/" + fileID + "/")
}

func (s *Sandbox) apiMediaLocked(m *mediaRecord, viewerID string) models.APIMediaItem {
	files := make([]models.APIMediaFile, 0, len(m.fileIDs))
	for i, id := range m.fileIDs {
		f := s.files[id]
		files = append(files, models.APIMediaFile{
			ID:           f.id,
			FileURL:      fileURL(f.id),
			FileSize:     int64(len(f.content)),
			MimeType:     f.mimeType,
			FileType:     string(fileTypeOf(f.mimeType)),
			OriginalName: f.name,
			IsPrimary:    i == 0,
			CreatedAt:    formatTime(f.createdAt),
		})
	}

	item := models.APIMediaItem{
		ID:          m.id,
		Vault:       m.vaultID,
		Uploader:    ptr(m.uploaderID),
		IsFavorite:  m.favoredBy[viewerID],
		MediaType:   m.mediaType,
		Visibility:  strings.ToUpper(string(m.visibility)),
		Title:       m.title,
		Description: m.description,
		CreatedAt:   formatTime(m.createdAt),
		AIStatus:    string(models.MediaCompleted),
		Metadata: map[string]any{
			"location": m.location,
			"tags":     slices.Clone(m.tags),
		},
		Files: files,
	}
	if acc, ok := s.accounts[m.uploaderID]; ok {
		item.UploaderName = ptr(acc.fullName)
	}
	if m.dateTaken != "" {
		item.DateTaken = ptr(m.dateTaken)
	}
	if len(files) > 0 {
		item.FileURL = files[0].FileURL
	}
	return item
}
