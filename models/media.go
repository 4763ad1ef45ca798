// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MediaType is the kind of a media item.
type MediaType string

const (
	MediaPhoto    MediaType = "PHOTO"
	MediaDocument MediaType = "DOCUMENT"
	MediaVideo    MediaType = "VIDEO"
)

// Valid reports whether t is a known media type.
func (t MediaType) Valid() bool {
	switch t {
	case MediaPhoto, MediaDocument, MediaVideo:
		return true
	}
	return false
}

// FileExtension is the default extension used when saving a download that
// has no explicit name.
func (t MediaType) FileExtension() string {
	switch t {
	case MediaPhoto:
		return "jpg"
	case MediaVideo:
		return "mp4"
	case MediaDocument:
		return "pdf"
	default:
		return "bin"
	}
}

// MediaFileType is the kind of a single attachment of a media item.
type MediaFileType string

const (
	FilePhoto    MediaFileType = "PHOTO"
	FileVideo    MediaFileType = "VIDEO"
	FileAudio    MediaFileType = "AUDIO"
	FileDocument MediaFileType = "DOCUMENT"
)

// MediaStatus is the server-side processing state of a media item.
type MediaStatus string

const (
	MediaPending    MediaStatus = "PENDING"
	MediaProcessing MediaStatus = "PROCESSING"
	MediaCompleted  MediaStatus = "COMPLETED"
	MediaFailed     MediaStatus = "FAILED"
)

// Visibility controls who inside a vault can see an item.
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityFamily  Visibility = "family"
)

// MediaFile is one attachment of a media item.
type MediaFile struct {
	ID           string        `json:"id"`
	FileURL      string        `json:"fileUrl"`
	FileSize     int64         `json:"fileSize"`
	MimeType     string        `json:"mimeType,omitempty"`
	FileType     MediaFileType `json:"fileType"`
	OriginalName string        `json:"originalName"`
	IsPrimary    bool          `json:"isPrimary"`
	CreatedAt    string        `json:"createdAt,omitempty"`
}

// LinkedRelative is a genealogy profile linked to a media item.
type LinkedRelative struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// MediaItem is a photo, document or video stored in a vault.
type MediaItem struct {
	ID              string           `json:"id"`
	VaultID         string           `json:"vaultId"`
	UploaderID      string           `json:"uploaderId"`
	UploaderName    string           `json:"uploaderName,omitempty"`
	UploaderAvatar  string           `json:"uploaderAvatar,omitempty"`
	LinkedRelatives []LinkedRelative `json:"linkedRelatives,omitempty"`
	IsFavorite      bool             `json:"isFavorite"`
	Type            MediaType        `json:"type"`
	Visibility      Visibility       `json:"visibility"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	DateTaken       string           `json:"dateTaken"`
	UploadTimestamp time.Time        `json:"uploadTimestamp"`
	ThumbnailURL    string           `json:"thumbnailUrl"`
	FileURL         string           `json:"fileUrl,omitempty"`
	Tags            []string         `json:"tags"`
	Status          MediaStatus      `json:"status"`
	Location        string           `json:"location,omitempty"`
	Metadata        map[string]any   `json:"metadata,omitempty"`
	Files           []MediaFile      `json:"files"`
}

// FavoriteState is the server's answer to a favorite toggle.
type FavoriteState struct {
	MediaID    string `json:"mediaId"`
	IsFavorite bool   `json:"isFavorite"`
}

// FacetOption is one value of a filter facet with its number of matches.
type FacetOption struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// DateRange is an inclusive range of ISO dates; empty means unbounded.
type DateRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// MediaFilterSummary lists the facets available for the current filters.
type MediaFilterSummary struct {
	TotalCount int           `json:"totalCount"`
	People     []FacetOption `json:"people"`
	Tags       []FacetOption `json:"tags"`
	Locations  []FacetOption `json:"locations"`
	Eras       []FacetOption `json:"eras"`
	Types      []FacetOption `json:"types"`
	DateRange  DateRange     `json:"dateRange"`
}

// UploadFile is one file of an upload request.
type UploadFile struct {
	Name     string
	MimeType string
	Content  []byte
}

// UploadMediaRequest creates a media item from up to MaxUploadFiles files.
// The first file is the primary one.
type UploadMediaRequest struct {
	Files       []UploadFile
	Title       string
	Description string
	DateTaken   string
	Location    string
	Tags        []string
	Visibility  Visibility
}

// MaxUploadFiles is the largest number of files accepted by one upload.
const MaxUploadFiles = 10

// UpdateMediaRequest is a partial update of a media item. Nil fields are not
// sent. ClearDateTaken sends an explicit null for dateTaken.
type UpdateMediaRequest struct {
	ID             string
	Title          *string
	Description    *string
	DateTaken      *string
	ClearDateTaken bool
	Location       *string
	Tags           []string
	SetTags        bool
	Visibility     *Visibility
	NewFiles       []UploadFile
	RemoveFileIDs  []string
}

// HasFileMutations reports whether the update must be sent as multipart.
func (r UpdateMediaRequest) HasFileMutations() bool {
	return len(r.NewFiles) > 0 || len(r.RemoveFileIDs) > 0
}
