package adapter

import (
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/legacy-keeper/models"
)

func testMapper(t *testing.T) mapper {
	t.Helper()
	base, err := url.Parse("https://vault.example.com/api/")
	require.NoError(t, err)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return mapper{base: base, now: func() time.Time { return now }}
}

func ptr[T any](v T) *T { return &v }

func TestMapper_MediaDefaults(t *testing.T) {
	m := testMapper(t)

	item := m.media(models.APIMediaItem{
		ID:        "m1",
		Vault:     "v1",
		MediaType: models.MediaPhoto,
		CreatedAt: "2026-02-01T10:00:00Z",
	})

	assert.Equal(t, untitledMedia, item.Title)
	assert.Equal(t, mediaPlaceholder, item.ThumbnailURL)
	assert.Empty(t, item.FileURL)
	assert.Equal(t, "2026-02-01T10:00:00Z", item.DateTaken)
	assert.Equal(t, models.MediaPending, item.Status)
	assert.Equal(t, models.VisibilityFamily, item.Visibility)
	assert.Empty(t, item.Files)
	assert.Equal(t, []string{}, item.Tags)
}

func TestMapper_MediaSynthesizesPrimaryFile(t *testing.T) {
	m := testMapper(t)

	item := m.media(models.APIMediaItem{
		ID:        "m1",
		MediaType: models.MediaDocument,
		FileURL:   ptr("/media/files/will.pdf"),
		Metadata:  map[string]any{"tags": []any{"legal", "", "family"}, "location": "Lisbon"},
	})

	require.Len(t, item.Files, 1)
	assert.Equal(t, "primary-m1", item.Files[0].ID)
	assert.Equal(t, defaultMemoryFile, item.Files[0].OriginalName)
	assert.Equal(t, "https://vault.example.com/media/files/will.pdf", item.FileURL)
	assert.True(t, item.Files[0].IsPrimary)
	assert.Equal(t, "Lisbon", item.Location)
	assert.Equal(t, []string{"legal", "family"}, item.Tags)
}

func TestMapper_MediaPicksPhotoThumbnail(t *testing.T) {
	m := testMapper(t)

	item := m.media(models.APIMediaItem{
		ID:         "m1",
		MediaType:  models.MediaVideo,
		Visibility: "PRIVATE",
		Files: []models.APIMediaFile{
			{ID: "f1", FileURL: ptr("https://cdn.example.com/clip.mp4"), MimeType: "video/mp4", IsPrimary: true},
			{ID: "f2", FileURL: ptr("https://cdn.example.com/still.jpg"), MimeType: "image/jpeg"},
			{ID: "f3", MimeType: "image/png"},
		},
	})

	require.Len(t, item.Files, 2)
	assert.Equal(t, "https://cdn.example.com/clip.mp4", item.FileURL)
	assert.Equal(t, "https://cdn.example.com/still.jpg", item.ThumbnailURL)
	assert.Equal(t, models.FileVideo, item.Files[0].FileType)
	assert.Equal(t, defaultAttachment, item.Files[1].OriginalName)
	assert.Equal(t, models.VisibilityPrivate, item.Visibility)
}

func TestFallbackAvatar(t *testing.T) {
	assert.Equal(t,
		"https://ui-avatars.com/api/?name=Ann%20Lee&background=E2E8F0&color=334155",
		fallbackAvatar("Ann Lee", "ann@example.com"))
	assert.Equal(t,
		"https://ui-avatars.com/api/?name=ann@example.com&background=E2E8F0&color=334155",
		fallbackAvatar("", "ann@example.com"))
	assert.Contains(t, fallbackAvatar("", ""), "name=LegacyKeeper")
}

func TestAuditDetails(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: ``, want: "{}"},
		{raw: `null`, want: "{}"},
		{raw: `"renamed vault"`, want: "renamed vault"},
		{raw: `{ "title": [ "a", "b" ] }`, want: `{"title":["a","b"]}`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, auditDetails(json.RawMessage(tt.raw)))
	}

	log := auditLog(models.APIAuditLog{ID: "a1", Action: "DELETE", Timestamp: "2026-01-02T03:04:05Z"})
	assert.Equal(t, defaultAuditActor, log.ActorName)
	assert.Equal(t, defaultAuditTarget, log.Target)
	assert.Equal(t, "{}", log.Details)
}

func TestMapper_Notification(t *testing.T) {
	m := testMapper(t)

	got := m.notification(models.APINotification{
		ID:               "n1",
		NotificationType: "MEMBER_JOINED",
		CreatedAt:        "not a date",
	})

	want := models.Notification{
		ID:        "n1",
		Title:     defaultNotification,
		Type:      models.ParseNotificationType("MEMBER_JOINED"),
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Route:     "/",
		Metadata:  map[string]any{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("notification mismatch (-want +got):\n%s", diff)
	}
}

func TestVault_Defaults(t *testing.T) {
	got := vault(models.APIVault{ID: "v1", StorageQuality: "ORIGINAL"})

	assert.Equal(t, 60, got.SafetyWindowMinutes)
	assert.Equal(t, models.QualityOriginal, got.StorageQuality)
	assert.Equal(t, models.VisibilityFamily, got.DefaultVisibility)
}
