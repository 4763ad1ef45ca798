// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/legacy-keeper/internal/adapter"
	"github.com/MKhiriev/legacy-keeper/internal/app"
	"github.com/MKhiriev/legacy-keeper/internal/query"
	"github.com/MKhiriev/legacy-keeper/models"
)

func newTestMediaSvc(t *testing.T) (*clientMediaService, *fixture) {
	t.Helper()
	f := newFixture(t)
	return NewClientMediaService(f.deps, f.api, 0).(*clientMediaService), f
}

// loadListing fills the media listing cache for params with items.
func loadListing(t *testing.T, svc *clientMediaService, f *fixture, params models.MediaQueryParams, items []models.MediaItem) mediaList {
	t.Helper()
	f.api.EXPECT().
		ListMedia(gomock.Any(), testVaultID, params, 1, DefaultMediaPageSize).
		Return(onePage(items...), nil)

	data, err := svc.List(context.Background(), params)
	require.NoError(t, err)
	return data
}

// loadFavorites fills the favorites cache for params with items.
func loadFavorites(t *testing.T, svc *clientMediaService, f *fixture, params models.MediaQueryParams, items []models.MediaItem) mediaList {
	t.Helper()
	f.api.EXPECT().
		ListFavoriteMedia(gomock.Any(), testVaultID, params, 1, DefaultMediaPageSize).
		Return(onePage(items...), nil)

	data, err := svc.Favorites(context.Background(), params)
	require.NoError(t, err)
	return data
}

func cachedFavorites(t *testing.T, f *fixture, params models.MediaQueryParams) mediaList {
	t.Helper()
	data, ok := query.Data[mediaList](f.cache, mediaFavoritesKey(testVaultID, params))
	require.True(t, ok)
	return data
}

func cachedListing(t *testing.T, f *fixture, params models.MediaQueryParams) mediaList {
	t.Helper()
	data, ok := query.Data[mediaList](f.cache, mediaListKey(testVaultID, params))
	require.True(t, ok)
	return data
}

// ── List / NextPage ──────────────────────────────────────────────────────────

func TestClientMediaService_List_NoActiveVault(t *testing.T) {
	f := newFixtureWithVault(t, "")
	svc := NewClientMediaService(f.deps, f.api, 0)

	_, err := svc.List(context.Background(), models.MediaQueryParams{})
	assert.ErrorIs(t, err, ErrNoActiveVault)
}

func TestClientMediaService_NextPage_AppendsPage(t *testing.T) {
	svc, f := newTestMediaSvc(t)
	ctx := context.Background()
	params := models.MediaQueryParams{Search: "beach"}

	first := models.Page[models.MediaItem]{Items: mediaItems("m1", "m2"), TotalCount: 3, HasNextPage: true}
	second := models.Page[models.MediaItem]{Items: mediaItems("m3"), TotalCount: 3, HasPreviousPage: true}

	gomock.InOrder(
		f.api.EXPECT().ListMedia(gomock.Any(), testVaultID, params, 1, DefaultMediaPageSize).Return(first, nil),
		f.api.EXPECT().ListMedia(gomock.Any(), testVaultID, params, 2, DefaultMediaPageSize).Return(second, nil),
	)

	data, err := svc.List(ctx, params)
	require.NoError(t, err)
	assert.True(t, data.HasNextPage())

	data, err = svc.NextPage(ctx, params)
	require.NoError(t, err)
	assert.Len(t, data.Items(), 3)
	assert.False(t, data.HasNextPage())
	assert.Equal(t, 3, data.TotalCount())
}

func TestClientMediaService_NextPage_LoadsFirstPageWhenEmpty(t *testing.T) {
	svc, f := newTestMediaSvc(t)

	f.api.EXPECT().ListMedia(gomock.Any(), testVaultID, gomock.Any(), 1, DefaultMediaPageSize).
		Return(onePage(mediaItems("m1")...), nil)

	data, err := svc.NextPage(context.Background(), models.MediaQueryParams{})
	require.NoError(t, err)
	assert.Len(t, data.Items(), 1)
}

func TestClientMediaService_Filters_DropsSort(t *testing.T) {
	svc, f := newTestMediaSvc(t)
	params := models.MediaQueryParams{Search: "x", SortBy: models.SortOldest}

	f.api.EXPECT().MediaFilters(gomock.Any(), testVaultID, params.WithoutSort()).
		Return(models.MediaFilterSummary{}, nil)

	_, err := svc.Filters(context.Background(), params)
	require.NoError(t, err)
}

// ── Upload / Update ──────────────────────────────────────────────────────────

func TestClientMediaService_Upload_ValidationFailsWithoutCall(t *testing.T) {
	svc, f := newTestMediaSvc(t)

	f.notifier.EXPECT().Error(app.NoticeMemoryPreserveFailed, gomock.Any())

	_, err := svc.Upload(context.Background(), models.UploadMediaRequest{Title: "empty"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestClientMediaService_Upload_InvalidatesListings(t *testing.T) {
	svc, f := newTestMediaSvc(t)
	ctx := context.Background()
	loadListing(t, svc, f, models.MediaQueryParams{}, mediaItems("m1"))

	req := models.UploadMediaRequest{
		Title: "new",
		Files: []models.UploadFile{{Name: "a.jpg", Content: []byte("jpeg")}},
	}
	f.api.EXPECT().UploadMedia(ctx, testVaultID, req).Return(models.MediaItem{ID: "m9", Title: "new"}, nil)
	f.notifier.EXPECT().Success(app.NoticeMemoryPreserved, "new")

	_, err := svc.Upload(ctx, req)
	require.NoError(t, err)

	entry, ok := f.cache.Entry(mediaListKey(testVaultID, models.MediaQueryParams{}))
	require.True(t, ok)
	assert.True(t, entry.Stale)
}

func TestClientMediaService_Upload_ServerMessageIsShown(t *testing.T) {
	svc, f := newTestMediaSvc(t)
	ctx := context.Background()

	req := models.UploadMediaRequest{Files: []models.UploadFile{{Name: "a.jpg", Content: []byte("x")}}}
	f.api.EXPECT().UploadMedia(ctx, testVaultID, req).Return(models.MediaItem{}, apiError(http.StatusRequestEntityTooLarge, ""))
	f.notifier.EXPECT().Error(app.NoticeMemoryPreserveFailed, app.NoticeUploadFallback)

	_, err := svc.Upload(ctx, req)
	assert.ErrorIs(t, err, ErrValidation)
}

// ── ToggleFavorite ───────────────────────────────────────────────────────────

func TestClientMediaService_ToggleFavorite_OptimisticThenReconciled(t *testing.T) {
	svc, f := newTestMediaSvc(t)
	ctx := context.Background()
	params := models.MediaQueryParams{}
	loadListing(t, svc, f, params, mediaItems("m1", "m2"))

	f.api.EXPECT().ToggleFavorite(ctx, "m1", true).DoAndReturn(
		func(context.Context, string, bool) (models.FavoriteState, error) {
			during := cachedListing(t, f, params)
			assert.True(t, during.Items()[0].IsFavorite, "flag is set before the server answers")
			return models.FavoriteState{MediaID: "m1", IsFavorite: true}, nil
		})

	state, err := svc.ToggleFavorite(ctx, "m1", true)
	require.NoError(t, err)
	assert.True(t, state.IsFavorite)

	after := cachedListing(t, f, params)
	assert.True(t, after.Items()[0].IsFavorite)
	assert.False(t, after.Items()[1].IsFavorite)
}

func TestClientMediaService_ToggleFavorite_FailureRestoresCache(t *testing.T) {
	svc, f := newTestMediaSvc(t)
	ctx := context.Background()
	params := models.MediaQueryParams{}

	items := mediaItems("m1", "m2")
	items[1].IsFavorite = true
	before := loadListing(t, svc, f, params, items)
	favsBefore := loadFavorites(t, svc, f, params, items[1:])

	f.api.EXPECT().ToggleFavorite(ctx, "m2", false).Return(models.FavoriteState{}, errServerDown)
	f.notifier.EXPECT().Error(app.NoticeFavoriteFailed, app.NoticeDefaultError)

	_, err := svc.ToggleFavorite(ctx, "m2", false)
	require.Error(t, err)

	if diff := cmp.Diff(before, cachedListing(t, f, params)); diff != "" {
		t.Errorf("media listing not restored (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(favsBefore, cachedFavorites(t, f, params)); diff != "" {
		t.Errorf("favorites not restored (-before +after):\n%s", diff)
	}
}

func TestClientMediaService_ToggleFavorite_UnfavoriteDropsFromFavorites(t *testing.T) {
	svc, f := newTestMediaSvc(t)
	ctx := context.Background()
	params := models.MediaQueryParams{}

	favs := mediaItems("m1", "m2")
	favs[0].IsFavorite, favs[1].IsFavorite = true, true
	f.api.EXPECT().ListFavoriteMedia(gomock.Any(), testVaultID, params, 1, DefaultMediaPageSize).
		Return(onePage(favs...), nil)
	_, err := svc.Favorites(ctx, params)
	require.NoError(t, err)

	f.api.EXPECT().ToggleFavorite(ctx, "m1", false).DoAndReturn(
		func(context.Context, string, bool) (models.FavoriteState, error) {
			during, ok := query.Data[mediaList](f.cache, mediaFavoritesKey(testVaultID, params))
			require.True(t, ok)
			assert.Len(t, during.Items(), 1)
			return models.FavoriteState{MediaID: "m1"}, nil
		})

	_, err = svc.ToggleFavorite(ctx, "m1", false)
	require.NoError(t, err)
}

// ── Delete / BulkDelete ──────────────────────────────────────────────────────

func TestClientMediaService_Delete_RemovesAndLowersTotal(t *testing.T) {
	svc, f := newTestMediaSvc(t)
	ctx := context.Background()
	params := models.MediaQueryParams{}
	loadListing(t, svc, f, params, mediaItems("m1", "m2", "m3"))

	other := models.MediaQueryParams{Search: "unrelated"}
	loadListing(t, svc, f, other, mediaItems("m4"))

	f.api.EXPECT().DeleteMedia(ctx, "m2").Return(nil)
	f.notifier.EXPECT().Success(app.NoticeArtifactRemoved, "")

	require.NoError(t, svc.Delete(ctx, "m2"))

	after := cachedListing(t, f, params)
	assert.Equal(t, []string{"m1", "m3"}, itemIDs(after))
	assert.Equal(t, 2, after.TotalCount())

	untouched := cachedListing(t, f, other)
	assert.Equal(t, 1, untouched.TotalCount(), "listings without the item keep their total")
}

func TestClientMediaService_Delete_DropsFromFavorites(t *testing.T) {
	svc, f := newTestMediaSvc(t)
	ctx := context.Background()
	params := models.MediaQueryParams{}

	items := mediaItems("m1", "m2")
	items[0].IsFavorite = true
	loadListing(t, svc, f, params, items)
	loadFavorites(t, svc, f, params, items[:1])

	f.api.EXPECT().DeleteMedia(ctx, "m1").DoAndReturn(func(context.Context, string) error {
		assert.Empty(t, cachedFavorites(t, f, params).Items(), "favorites drop the item before the server answers")
		return nil
	})
	f.notifier.EXPECT().Success(app.NoticeArtifactRemoved, "")

	require.NoError(t, svc.Delete(ctx, "m1"))

	favs := cachedFavorites(t, f, params)
	assert.Empty(t, favs.Items())
	assert.Zero(t, favs.TotalCount())
	assert.Equal(t, []string{"m2"}, itemIDs(cachedListing(t, f, params)))
}

func TestClientMediaService_Delete_FailureRestoresFavorites(t *testing.T) {
	svc, f := newTestMediaSvc(t)
	ctx := context.Background()
	params := models.MediaQueryParams{}

	items := mediaItems("m1")
	items[0].IsFavorite = true
	before := loadFavorites(t, svc, f, params, items)

	f.api.EXPECT().DeleteMedia(ctx, "m1").Return(errServerDown)
	f.notifier.EXPECT().Error(app.NoticeArtifactRemoveFailed, app.NoticeDefaultError)

	require.Error(t, svc.Delete(ctx, "m1"))

	if diff := cmp.Diff(before, cachedFavorites(t, f, params)); diff != "" {
		t.Errorf("favorites not restored (-before +after):\n%s", diff)
	}
}

func TestClientMediaService_Delete_FailureRestoresCache(t *testing.T) {
	svc, f := newTestMediaSvc(t)
	ctx := context.Background()
	params := models.MediaQueryParams{}
	before := loadListing(t, svc, f, params, mediaItems("m1", "m2"))

	f.api.EXPECT().DeleteMedia(ctx, "m1").Return(apiError(http.StatusForbidden, app.MsgAccessDenied))
	f.notifier.EXPECT().Error(app.NoticeArtifactRemoveFailed, app.MsgAccessDenied)

	err := svc.Delete(ctx, "m1")
	assert.ErrorIs(t, err, ErrForbidden)

	if diff := cmp.Diff(before, cachedListing(t, f, params)); diff != "" {
		t.Errorf("cache not restored (-before +after):\n%s", diff)
	}
}

func TestClientMediaService_BulkDelete_AllSucceed(t *testing.T) {
	svc, f := newTestMediaSvc(t)
	ctx := context.Background()
	params := models.MediaQueryParams{}
	loadListing(t, svc, f, params, mediaItems("m1", "m2", "m3"))

	f.api.EXPECT().DeleteMedia(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	f.notifier.EXPECT().Success("3 artifacts removed successfully", "")

	deleted, err := svc.BulkDelete(ctx, []string{"m1", "m2", "m3", "m2", ""})
	require.NoError(t, err)
	assert.Equal(t, []string{"m1", "m2", "m3"}, deleted)
	assert.Empty(t, cachedListing(t, f, params).Items())
}

func TestClientMediaService_BulkDelete_PartialFailureKeepsFailedItems(t *testing.T) {
	svc, f := newTestMediaSvc(t)
	ctx := context.Background()
	params := models.MediaQueryParams{}
	loadListing(t, svc, f, params, mediaItems("m1", "m2", "m3"))
	loadFavorites(t, svc, f, params, mediaItems("m1", "m2"))

	f.api.EXPECT().DeleteMedia(gomock.Any(), "m1").Return(nil)
	f.api.EXPECT().DeleteMedia(gomock.Any(), "m2").Return(errServerDown)
	f.api.EXPECT().DeleteMedia(gomock.Any(), "m3").Return(nil)
	f.notifier.EXPECT().Error(app.NoticeBatchPurgeFailed, gomock.Any())

	deleted, err := svc.BulkDelete(ctx, []string{"m1", "m2", "m3"})
	require.Error(t, err)
	assert.Equal(t, []string{"m1", "m3"}, deleted)

	var bulkErr *BulkDeleteError
	require.True(t, errors.As(err, &bulkErr))
	assert.Equal(t, []string{"m2"}, bulkErr.FailedIDs())

	after := cachedListing(t, f, params)
	assert.Equal(t, []string{"m2"}, itemIDs(after))
	assert.Equal(t, 1, after.TotalCount())
	assert.Equal(t, []string{"m2"}, itemIDs(cachedFavorites(t, f, params)), "deleted favorites stay gone")

	entry, ok := f.cache.Entry(mediaListKey(testVaultID, params))
	require.True(t, ok)
	assert.True(t, entry.Stale, "listing is refetched after a partial failure")
}

func TestClientMediaService_BulkDelete_Empty(t *testing.T) {
	svc, _ := newTestMediaSvc(t)

	deleted, err := svc.BulkDelete(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, deleted)
}

// ── Download ─────────────────────────────────────────────────────────────────

func TestClientMediaService_Download_PrimaryFile(t *testing.T) {
	svc, f := newTestMediaSvc(t)
	ctx := context.Background()
	item := models.MediaItem{
		ID:    "m1",
		Title: "scan",
		Files: []models.MediaFile{
			{ID: "f1", FileURL: "media/f1.jpg"},
			{ID: "f2", FileURL: "media/f2.jpg", IsPrimary: true},
		},
	}

	var buf bytes.Buffer
	f.api.EXPECT().DownloadFile(ctx, "media/f2.jpg", &buf).Return(int64(42), nil)
	f.notifier.EXPECT().Success(app.NoticeDownloaded, "scan")

	n, err := svc.Download(ctx, item, &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

func TestClientMediaService_Download_NoURL(t *testing.T) {
	svc, f := newTestMediaSvc(t)

	f.notifier.EXPECT().Error(app.NoticeDownloadFailed, gomock.Any())

	_, err := svc.Download(context.Background(), models.MediaItem{ID: "m1"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, adapter.ErrNoFileURL)
}

func itemIDs(data mediaList) []string {
	var ids []string
	for _, item := range data.Items() {
		ids = append(ids, item.ID)
	}
	return ids
}
