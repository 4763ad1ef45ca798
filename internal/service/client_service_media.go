// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/legacy-keeper/internal/adapter"
	"github.com/MKhiriev/legacy-keeper/internal/app"
	"github.com/MKhiriev/legacy-keeper/internal/query"
	"github.com/MKhiriev/legacy-keeper/models"
)

// DefaultMediaPageSize is the page size of media listings.
const DefaultMediaPageSize = 20

// bulkDeleteConcurrency bounds parallel deletes of one BulkDelete.
const bulkDeleteConcurrency = 4

type mediaList = query.InfiniteData[models.MediaItem]

type clientMediaService struct {
	Deps
	api      adapter.MediaAPI
	pageSize int
}

func NewClientMediaService(d Deps, api adapter.MediaAPI, pageSize int) ClientMediaService {
	if pageSize <= 0 {
		pageSize = DefaultMediaPageSize
	}
	return &clientMediaService{Deps: d, api: api, pageSize: pageSize}
}

func (m *clientMediaService) List(ctx context.Context, params models.MediaQueryParams) (mediaList, error) {
	vaultID, err := m.vault()
	if err != nil {
		return mediaList{}, err
	}

	return query.InfiniteQuery[models.MediaItem](ctx, m.cache, mediaListKey(vaultID, params),
		func(ctx context.Context, page int) (models.Page[models.MediaItem], error) {
			p, err := m.api.ListMedia(ctx, vaultID, params, page, m.pageSize)
			return p, mapAdapterError(err)
		}, query.DefaultOptions())
}

func (m *clientMediaService) NextPage(ctx context.Context, params models.MediaQueryParams) (mediaList, error) {
	vaultID, err := m.vault()
	if err != nil {
		return mediaList{}, err
	}

	data, err := query.FetchNextPage[models.MediaItem](ctx, m.cache, mediaListKey(vaultID, params))
	if errors.Is(err, query.ErrNotLoaded) {
		return m.List(ctx, params)
	}
	return data, err
}

func (m *clientMediaService) Favorites(ctx context.Context, params models.MediaQueryParams) (mediaList, error) {
	vaultID, err := m.vault()
	if err != nil {
		return mediaList{}, err
	}

	return query.InfiniteQuery[models.MediaItem](ctx, m.cache, mediaFavoritesKey(vaultID, params),
		func(ctx context.Context, page int) (models.Page[models.MediaItem], error) {
			p, err := m.api.ListFavoriteMedia(ctx, vaultID, params, page, m.pageSize)
			return p, mapAdapterError(err)
		}, query.DefaultOptions())
}

func (m *clientMediaService) NextFavoritesPage(ctx context.Context, params models.MediaQueryParams) (mediaList, error) {
	vaultID, err := m.vault()
	if err != nil {
		return mediaList{}, err
	}

	data, err := query.FetchNextPage[models.MediaItem](ctx, m.cache, mediaFavoritesKey(vaultID, params))
	if errors.Is(err, query.ErrNotLoaded) {
		return m.Favorites(ctx, params)
	}
	return data, err
}

func (m *clientMediaService) Filters(ctx context.Context, params models.MediaQueryParams) (models.MediaFilterSummary, error) {
	vaultID, err := m.vault()
	if err != nil {
		return models.MediaFilterSummary{}, err
	}

	return query.Query(ctx, m.cache, mediaFiltersKey(vaultID, params),
		func(ctx context.Context) (models.MediaFilterSummary, error) {
			summary, err := m.api.MediaFilters(ctx, vaultID, params.WithoutSort())
			return summary, mapAdapterError(err)
		}, query.DefaultOptions())
}

func (m *clientMediaService) Get(ctx context.Context, mediaID string) (models.MediaItem, error) {
	if mediaID == "" {
		return models.MediaItem{}, fmt.Errorf("%w: empty media id", ErrValidation)
	}

	return query.Query(ctx, m.cache, mediaItemKey(mediaID),
		func(ctx context.Context) (models.MediaItem, error) {
			item, err := m.api.GetMedia(ctx, mediaID)
			return item, mapAdapterError(err)
		}, query.DefaultOptions())
}

func (m *clientMediaService) Upload(ctx context.Context, req models.UploadMediaRequest) (models.MediaItem, error) {
	vaultID, err := m.vault()
	if err != nil {
		return models.MediaItem{}, err
	}
	if err = m.validate(ctx, app.NoticeMemoryPreserveFailed, req); err != nil {
		return models.MediaItem{}, err
	}

	item, err := m.api.UploadMedia(ctx, vaultID, req)
	if err != nil {
		return models.MediaItem{}, m.fail("clientMediaService.Upload", app.NoticeMemoryPreserveFailed, app.NoticeUploadFallback, err)
	}

	m.invalidate(keyMedia)
	m.notifier.Success(app.NoticeMemoryPreserved, item.Title)
	return item, nil
}

func (m *clientMediaService) Update(ctx context.Context, req models.UpdateMediaRequest) (models.MediaItem, error) {
	if err := m.validate(ctx, app.NoticeMemoryUpdateFailed, req); err != nil {
		return models.MediaItem{}, err
	}

	item, err := m.api.UpdateMedia(ctx, req)
	if err != nil {
		return models.MediaItem{}, m.failDefault("clientMediaService.Update", app.NoticeMemoryUpdateFailed, err)
	}

	m.cache.SetQueriesData(keyMedia, replaceItem(item))
	m.invalidate(keyMedia)
	m.notifier.Success(app.NoticeMemoryUpdated, item.Title)
	return item, nil
}

func (m *clientMediaService) ToggleFavorite(ctx context.Context, mediaID string, isFavorite bool) (models.FavoriteState, error) {
	state, err := query.Mutate(ctx, m.cache, query.Mutation[models.FavoriteState]{
		Patches: []query.Patch{
			{Prefix: keyMedia, Update: setFavorite(mediaID, isFavorite)},
			{Prefix: keyMediaFavorites, Update: favoritesPatch(mediaID, isFavorite)},
		},
		Call: func(ctx context.Context) (models.FavoriteState, error) {
			return m.api.ToggleFavorite(ctx, mediaID, isFavorite)
		},
		Reconcile: func(c *query.Client, state models.FavoriteState) {
			c.SetQueriesData(keyMedia, setFavorite(state.MediaID, state.IsFavorite))
			c.Invalidate(keyMediaFavorites)
		},
	})
	if err != nil {
		return models.FavoriteState{}, m.failDefault("clientMediaService.ToggleFavorite", app.NoticeFavoriteFailed, err)
	}
	return state, nil
}

func (m *clientMediaService) Delete(ctx context.Context, mediaID string) error {
	_, err := query.Mutate(ctx, m.cache, query.Mutation[struct{}]{
		Patches: []query.Patch{
			{Prefix: keyMedia, Update: removeItems(mediaID)},
			{Prefix: keyMediaFavorites, Update: removeItems(mediaID)},
		},
		Call: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, m.api.DeleteMedia(ctx, mediaID)
		},
		Reconcile: func(c *query.Client, _ struct{}) {
			c.Invalidate(keyMedia)
			c.Invalidate(keyMediaFavorites)
		},
	})
	if err != nil {
		return m.failDefault("clientMediaService.Delete", app.NoticeArtifactRemoveFailed, err)
	}

	m.notifier.Success(app.NoticeArtifactRemoved, "")
	return nil
}

// BulkDelete removes every id from the cached listings at once, then
// deletes them independently. When some deletes fail the listings are
// restored and the ids that were deleted are removed again, so only the
// failed items reappear.
func (m *clientMediaService) BulkDelete(ctx context.Context, ids []string) ([]string, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	var deleted []string
	_, err := query.Mutate(ctx, m.cache, query.Mutation[[]string]{
		Patches: []query.Patch{
			{Prefix: keyMedia, Update: removeItems(ids...)},
			{Prefix: keyMediaFavorites, Update: removeItems(ids...)},
		},
		Call: func(ctx context.Context) ([]string, error) {
			var err error
			deleted, err = m.deleteEach(ctx, ids)
			return deleted, err
		},
		Reconcile: func(c *query.Client, _ []string) {
			c.Invalidate(keyMedia)
			c.Invalidate(keyMediaFavorites)
		},
		Rollback: func(c *query.Client, snaps []query.Snapshot) {
			c.Restore(snaps)
			if len(deleted) > 0 {
				c.SetQueriesData(keyMedia, removeItems(deleted...))
				c.SetQueriesData(keyMediaFavorites, removeItems(deleted...))
			}
			c.Invalidate(keyMedia)
			c.Invalidate(keyMediaFavorites)
		},
	})
	if err != nil {
		var bulkErr *BulkDeleteError
		if errors.As(err, &bulkErr) {
			m.logger.Debug().Err(err).Str("func", "clientMediaService.BulkDelete").Msg(app.NoticeBatchPurgeFailed)
			m.notifier.Error(app.NoticeBatchPurgeFailed, err.Error())
			return deleted, err
		}
		return deleted, m.failDefault("clientMediaService.BulkDelete", app.NoticeBatchPurgeFailed, err)
	}

	m.notifier.Success(fmt.Sprintf(app.NoticeArtifactsRemovedFmt, len(deleted)), "")
	return deleted, nil
}

// deleteEach deletes ids in parallel. One failure does not cancel the
// others. deleted keeps the order of ids.
func (m *clientMediaService) deleteEach(ctx context.Context, ids []string) (deleted []string, err error) {
	var (
		mu     sync.Mutex
		failed = make(map[string]error)
		g      errgroup.Group
	)
	g.SetLimit(bulkDeleteConcurrency)

	for _, id := range ids {
		g.Go(func() error {
			if err := m.api.DeleteMedia(ctx, id); err != nil {
				mu.Lock()
				failed[id] = mapAdapterError(err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, id := range ids {
		if _, ok := failed[id]; !ok {
			deleted = append(deleted, id)
		}
	}
	if len(failed) > 0 {
		return deleted, &BulkDeleteError{Failed: failed}
	}
	return deleted, nil
}

func (m *clientMediaService) Download(ctx context.Context, item models.MediaItem, w io.Writer) (int64, error) {
	fileURL := primaryFileURL(item)
	if fileURL == "" {
		return 0, m.failDefault("clientMediaService.Download", app.NoticeDownloadFailed, adapter.ErrNoFileURL)
	}

	n, err := m.api.DownloadFile(ctx, fileURL, w)
	if err != nil {
		return n, m.failDefault("clientMediaService.Download", app.NoticeDownloadFailed, err)
	}

	m.notifier.Success(app.NoticeDownloaded, item.Title)
	return n, nil
}

func primaryFileURL(item models.MediaItem) string {
	if item.FileURL != "" {
		return item.FileURL
	}
	for _, f := range item.Files {
		if f.IsPrimary && f.FileURL != "" {
			return f.FileURL
		}
	}
	for _, f := range item.Files {
		if f.FileURL != "" {
			return f.FileURL
		}
	}
	return ""
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// setFavorite flags mediaID in listings and in its detail entry.
func setFavorite(mediaID string, isFavorite bool) func(query.Key, any) any {
	return func(_ query.Key, data any) any {
		switch v := data.(type) {
		case mediaList:
			return v.MapItems(func(item models.MediaItem) (models.MediaItem, bool) {
				if item.ID == mediaID {
					item.IsFavorite = isFavorite
				}
				return item, true
			})
		case models.MediaItem:
			if v.ID == mediaID {
				v.IsFavorite = isFavorite
			}
			return v
		}
		return data
	}
}

// favoritesPatch flags the item when favoriting and drops it from the
// favorites listings when unfavoriting.
func favoritesPatch(mediaID string, isFavorite bool) func(query.Key, any) any {
	if isFavorite {
		return setFavorite(mediaID, true)
	}
	return query.Update(func(_ query.Key, data mediaList) mediaList {
		return data.MapItems(func(item models.MediaItem) (models.MediaItem, bool) {
			return item, item.ID != mediaID
		})
	})
}

// removeItems drops ids from every page of a listing. Each page of a
// listing that held some of them reports a total lowered by that many.
func removeItems(ids ...string) func(query.Key, any) any {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	return query.Update(func(_ query.Key, data mediaList) mediaList {
		removed := 0
		for _, item := range data.Items() {
			if _, ok := drop[item.ID]; ok {
				removed++
			}
		}
		if removed == 0 {
			return data
		}

		return data.MapPages(func(p models.Page[models.MediaItem]) models.Page[models.MediaItem] {
			items := make([]models.MediaItem, 0, len(p.Items))
			for _, item := range p.Items {
				if _, ok := drop[item.ID]; !ok {
					items = append(items, item)
				}
			}
			p.Items = items
			p.TotalCount = max(p.TotalCount-removed, 0)
			return p
		})
	})
}

// replaceItem swaps the cached copies of item for the server version.
func replaceItem(item models.MediaItem) func(query.Key, any) any {
	return func(_ query.Key, data any) any {
		switch v := data.(type) {
		case mediaList:
			return v.MapItems(func(cur models.MediaItem) (models.MediaItem, bool) {
				if cur.ID == item.ID {
					return item, true
				}
				return cur, true
			})
		case models.MediaItem:
			if v.ID == item.ID {
				return item
			}
			return v
		}
		return data
	}
}
