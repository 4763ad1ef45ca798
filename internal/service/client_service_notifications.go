// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/legacy-keeper/internal/adapter"
	"github.com/MKhiriev/legacy-keeper/internal/app"
	"github.com/MKhiriev/legacy-keeper/internal/query"
	"github.com/MKhiriev/legacy-keeper/models"
)

// DefaultNotificationsLimit is the page fetched by Refresh and Poll.
const DefaultNotificationsLimit = 40

// NotificationOption configures a NotificationCenter.
type NotificationOption func(*notificationCenter)

// WithVisibility makes Poll skip while visible reports false.
func WithVisibility(visible func() bool) NotificationOption {
	return func(c *notificationCenter) {
		if visible != nil {
			c.visible = visible
		}
	}
}

// WithAuthCheck makes Poll and Refresh skip while authenticated reports
// false.
func WithAuthCheck(authenticated func() bool) NotificationOption {
	return func(c *notificationCenter) {
		if authenticated != nil {
			c.authenticated = authenticated
		}
	}
}

type notificationCenter struct {
	Deps
	api   adapter.NotificationsAPI
	limit int

	visible       func() bool
	authenticated func() bool
	polling       atomic.Bool

	mu     sync.Mutex
	items  []models.Notification
	unread int
	latest time.Time
	// gen changes on every replacement of the list; results requested
	// under an older generation are dropped.
	gen uint64
}

func NewNotificationCenter(d Deps, api adapter.NotificationsAPI, limit int, opts ...NotificationOption) NotificationCenter {
	if limit <= 0 {
		limit = DefaultNotificationsLimit
	}
	c := &notificationCenter{
		Deps:          d,
		api:           api,
		limit:         limit,
		visible:       func() bool { return true },
		authenticated: func() bool { return true },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *notificationCenter) Poll(ctx context.Context) {
	if !c.authenticated() || !c.visible() {
		return
	}
	if !c.polling.CompareAndSwap(false, true) {
		return
	}
	defer c.polling.Store(false)

	c.mu.Lock()
	since, gen := c.latest, c.gen
	c.mu.Unlock()

	feed, err := c.api.ListNotifications(ctx, models.NotificationsQueryParams{Since: since, Limit: c.limit})
	if err != nil {
		c.logger.Debug().Err(err).Str("func", "notificationCenter.Poll").Msg("notification poll failed")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	if len(feed.Items) > 0 {
		c.items = mergeNotifications(c.items, feed.Items)
		c.latest = newestCreatedAt(c.items)
	}
	c.unread = feed.UnreadCount
}

func (c *notificationCenter) Refresh(ctx context.Context) error {
	if !c.authenticated() {
		return nil
	}

	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	feed, err := c.api.ListNotifications(ctx, models.NotificationsQueryParams{Limit: c.limit})
	if err != nil {
		return c.failDefault("notificationCenter.Refresh", app.NoticeNotificationsLoad, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return nil
	}
	c.replaceLocked(sortNewestFirst(feed.Items), feed.UnreadCount)
	return nil
}

// replaceLocked installs items and starts a new generation.
func (c *notificationCenter) replaceLocked(items []models.Notification, unread int) {
	c.items = items
	c.unread = unread
	c.latest = newestCreatedAt(items)
	c.gen++
}

func (c *notificationCenter) Notifications() []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

func (c *notificationCenter) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unread
}

func (c *notificationCenter) Dismiss(ctx context.Context, notificationID string) error {
	c.mu.Lock()
	idx := slices.IndexFunc(c.items, func(n models.Notification) bool { return n.ID == notificationID })
	if idx >= 0 {
		if !c.items[idx].IsRead {
			c.unread = max(c.unread-1, 0)
		}
		c.items = slices.Delete(slices.Clone(c.items), idx, idx+1)
	}
	c.mu.Unlock()

	if err := c.api.DismissNotification(ctx, notificationID); err != nil {
		err = c.failDefault("notificationCenter.Dismiss", app.NoticeDismissFailed, err)
		c.refreshQuietly(ctx)
		return err
	}
	return nil
}

func (c *notificationCenter) Clear(ctx context.Context) error {
	c.mu.Lock()
	previous := c.items
	c.replaceLocked(nil, 0)
	c.mu.Unlock()

	if err := c.api.ClearNotifications(ctx); err != nil {
		c.mu.Lock()
		c.replaceLocked(previous, countUnread(previous))
		c.mu.Unlock()
		return c.failDefault("notificationCenter.Clear", app.NoticeClearFailed, err)
	}
	return nil
}

func (c *notificationCenter) MarkRead(ctx context.Context, notificationID string) error {
	c.mu.Lock()
	idx := slices.IndexFunc(c.items, func(n models.Notification) bool { return n.ID == notificationID })
	if idx >= 0 && !c.items[idx].IsRead {
		c.items = slices.Clone(c.items)
		c.items[idx].IsRead = true
		c.unread = max(c.unread-1, 0)
	}
	c.mu.Unlock()

	if err := c.api.MarkNotificationRead(ctx, notificationID); err != nil {
		c.refreshQuietly(ctx)
		return mapAdapterError(err)
	}
	return nil
}

func (c *notificationCenter) MarkAllRead(ctx context.Context) error {
	c.mu.Lock()
	previous := c.items
	read := make([]models.Notification, len(previous))
	for i, n := range previous {
		n.IsRead = true
		read[i] = n
	}
	c.items = read
	c.unread = 0
	c.mu.Unlock()

	if err := c.api.MarkAllNotificationsRead(ctx); err != nil {
		c.mu.Lock()
		c.replaceLocked(previous, countUnread(previous))
		c.mu.Unlock()
		return mapAdapterError(err)
	}
	return nil
}

func (c *notificationCenter) Preferences(ctx context.Context) (models.NotificationPreferences, error) {
	return query.Query(ctx, c.cache, keyNotificationPreferences,
		func(ctx context.Context) (models.NotificationPreferences, error) {
			prefs, err := c.api.NotificationPreferences(ctx)
			return prefs, mapAdapterError(err)
		}, query.DefaultOptions())
}

func (c *notificationCenter) UpdatePreferences(ctx context.Context, upd models.NotificationPreferencesUpdate) (models.NotificationPreferences, error) {
	prefs, err := c.api.UpdateNotificationPreferences(ctx, upd)
	if err != nil {
		return models.NotificationPreferences{}, c.failDefault("notificationCenter.UpdatePreferences", app.NoticePreferencesFailed, err)
	}

	c.cache.SetQueryData(keyNotificationPreferences, prefs)
	c.notifier.Success(app.NoticePreferencesSaved, "")
	return prefs, nil
}

func (c *notificationCenter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.replaceLocked(nil, 0)
}

// refreshQuietly reloads the list after a failed optimistic change.
func (c *notificationCenter) refreshQuietly(ctx context.Context) {
	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	feed, err := c.api.ListNotifications(ctx, models.NotificationsQueryParams{Limit: c.limit})
	if err != nil {
		c.logger.Debug().Err(err).Str("func", "notificationCenter.refreshQuietly").Msg("notification refresh failed")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen == c.gen {
		c.replaceLocked(sortNewestFirst(feed.Items), feed.UnreadCount)
	}
}

// mergeNotifications keys current and incoming by id, incoming winning,
// and returns them newest first.
func mergeNotifications(current, incoming []models.Notification) []models.Notification {
	byID := make(map[string]int, len(current)+len(incoming))
	merged := make([]models.Notification, 0, len(current)+len(incoming))
	for _, list := range [][]models.Notification{current, incoming} {
		for _, n := range list {
			if i, ok := byID[n.ID]; ok {
				merged[i] = n
				continue
			}
			byID[n.ID] = len(merged)
			merged = append(merged, n)
		}
	}
	return sortNewestFirst(merged)
}

func sortNewestFirst(items []models.Notification) []models.Notification {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b models.Notification) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}

func newestCreatedAt(items []models.Notification) time.Time {
	var newest time.Time
	for _, n := range items {
		if n.CreatedAt.After(newest) {
			newest = n.CreatedAt
		}
	}
	return newest
}

func countUnread(items []models.Notification) int {
	n := 0
	for _, it := range items {
		if !it.IsRead {
			n++
		}
	}
	return n
}
