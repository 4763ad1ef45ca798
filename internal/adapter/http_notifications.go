package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/legacy-keeper/models"
)

const pathNotifications = "notifications/"

// ListNotifications implements [NotificationsAPI].
func (h *httpServerAdapter) ListNotifications(ctx context.Context, params models.NotificationsQueryParams) (models.NotificationFeed, error) {
	var out models.APINotificationsResponse
	if err := h.getJSON(ctx, pathNotifications, params.Values(), &out); err != nil {
		return models.NotificationFeed{}, err
	}

	feed := models.NotificationFeed{
		Items:       mapSlice(out.Items, h.mapper.notification),
		UnreadCount: out.UnreadCount,
	}
	feed.ServerTime, _ = parseTime(out.ServerTime)
	return feed, nil
}

// DismissNotification implements [NotificationsAPI].
func (h *httpServerAdapter) DismissNotification(ctx context.Context, notificationID string) error {
	_, err := h.send(ctx, http.MethodDelete, pathNotifications+notificationID+"/", nil)
	return err
}

// ClearNotifications implements [NotificationsAPI].
func (h *httpServerAdapter) ClearNotifications(ctx context.Context) error {
	_, err := h.send(ctx, http.MethodDelete, pathNotifications, nil)
	return err
}

// MarkNotificationRead implements [NotificationsAPI].
func (h *httpServerAdapter) MarkNotificationRead(ctx context.Context, notificationID string) error {
	_, err := h.send(ctx, http.MethodPost, pathNotifications+notificationID+"/read/", nil)
	return err
}

// MarkAllNotificationsRead implements [NotificationsAPI].
func (h *httpServerAdapter) MarkAllNotificationsRead(ctx context.Context) error {
	_, err := h.send(ctx, http.MethodPost, pathNotifications+"read-all/", nil)
	return err
}

// NotificationPreferences implements [NotificationsAPI].
func (h *httpServerAdapter) NotificationPreferences(ctx context.Context) (models.NotificationPreferences, error) {
	var out models.NotificationPreferences
	if err := h.getJSON(ctx, pathNotifications+"preferences/", nil, &out); err != nil {
		return models.NotificationPreferences{}, err
	}
	return out, nil
}

// UpdateNotificationPreferences implements [NotificationsAPI].
func (h *httpServerAdapter) UpdateNotificationPreferences(ctx context.Context, upd models.NotificationPreferencesUpdate) (models.NotificationPreferences, error) {
	var out models.NotificationPreferences
	if err := h.sendJSON(ctx, http.MethodPatch, pathNotifications+"preferences/", upd, &out); err != nil {
		return models.NotificationPreferences{}, err
	}
	return out, nil
}
