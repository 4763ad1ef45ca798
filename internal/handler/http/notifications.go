package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/legacy-keeper/internal/utils"
	"github.com/MKhiriev/legacy-keeper/models"
)

// listNotifications serves the feed. since is an RFC 3339 timestamp; a
// malformed one is a field error rather than silently ignored.
func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var since time.Time
	if raw := q.Get("since"); raw != "" {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			utils.WriteFieldErrors(w, map[string][]string{"since": {"Datetime has wrong format."}})
			return
		}
		since = t
	}
	limit, _ := strconv.Atoi(q.Get("limit"))

	utils.WriteJSON(w, h.sandbox.Notifications(userID(r), since, limit), http.StatusOK)
}

func (h *Handler) clearNotifications(w http.ResponseWriter, r *http.Request) {
	h.sandbox.ClearNotifications(userID(r))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) dismissNotification(w http.ResponseWriter, r *http.Request) {
	if err := h.sandbox.DismissNotification(userID(r), chi.URLParam(r, "notificationID")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	if err := h.sandbox.MarkNotificationRead(userID(r), chi.URLParam(r, "notificationID")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) markAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	h.sandbox.MarkAllNotificationsRead(userID(r))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) notificationPreferences(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.sandbox.NotificationPreferences(userID(r)), http.StatusOK)
}

func (h *Handler) updateNotificationPreferences(w http.ResponseWriter, r *http.Request) {
	var upd models.NotificationPreferencesUpdate
	if !decodeJSON(w, r, &upd) {
		return
	}
	utils.WriteJSON(w, h.sandbox.UpdateNotificationPreferences(userID(r), upd), http.StatusOK)
}
