package sandbox

import (
	"slices"
	"time"

	"github.com/MKhiriev/legacy-keeper/models"
)

const (
	kindUpload     = "upload"
	kindMemberJoin = "member_joined"
	kindSecurity   = "security"
)

// DefaultNotificationsLimit caps a feed request without a limit.
const DefaultNotificationsLimit = 50

func defaultPreferences() models.NotificationPreferences {
	return models.NotificationPreferences{
		InAppEnabled:   true,
		NewUploads:     true,
		Comments:       true,
		TreeUpdates:    true,
		SecurityAlerts: true,
		MemberJoins:    true,
	}
}

func (s *Sandbox) preferencesLocked(userID string) models.NotificationPreferences {
	if p, ok := s.preferences[userID]; ok {
		return p
	}
	return defaultPreferences()
}

func wants(p models.NotificationPreferences, kind string) bool {
	if !p.InAppEnabled {
		return false
	}
	switch kind {
	case kindUpload:
		return p.NewUploads
	case kindMemberJoin:
		return p.MemberJoins
	case kindSecurity:
		return p.SecurityAlerts
	default:
		return true
	}
}

// notifyLocked delivers a copy of n to userID unless their preferences
// mute its kind.
func (s *Sandbox) notifyLocked(userID string, n notificationRecord) {
	if !wants(s.preferencesLocked(userID), n.kind) {
		return
	}
	n.id = s.ids.Generate()
	n.createdAt = s.now()
	s.notifications[userID] = append(s.notifications[userID], &n)
}

// notifyVaultLocked notifies every active member of vaultID except actorID.
func (s *Sandbox) notifyVaultLocked(vaultID, actorID string, n notificationRecord) {
	n.vaultID = vaultID
	if acc, ok := s.accounts[actorID]; ok {
		n.actorName = acc.fullName
	}
	for _, m := range s.vaultMembersLocked(vaultID) {
		if m.active && m.userID != actorID {
			s.notifyLocked(m.userID, n)
		}
	}
}

// Notifications returns the feed of userID newest first. A non-zero since
// keeps only items created after it. UnreadCount always covers the whole
// feed.
func (s *Sandbox) Notifications(userID string, since time.Time, limit int) models.APINotificationsResponse {
	if limit <= 0 {
		limit = DefaultNotificationsLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.notifications[userID]
	unread := 0
	items := make([]models.APINotification, 0, min(limit, len(all)))
	for i := len(all) - 1; i >= 0; i-- {
		n := all[i]
		if !n.read {
			unread++
		}
		if len(items) == limit || (!since.IsZero() && !n.createdAt.After(since)) {
			continue
		}
		items = append(items, apiNotification(n))
	}

	return models.APINotificationsResponse{
		Items:       items,
		UnreadCount: unread,
		ServerTime:  formatTime(s.now()),
	}
}

func apiNotification(n *notificationRecord) models.APINotification {
	out := models.APINotification{
		ID:        n.id,
		Title:     n.title,
		Message:   n.message,
		Type:      n.kind,
		IsRead:    n.read,
		Route:     n.route,
		ActorName: n.actorName,
		CreatedAt: formatTime(n.createdAt),
	}
	if n.vaultID != "" {
		out.VaultID = ptr(n.vaultID)
	}
	return out
}

func (s *Sandbox) notificationLocked(userID, id string) (int, error) {
	idx := slices.IndexFunc(s.notifications[userID], func(n *notificationRecord) bool { return n.id == id })
	if idx < 0 {
		return 0, ErrNotFound
	}
	return idx, nil
}

// DismissNotification deletes one notification.
func (s *Sandbox) DismissNotification(userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.notificationLocked(userID, id)
	if err != nil {
		return err
	}
	s.notifications[userID] = slices.Delete(s.notifications[userID], idx, idx+1)
	return nil
}

// ClearNotifications deletes the whole feed.
func (s *Sandbox) ClearNotifications(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.notifications, userID)
}

// MarkNotificationRead marks one notification read.
func (s *Sandbox) MarkNotificationRead(userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.notificationLocked(userID, id)
	if err != nil {
		return err
	}
	s.notifications[userID][idx].read = true
	return nil
}

// MarkAllNotificationsRead marks the whole feed read.
func (s *Sandbox) MarkAllNotificationsRead(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notifications[userID] {
		n.read = true
	}
}

// NotificationPreferences returns the settings of userID.
func (s *Sandbox) NotificationPreferences(userID string) models.NotificationPreferences {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.preferencesLocked(userID)
}

// UpdateNotificationPreferences applies the non-nil fields of upd.
func (s *Sandbox) UpdateNotificationPreferences(userID string, upd models.NotificationPreferencesUpdate) models.NotificationPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.preferencesLocked(userID)
	set := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	set(&p.InAppEnabled, upd.InAppEnabled)
	set(&p.PushEnabled, upd.PushEnabled)
	set(&p.NewUploads, upd.NewUploads)
	set(&p.Comments, upd.Comments)
	set(&p.TreeUpdates, upd.TreeUpdates)
	set(&p.SecurityAlerts, upd.SecurityAlerts)
	set(&p.MemberJoins, upd.MemberJoins)

	s.preferences[userID] = p
	return p
}

// Notify delivers a free-form notification to userID. The sandbox uses it
// for seed data and tests.
func (s *Sandbox) Notify(userID, title, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifyLocked(userID, notificationRecord{title: title, message: message, kind: "system", route: "/"})
}
