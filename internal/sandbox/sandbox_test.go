package sandbox

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/legacy-keeper/models"
)

// testClock advances by one second on every reading so records get
// distinct, ordered timestamps.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestSandbox(t *testing.T) (*Sandbox, *testClock) {
	t.Helper()
	clock := newTestClock()
	return New(WithClock(clock.Now)), clock
}

func register(t *testing.T, s *Sandbox, email, name string) models.APIUser {
	t.Helper()
	u, err := s.Register(models.Registration{Email: email, Password: "password-1", FullName: name})
	require.NoError(t, err)
	return u
}

func upload(t *testing.T, s *Sandbox, userID, vaultID, title, date string, tags ...string) models.APIMediaItem {
	t.Helper()
	item, err := s.CreateMedia(userID, MediaUpload{
		VaultID:   vaultID,
		Title:     title,
		DateTaken: date,
		Tags:      tags,
		Files:     []models.UploadFile{{Name: title + ".jpg", MimeType: "image/jpeg", Content: []byte(title)}},
	})
	require.NoError(t, err)
	return item
}

// joinAs registers a second account into the vault of owner with role.
func joinAs(t *testing.T, s *Sandbox, owner models.APIUser, email string, role models.UserRole) models.APIUser {
	t.Helper()
	inv, err := s.CreateShareableInvite(owner.ID, *owner.ActiveVaultID, models.APIShareableInviteRequest{
		Role:      role,
		ExpiresAt: "2030-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	u, err := s.Register(models.Registration{Email: email, Password: "password-1", FullName: "Guest " + email, JoinToken: inv.Token})
	require.NoError(t, err)
	return u
}

func TestRegister_CreatesOwnVault(t *testing.T) {
	s, _ := newTestSandbox(t)

	u := register(t, s, " Ada@Example.com ", "Ada Keeper")

	assert.Equal(t, "ada@example.com", u.Email)
	require.NotNil(t, u.ActiveVaultID)
	assert.Equal(t, string(models.RoleAdmin), u.Role)

	vaults := s.Vaults(u.ID)
	require.Len(t, vaults, 1)
	assert.Equal(t, "Ada Keeper's Vault", vaults[0].Name)
	assert.Equal(t, "Keeper", vaults[0].FamilyName)
	assert.True(t, vaults[0].IsOwner)
	assert.Equal(t, 1, vaults[0].MemberCount)
}

func TestRegister_Validation(t *testing.T) {
	s, _ := newTestSandbox(t)

	_, err := s.Register(models.Registration{Email: "nope", Password: "short"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{msgInvalidEmail}, verr.Fields["email"])
	assert.Contains(t, verr.Fields, "password")
	assert.Equal(t, []string{msgRequired}, verr.Fields["fullName"])
}

func TestRegister_EmailTaken(t *testing.T) {
	s, _ := newTestSandbox(t)
	register(t, s, "ada@example.com", "Ada")

	_, err := s.Register(models.Registration{Email: "ADA@example.com", Password: "password-2", FullName: "Other"})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	s, _ := newTestSandbox(t)
	u := register(t, s, "ada@example.com", "Ada")

	got, err := s.Authenticate(models.Credentials{Email: "ada@example.com", Password: "password-1"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.Authenticate(models.Credentials{Email: "ada@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Authenticate(models.Credentials{Email: "who@example.com", Password: "password-1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateAccount(t *testing.T) {
	s, _ := newTestSandbox(t)
	u := register(t, s, "ada@example.com", "Ada")

	name, bio := "Ada Lovelace", "Keeps the albums"
	got, err := s.UpdateAccount(u.ID, &name, &bio)
	require.NoError(t, err)
	assert.Equal(t, name, got.FullName)
	assert.Equal(t, bio, got.Bio)

	empty := " "
	_, err = s.UpdateAccount(u.ID, &empty, nil)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestListMedia_OrderingAndFilters(t *testing.T) {
	s, _ := newTestSandbox(t)
	u := register(t, s, "ada@example.com", "Ada")
	vaultID := *u.ActiveVaultID

	a := upload(t, s, u.ID, vaultID, "Beach", "1979-08-11", "summer")
	b := upload(t, s, u.ID, vaultID, "Attic", "1991-12-25", "christmas")
	c := upload(t, s, u.ID, vaultID, "Cabin", "1995-01-02", "summer", "winter")

	ids := func(items []models.APIMediaItem) []string {
		out := make([]string, 0, len(items))
		for _, i := range items {
			out = append(out, i.ID)
		}
		return out
	}

	tests := []struct {
		name   string
		filter MediaFilter
		want   []string
	}{
		{"newest upload first by default", MediaFilter{}, []string{c.ID, b.ID, a.ID}},
		{"oldest upload first", MediaFilter{Ordering: "created_at"}, []string{a.ID, b.ID, c.ID}},
		{"title", MediaFilter{Ordering: "title"}, []string{b.ID, a.ID, c.ID}},
		{"date taken descending", MediaFilter{Ordering: "-date_taken"}, []string{c.ID, b.ID, a.ID}},
		{"search", MediaFilter{Search: "cab"}, []string{c.ID}},
		{"tag", MediaFilter{Tags: []string{"SUMMER"}}, []string{c.ID, a.ID}},
		{"era", MediaFilter{Era: "1990s"}, []string{c.ID, b.ID}},
		{"date range", MediaFilter{DateFrom: "1980-01-01", DateTo: "1992-01-01"}, []string{b.ID}},
		{"type mismatch", MediaFilter{Types: []models.MediaType{models.MediaVideo}}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := s.ListMedia(u.ID, vaultID, tt.filter, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(items))
		})
	}
}

func TestListMedia_Access(t *testing.T) {
	s, _ := newTestSandbox(t)
	u := register(t, s, "ada@example.com", "Ada")
	other := register(t, s, "bob@example.com", "Bob")

	_, err := s.ListMedia(u.ID, "", MediaFilter{}, false)
	assert.ErrorIs(t, err, ErrVaultRequired)

	_, err = s.ListMedia(other.ID, *u.ActiveVaultID, MediaFilter{}, false)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = s.ListMedia(u.ID, "missing", MediaFilter{}, false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPrivateMediaIsHiddenFromOthers(t *testing.T) {
	s, _ := newTestSandbox(t)
	owner := register(t, s, "ada@example.com", "Ada")
	guest := joinAs(t, s, owner, "bob@example.com", models.RoleContributor)
	vaultID := *owner.ActiveVaultID

	private, err := s.CreateMedia(owner.ID, MediaUpload{
		VaultID:    vaultID,
		Visibility: "PRIVATE",
		Files:      []models.UploadFile{{Name: "diary.pdf", MimeType: "application/pdf", Content: []byte("x")}},
	})
	require.NoError(t, err)
	assert.Equal(t, "PRIVATE", private.Visibility)
	assert.Equal(t, models.MediaDocument, private.MediaType)
	assert.Equal(t, "diary.pdf", private.Title)

	items, err := s.ListMedia(guest.ID, vaultID, MediaFilter{}, false)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = s.GetMedia(guest.ID, private.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateMedia_Rules(t *testing.T) {
	s, _ := newTestSandbox(t)
	owner := register(t, s, "ada@example.com", "Ada")
	viewer := joinAs(t, s, owner, "bob@example.com", models.RoleViewer)
	vaultID := *owner.ActiveVaultID
	file := models.UploadFile{Name: "a.jpg", MimeType: "image/jpeg", Content: []byte("a")}

	_, err := s.CreateMedia(owner.ID, MediaUpload{VaultID: vaultID})
	assert.ErrorIs(t, err, ErrFileRequired)

	many := make([]models.UploadFile, models.MaxUploadFiles+1)
	_, err = s.CreateMedia(owner.ID, MediaUpload{VaultID: vaultID, Files: many})
	assert.ErrorIs(t, err, ErrTooManyFiles)

	_, err = s.CreateMedia(owner.ID, MediaUpload{VaultID: vaultID, DateTaken: "14/06/1968", Files: []models.UploadFile{file}})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "dateTaken")

	_, err = s.CreateMedia(viewer.ID, MediaUpload{VaultID: vaultID, Files: []models.UploadFile{file}})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateMedia(t *testing.T) {
	s, _ := newTestSandbox(t)
	owner := register(t, s, "ada@example.com", "Ada")
	contributor := joinAs(t, s, owner, "bob@example.com", models.RoleContributor)
	vaultID := *owner.ActiveVaultID
	item := upload(t, s, owner.ID, vaultID, "Beach", "1979-08-11", "summer")

	title, location := "Beach day", "Algarve"
	got, err := s.UpdateMedia(owner.ID, models.UpdateMediaRequest{
		ID:             item.ID,
		Title:          &title,
		Location:       &location,
		ClearDateTaken: true,
		SetTags:        true,
		Tags:           []string{"sea", "SEA", " "},
	})
	require.NoError(t, err)
	assert.Equal(t, title, got.Title)
	assert.Nil(t, got.DateTaken)
	assert.Equal(t, "Algarve", got.Metadata["location"])
	assert.Equal(t, []string{"sea"}, got.Metadata["tags"])

	_, err = s.UpdateMedia(contributor.ID, models.UpdateMediaRequest{ID: item.ID, Title: &title})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = s.UpdateMedia(owner.ID, models.UpdateMediaRequest{ID: item.ID, RemoveFileIDs: []string{item.Files[0].ID}})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDeleteMedia_RemovesFiles(t *testing.T) {
	s, _ := newTestSandbox(t)
	owner := register(t, s, "ada@example.com", "Ada")
	item := upload(t, s, owner.ID, *owner.ActiveVaultID, "Beach", "")

	f, err := s.File(owner.ID, item.Files[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("Beach"), f.Content)

	require.NoError(t, s.DeleteMedia(owner.ID, item.ID))

	_, err = s.File(owner.ID, item.Files[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteMedia(owner.ID, item.ID), ErrNotFound)
}

func TestSetFavorite_IsPerUser(t *testing.T) {
	s, _ := newTestSandbox(t)
	owner := register(t, s, "ada@example.com", "Ada")
	guest := joinAs(t, s, owner, "bob@example.com", models.RoleViewer)
	vaultID := *owner.ActiveVaultID
	item := upload(t, s, owner.ID, vaultID, "Beach", "")

	res, err := s.SetFavorite(guest.ID, item.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.APIFavoriteResponse{MediaID: item.ID, IsFavorite: true}, res)

	favs, err := s.ListMedia(guest.ID, vaultID, MediaFilter{}, true)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.True(t, favs[0].IsFavorite)

	favs, err = s.ListMedia(owner.ID, vaultID, MediaFilter{}, true)
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestMediaFilters(t *testing.T) {
	s, _ := newTestSandbox(t)
	owner := register(t, s, "ada@example.com", "Ada")
	vaultID := *owner.ActiveVaultID
	upload(t, s, owner.ID, vaultID, "Beach", "1979-08-11", "summer")
	upload(t, s, owner.ID, vaultID, "Cabin", "1995-01-02", "summer", "winter")

	summary, err := s.MediaFilters(owner.ID, vaultID, MediaFilter{})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalCount)
	assert.Equal(t, []models.FacetOption{{Value: "summer", Count: 2}, {Value: "winter", Count: 1}}, summary.Tags)
	assert.Equal(t, []models.FacetOption{{Value: "1970s", Count: 1}, {Value: "1990s", Count: 1}}, summary.Eras)
	assert.Equal(t, []models.FacetOption{{Value: "PHOTO", Count: 2}}, summary.Types)
	require.NotNil(t, summary.DateRange.Start)
	assert.Equal(t, "1979-08-11", *summary.DateRange.Start)
	assert.Equal(t, "1995-01-02", *summary.DateRange.End)
}

func TestShareableInviteLifecycle(t *testing.T) {
	s, clock := newTestSandbox(t)
	owner := register(t, s, "ada@example.com", "Ada")
	vaultID := *owner.ActiveVaultID

	inv, err := s.CreateShareableInvite(owner.ID, vaultID, models.APIShareableInviteRequest{
		Role:      models.RoleViewer,
		ExpiresAt: clock.Now().Add(time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)
	assert.Equal(t, "/join/"+inv.Token, inv.Link)
	assert.False(t, inv.IsRevoked)
	assert.False(t, inv.IsExpired)

	guest := register(t, s, "bob@example.com", "Bob")
	joined, err := s.JoinVault(guest.ID, inv.Token)
	require.NoError(t, err)
	assert.Equal(t, vaultID, joined.VaultID)
	assert.Equal(t, models.RoleViewer, joined.Role)

	again, err := s.JoinVault(guest.ID, inv.Token)
	require.NoError(t, err)
	assert.True(t, again.AlreadyMember)

	_, err = s.RevokeShareableInvite(owner.ID, inv.ID)
	require.NoError(t, err)
	_, err = s.RevokeShareableInvite(owner.ID, inv.ID)
	require.NoError(t, err)

	list, err := s.ShareableInvites(owner.ID, vaultID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsRevoked)
	assert.Equal(t, 1, list[0].JoinedCount)

	late := register(t, s, "cy@example.com", "Cy")
	_, err = s.JoinVault(late.ID, inv.Token)
	assert.ErrorIs(t, err, ErrInviteUnavailable)

	require.NoError(t, s.DeleteShareableInvite(owner.ID, inv.ID))
	assert.ErrorIs(t, s.DeleteShareableInvite(owner.ID, inv.ID), ErrNotFound)
}

func TestShareableInvite_Expiry(t *testing.T) {
	s, clock := newTestSandbox(t)
	owner := register(t, s, "ada@example.com", "Ada")
	vaultID := *owner.ActiveVaultID

	_, err := s.CreateShareableInvite(owner.ID, vaultID, models.APIShareableInviteRequest{
		Role:      models.RoleViewer,
		ExpiresAt: "2000-01-01T00:00:00Z",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "expiresAt")

	inv, err := s.CreateShareableInvite(owner.ID, vaultID, models.APIShareableInviteRequest{
		Role:      models.RoleViewer,
		ExpiresAt: clock.Now().Add(time.Minute).Format(time.RFC3339),
	})
	require.NoError(t, err)

	clock.Advance(time.Hour)

	list, err := s.ShareableInvites(owner.ID, vaultID)
	require.NoError(t, err)
	assert.True(t, list[0].IsExpired)

	guest := register(t, s, "bob@example.com", "Bob")
	_, err = s.JoinVault(guest.ID, inv.Token)
	assert.ErrorIs(t, err, ErrInviteUnavailable)
}

func TestShareableInvites_RequireAdmin(t *testing.T) {
	s, _ := newTestSandbox(t)
	owner := register(t, s, "ada@example.com", "Ada")
	contributor := joinAs(t, s, owner, "bob@example.com", models.RoleContributor)

	_, err := s.ShareableInvites(contributor.ID, *owner.ActiveVaultID)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestInviteMember_SingleUse(t *testing.T) {
	s, _ := newTestSandbox(t)
	owner := register(t, s, "ada@example.com", "Ada")
	vaultID := *owner.ActiveVaultID

	res, err := s.InviteMember(owner.ID, vaultID, models.InviteMemberRequest{Email: "bob@example.com", Role: models.RoleContributor})
	require.NoError(t, err)
	assert.Equal(t, "Invitation sent to bob@example.com", res.Message)

	members, err := s.Members(owner.ID, vaultID, MembersFilter{Active: ptr(false)})
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "bob@example.com", members[0].User.Email)

	bob := register(t, s, "bob@example.com", "Bob")
	_, err = s.JoinVault(bob.ID, res.Token)
	require.NoError(t, err)

	members, err = s.Members(owner.ID, vaultID, MembersFilter{})
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.True(t, members[1].IsActive)
	assert.Equal(t, "Bob", members[1].User.FullName)

	cy := register(t, s, "cy@example.com", "Cy")
	_, err = s.JoinVault(cy.ID, res.Token)
	assert.ErrorIs(t, err, ErrInviteUnavailable)

	_, err = s.InviteMember(owner.ID, vaultID, models.InviteMemberRequest{Email: "bob@example.com", Role: models.RoleViewer})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestMembers_RoleAndRemoval(t *testing.T) {
	s, _ := newTestSandbox(t)
	owner := register(t, s, "ada@example.com", "Ada")
	vaultID := *owner.ActiveVaultID
	guest := joinAs(t, s, owner, "bob@example.com", models.RoleViewer)

	members, err := s.Members(owner.ID, vaultID, MembersFilter{Search: "bob"})
	require.NoError(t, err)
	require.Len(t, members, 1)
	guestMembership := members[0].ID

	ownerMembers, err := s.Members(owner.ID, vaultID, MembersFilter{Search: "ada"})
	require.NoError(t, err)
	ownerMembership := ownerMembers[0].ID

	_, err = s.UpdateMemberRole(owner.ID, vaultID, guestMembership, "SUPERUSER")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	updated, err := s.UpdateMemberRole(owner.ID, vaultID, guestMembership, models.RoleContributor)
	require.NoError(t, err)
	assert.Equal(t, models.RoleContributor, updated.Role)

	assert.ErrorIs(t, s.RemoveMember(guest.ID, vaultID, ownerMembership), ErrForbidden)
	_, err = s.UpdateMemberRole(owner.ID, vaultID, ownerMembership, models.RoleViewer)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, s.RemoveMember(owner.ID, vaultID, guestMembership))
	assert.Empty(t, s.Vaults(guest.ID))

	acc, err := s.Account(guest.ID)
	require.NoError(t, err)
	assert.Nil(t, acc.ActiveVaultID)
}

func TestLeaveVault(t *testing.T) {
	s, _ := newTestSandbox(t)
	owner := register(t, s, "ada@example.com", "Ada")
	vaultID := *owner.ActiveVaultID
	guest := joinAs(t, s, owner, "bob@example.com", models.RoleViewer)

	_, err := s.LeaveVault(owner.ID, vaultID)
	assert.ErrorIs(t, err, ErrOwnerCannotLeave)

	res, err := s.LeaveVault(guest.ID, vaultID)
	require.NoError(t, err)
	assert.Equal(t, "You have left Ada's Vault", res.Message)

	_, err = s.LeaveVault(guest.ID, vaultID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTransferOwnership(t *testing.T) {
	s, _ := newTestSandbox(t)
	owner := register(t, s, "ada@example.com", "Ada")
	vaultID := *owner.ActiveVaultID
	guest := joinAs(t, s, owner, "bob@example.com", models.RoleViewer)

	members, err := s.Members(owner.ID, vaultID, MembersFilter{Search: "bob"})
	require.NoError(t, err)
	target := members[0].ID

	_, err = s.TransferOwnership(owner.ID, vaultID, models.TransferOwnershipRequest{MembershipID: target, Password: "nope-nope"})
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = s.TransferOwnership(guest.ID, vaultID, models.TransferOwnershipRequest{MembershipID: target, Password: "password-1"})
	assert.ErrorIs(t, err, ErrForbidden)

	res, err := s.TransferOwnership(owner.ID, vaultID, models.TransferOwnershipRequest{MembershipID: target, Password: "password-1"})
	require.NoError(t, err)
	assert.Equal(t, guest.ID, res.OwnerID)

	v, err := s.Vault(guest.ID, vaultID)
	require.NoError(t, err)
	assert.True(t, v.IsOwner)
	assert.Equal(t, models.RoleAdmin, *v.MyRole)

	_, err = s.LeaveVault(owner.ID, vaultID)
	assert.NoError(t, err)
}

func TestNotifications_Feed(t *testing.T) {
	s, _ := newTestSandbox(t)
	owner := register(t, s, "ada@example.com", "Ada")
	guest := joinAs(t, s, owner, "bob@example.com", models.RoleContributor)
	vaultID := *owner.ActiveVaultID

	// the join notified the owner
	feed := s.Notifications(owner.ID, time.Time{}, 0)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, "New member joined", feed.Items[0].Title)
	since, err := time.Parse(time.RFC3339Nano, feed.Items[0].CreatedAt)
	require.NoError(t, err)

	upload(t, s, guest.ID, vaultID, "Beach", "")
	upload(t, s, guest.ID, vaultID, "Cabin", "")

	feed = s.Notifications(owner.ID, since, 0)
	require.Len(t, feed.Items, 2)
	assert.Contains(t, feed.Items[0].Message, "Cabin")
	assert.Contains(t, feed.Items[1].Message, "Beach")
	assert.Equal(t, 3, feed.UnreadCount)
	assert.Equal(t, "Guest bob@example.com", feed.Items[0].ActorName)

	limited := s.Notifications(owner.ID, time.Time{}, 1)
	assert.Len(t, limited.Items, 1)
	assert.Equal(t, 3, limited.UnreadCount)

	// uploader is not notified about their own upload
	assert.Empty(t, s.Notifications(guest.ID, time.Time{}, 0).Items)

	require.NoError(t, s.MarkNotificationRead(owner.ID, feed.Items[0].ID))
	assert.Equal(t, 2, s.Notifications(owner.ID, time.Time{}, 0).UnreadCount)

	require.NoError(t, s.DismissNotification(owner.ID, feed.Items[1].ID))
	assert.ErrorIs(t, s.DismissNotification(owner.ID, feed.Items[1].ID), ErrNotFound)

	s.MarkAllNotificationsRead(owner.ID)
	assert.Zero(t, s.Notifications(owner.ID, time.Time{}, 0).UnreadCount)

	s.ClearNotifications(owner.ID)
	assert.Empty(t, s.Notifications(owner.ID, time.Time{}, 0).Items)
}

func TestNotificationPreferences_MuteUploads(t *testing.T) {
	s, _ := newTestSandbox(t)
	owner := register(t, s, "ada@example.com", "Ada")
	guest := joinAs(t, s, owner, "bob@example.com", models.RoleContributor)
	s.ClearNotifications(owner.ID)

	off := false
	prefs := s.UpdateNotificationPreferences(owner.ID, models.NotificationPreferencesUpdate{NewUploads: &off})
	assert.False(t, prefs.NewUploads)
	assert.True(t, prefs.InAppEnabled)
	assert.Equal(t, prefs, s.NotificationPreferences(owner.ID))

	upload(t, s, guest.ID, *owner.ActiveVaultID, "Beach", "")

	assert.Empty(t, s.Notifications(owner.ID, time.Time{}, 0).Items)
}

func TestSeed(t *testing.T) {
	s, _ := newTestSandbox(t)

	require.NoError(t, s.Seed())

	owner, err := s.Authenticate(models.Credentials{Email: DemoOwnerEmail, Password: DemoOwnerPassword})
	require.NoError(t, err)
	relative, err := s.Authenticate(models.Credentials{Email: DemoRelativeEmail, Password: DemoRelativePassword})
	require.NoError(t, err)
	assert.Equal(t, *owner.ActiveVaultID, *relative.ActiveVaultID)
	assert.Equal(t, string(models.RoleContributor), relative.Role)

	items, err := s.ListMedia(relative.ID, *owner.ActiveVaultID, MediaFilter{}, false)
	require.NoError(t, err)
	assert.Len(t, items, len(demoMemories))

	assert.NotEmpty(t, s.Notifications(owner.ID, time.Time{}, 0).Items)
	assert.True(t, errors.Is(s.Seed(), ErrEmailTaken))
}
