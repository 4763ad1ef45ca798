package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/legacy-keeper/internal/app"
	"github.com/MKhiriev/legacy-keeper/internal/mock"
	"github.com/MKhiriev/legacy-keeper/models"
)

func newTestMembersSvc(t *testing.T) (*clientMembersService, *fixture, *mock.MockSessionService) {
	t.Helper()
	f := newFixture(t)
	session := mock.NewMockSessionService(f.ctrl)
	return NewClientMembersService(f.deps, f.api, session, 0).(*clientMembersService), f, session
}

func TestClientMembersService_List_ServedFromCacheWhileFresh(t *testing.T) {
	svc, f, _ := newTestMembersSvc(t)
	ctx := context.Background()
	params := models.MembersQueryParams{Search: "ada"}

	f.api.EXPECT().
		ListMembers(gomock.Any(), testVaultID, params.Normalize(), 1, DefaultMembersPageSize).
		Return(onePage(models.FamilyMember{User: models.User{ID: "fm1", FullName: "Ada"}}), nil).
		Times(1)

	for range 2 {
		data, err := svc.List(ctx, params)
		require.NoError(t, err)
		assert.Len(t, data.Items(), 1)
	}
}

func TestClientMembersService_Invite_TrimsAndInvalidates(t *testing.T) {
	svc, f, _ := newTestMembersSvc(t)
	ctx := context.Background()

	f.api.EXPECT().ListMembers(gomock.Any(), testVaultID, gomock.Any(), 1, DefaultMembersPageSize).
		Return(onePage(models.FamilyMember{User: models.User{ID: "fm1"}}), nil).Times(2)
	_, err := svc.List(ctx, models.MembersQueryParams{})
	require.NoError(t, err)

	want := models.InviteMemberRequest{Email: "bob@example.com", Role: models.RoleViewer}
	f.api.EXPECT().InviteMember(ctx, testVaultID, want).Return(models.InviteMemberResult{Message: "sent"}, nil)
	f.notifier.EXPECT().Success(app.NoticeInviteSent, "bob@example.com")

	_, err = svc.Invite(ctx, models.InviteMemberRequest{Email: "  bob@example.com ", Role: models.RoleViewer})
	require.NoError(t, err)

	// stale listing is fetched again
	_, err = svc.List(ctx, models.MembersQueryParams{})
	require.NoError(t, err)
}

func TestClientMembersService_Invite_InvalidEmail(t *testing.T) {
	svc, f, _ := newTestMembersSvc(t)

	f.notifier.EXPECT().Error(app.NoticeInviteFailed, gomock.Any())

	_, err := svc.Invite(context.Background(), models.InviteMemberRequest{Email: "nope", Role: models.RoleViewer})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestClientMembersService_UpdateRole_UnknownRole(t *testing.T) {
	svc, f, _ := newTestMembersSvc(t)

	f.notifier.EXPECT().Error(app.NoticeRoleUpdateFailed, gomock.Any())

	_, err := svc.UpdateRole(context.Background(), "fm1", models.UserRole("OWNER"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestClientMembersService_Remove_Forbidden(t *testing.T) {
	svc, f, _ := newTestMembersSvc(t)
	ctx := context.Background()

	f.api.EXPECT().RemoveMember(ctx, testVaultID, "fm1").Return(apiError(http.StatusForbidden, app.MsgAccessDenied))
	f.notifier.EXPECT().Error(app.NoticeMemberRemoveFailed, app.MsgAccessDenied)

	assert.ErrorIs(t, svc.Remove(ctx, "fm1"), ErrForbidden)
}

func TestClientMembersService_Leave_ActiveVaultLogsOut(t *testing.T) {
	svc, f, session := newTestMembersSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		f.api.EXPECT().LeaveVault(ctx, testVaultID).Return(models.MessageResult{Message: "bye"}, nil),
		session.EXPECT().ActiveVaultID().Return(testVaultID),
		session.EXPECT().ForceLogout(ctx),
		f.notifier.EXPECT().Success(app.NoticeVaultLeft, "bye"),
	)

	_, err := svc.Leave(ctx, testVaultID)
	require.NoError(t, err)
}

func TestClientMembersService_Leave_OtherVaultKeepsSession(t *testing.T) {
	svc, f, session := newTestMembersSvc(t)
	ctx := context.Background()

	f.api.EXPECT().LeaveVault(ctx, "v2").Return(models.MessageResult{}, nil)
	session.EXPECT().ActiveVaultID().Return(testVaultID)
	f.notifier.EXPECT().Success(app.NoticeVaultLeft, "")

	_, err := svc.Leave(ctx, "v2")
	require.NoError(t, err)
}

func TestClientMembersService_Leave_OwnerRejected(t *testing.T) {
	svc, f, _ := newTestMembersSvc(t)
	ctx := context.Background()

	f.api.EXPECT().LeaveVault(ctx, testVaultID).Return(models.MessageResult{}, apiError(http.StatusBadRequest, app.MsgOwnerCannotLeave))
	f.notifier.EXPECT().Error(app.NoticeLeaveFailed, app.MsgOwnerCannotLeave)

	_, err := svc.Leave(ctx, testVaultID)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestClientMembersService_TransferOwnership_WrongPassword(t *testing.T) {
	svc, f, _ := newTestMembersSvc(t)
	ctx := context.Background()
	req := models.TransferOwnershipRequest{MembershipID: "fm2", Password: "bad"}

	f.api.EXPECT().TransferOwnership(ctx, testVaultID, req).Return(models.MessageResult{}, apiError(http.StatusBadRequest, app.MsgWrongPassword))
	f.notifier.EXPECT().Error(app.NoticeOwnershipFailed, app.MsgWrongPassword)

	_, err := svc.TransferOwnership(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestClientMembersService_Join(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		res       models.JoinVaultResult
		err       error
		wantTitle string
		wantMsg   string
		wantErr   error
	}{
		{
			name:      "server message is the title",
			token:     " tok ",
			res:       models.JoinVaultResult{Message: "Welcome aboard", VaultName: "Family"},
			wantTitle: "Welcome aboard",
			wantMsg:   "Family",
		},
		{
			name:      "fallback title",
			token:     "tok",
			res:       models.JoinVaultResult{VaultName: "Family"},
			wantTitle: app.NoticeVaultJoined,
			wantMsg:   "Family",
		},
		{
			name:      "revoked link",
			token:     "tok",
			err:       apiError(http.StatusBadRequest, app.MsgInviteUnavailable),
			wantTitle: app.NoticeJoinFailed,
			wantMsg:   app.MsgInviteUnavailable,
			wantErr:   ErrInviteUnavailable,
		},
		{
			name:      "empty token",
			token:     "   ",
			wantTitle: app.NoticeJoinFailed,
			wantMsg:   app.NoticeJoinFallback,
			wantErr:   ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, f, _ := newTestMembersSvc(t)
			ctx := context.Background()

			if tt.wantErr != ErrValidation {
				f.api.EXPECT().JoinVault(ctx, "tok").Return(tt.res, tt.err)
			}
			if tt.wantErr == nil {
				f.notifier.EXPECT().Success(tt.wantTitle, tt.wantMsg)
			} else {
				f.notifier.EXPECT().Error(tt.wantTitle, tt.wantMsg)
			}

			_, err := svc.Join(ctx, tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
