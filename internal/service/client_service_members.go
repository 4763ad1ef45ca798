package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/legacy-keeper/internal/adapter"
	"github.com/MKhiriev/legacy-keeper/internal/app"
	"github.com/MKhiriev/legacy-keeper/internal/query"
	"github.com/MKhiriev/legacy-keeper/models"
)

// DefaultMembersPageSize is the page size of the members listing.
const DefaultMembersPageSize = 20

// membersOptions keep the listing for a minute and never refetch it on
// their own.
var membersOptions = query.Options{StaleTime: time.Minute}

type memberList = query.InfiniteData[models.FamilyMember]

type clientMembersService struct {
	Deps
	api      adapter.MembersAPI
	session  SessionService
	pageSize int
}

func NewClientMembersService(d Deps, api adapter.MembersAPI, session SessionService, pageSize int) ClientMembersService {
	if pageSize <= 0 {
		pageSize = DefaultMembersPageSize
	}
	return &clientMembersService{Deps: d, api: api, session: session, pageSize: pageSize}
}

func (s *clientMembersService) List(ctx context.Context, params models.MembersQueryParams) (memberList, error) {
	vaultID, err := s.vault()
	if err != nil {
		return memberList{}, err
	}
	params = params.Normalize()

	return query.InfiniteQuery[models.FamilyMember](ctx, s.cache, membersKey(vaultID, params),
		func(ctx context.Context, page int) (models.Page[models.FamilyMember], error) {
			p, err := s.api.ListMembers(ctx, vaultID, params, page, s.pageSize)
			return p, mapAdapterError(err)
		}, membersOptions)
}

func (s *clientMembersService) NextPage(ctx context.Context, params models.MembersQueryParams) (memberList, error) {
	vaultID, err := s.vault()
	if err != nil {
		return memberList{}, err
	}

	data, err := query.FetchNextPage[models.FamilyMember](ctx, s.cache, membersKey(vaultID, params.Normalize()))
	if errors.Is(err, query.ErrNotLoaded) {
		return s.List(ctx, params)
	}
	return data, err
}

func (s *clientMembersService) Invite(ctx context.Context, req models.InviteMemberRequest) (models.InviteMemberResult, error) {
	vaultID, err := s.vault()
	if err != nil {
		return models.InviteMemberResult{}, err
	}
	req.Email = strings.TrimSpace(req.Email)
	if err = s.validate(ctx, app.NoticeInviteFailed, req); err != nil {
		return models.InviteMemberResult{}, err
	}

	res, err := s.api.InviteMember(ctx, vaultID, req)
	if err != nil {
		return models.InviteMemberResult{}, s.failDefault("clientMembersService.Invite", app.NoticeInviteFailed, err)
	}

	s.invalidate(keyMembers)
	s.notifier.Success(app.NoticeInviteSent, req.Email)
	return res, nil
}

func (s *clientMembersService) Remove(ctx context.Context, membershipID string) error {
	vaultID, err := s.vault()
	if err != nil {
		return err
	}

	if err = s.api.RemoveMember(ctx, vaultID, membershipID); err != nil {
		return s.failDefault("clientMembersService.Remove", app.NoticeMemberRemoveFailed, err)
	}

	s.invalidate(keyMembers)
	s.notifier.Success(app.NoticeMemberRevoked, "")
	return nil
}

func (s *clientMembersService) UpdateRole(ctx context.Context, membershipID string, role models.UserRole) (models.FamilyMember, error) {
	vaultID, err := s.vault()
	if err != nil {
		return models.FamilyMember{}, err
	}
	if !role.Valid() {
		s.notifier.Error(app.NoticeRoleUpdateFailed, fmt.Sprintf("unknown role %q", role))
		return models.FamilyMember{}, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	member, err := s.api.UpdateMemberRole(ctx, vaultID, membershipID, role)
	if err != nil {
		return models.FamilyMember{}, s.failDefault("clientMembersService.UpdateRole", app.NoticeRoleUpdateFailed, err)
	}

	s.invalidate(keyMembers)
	s.notifier.Success(app.NoticeRoleUpdated, member.FullName)
	return member, nil
}

func (s *clientMembersService) Leave(ctx context.Context, vaultID string) (models.MessageResult, error) {
	if vaultID == "" {
		return models.MessageResult{}, ErrNoActiveVault
	}

	res, err := s.api.LeaveVault(ctx, vaultID)
	if err != nil {
		return models.MessageResult{}, s.failDefault("clientMembersService.Leave", app.NoticeLeaveFailed, err)
	}

	// the session was bound to the vault just left
	if s.session.ActiveVaultID() == vaultID {
		s.session.ForceLogout(ctx)
	}

	s.invalidate(vaultScopedKeys...)
	s.notifier.Success(app.NoticeVaultLeft, res.Message)
	return res, nil
}

func (s *clientMembersService) TransferOwnership(ctx context.Context, req models.TransferOwnershipRequest) (models.MessageResult, error) {
	vaultID, err := s.vault()
	if err != nil {
		return models.MessageResult{}, err
	}
	if err = s.validate(ctx, app.NoticeOwnershipFailed, req); err != nil {
		return models.MessageResult{}, err
	}

	res, err := s.api.TransferOwnership(ctx, vaultID, req)
	if err != nil {
		return models.MessageResult{}, s.failDefault("clientMembersService.TransferOwnership", app.NoticeOwnershipFailed, err)
	}

	s.invalidate(keyVaults, keyVault, keyMembers)
	s.notifier.Success(app.NoticeOwnershipMoved, res.Message)
	return res, nil
}

func (s *clientMembersService) Join(ctx context.Context, token string) (models.JoinVaultResult, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		s.notifier.Error(app.NoticeJoinFailed, app.NoticeJoinFallback)
		return models.JoinVaultResult{}, fmt.Errorf("%w: empty invite token", ErrValidation)
	}

	res, err := s.api.JoinVault(ctx, token)
	if err != nil {
		return models.JoinVaultResult{}, s.fail("clientMembersService.Join", app.NoticeJoinFailed, app.NoticeJoinFallback, err)
	}

	s.invalidate(keyVaults, keyMembers)
	s.notifier.Success(messageOr(res.Message, app.NoticeVaultJoined), res.VaultName)
	return res, nil
}

// messageOr returns msg unless it is blank.
func messageOr(msg, fallback string) string {
	if strings.TrimSpace(msg) == "" {
		return fallback
	}
	return msg
}
