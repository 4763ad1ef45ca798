package service

import (
	"context"
	"time"

	"github.com/MKhiriev/legacy-keeper/internal/adapter"
	"github.com/MKhiriev/legacy-keeper/internal/app"
	"github.com/MKhiriev/legacy-keeper/internal/query"
	"github.com/MKhiriev/legacy-keeper/models"
)

var invitesOptions = query.Options{
	StaleTime:          time.Minute,
	RefetchOnFocus:     true,
	RefetchOnReconnect: true,
	RefetchOnMount:     true,
}

// clientInvitesService requests invite transitions and lets the server
// decide the outcome: every success invalidates the listing instead of
// patching it.
type clientInvitesService struct {
	Deps
	api adapter.InvitesAPI
}

func NewClientInvitesService(d Deps, api adapter.InvitesAPI) ClientInvitesService {
	return &clientInvitesService{Deps: d, api: api}
}

func (s *clientInvitesService) List(ctx context.Context, params models.InvitesQueryParams) (models.Page[models.ShareableInvite], error) {
	vaultID, err := s.vault()
	if err != nil {
		return models.Page[models.ShareableInvite]{}, err
	}
	params = params.Normalize()

	return query.Query(ctx, s.cache, shareableInvitesKey(vaultID, params),
		func(ctx context.Context) (models.Page[models.ShareableInvite], error) {
			p, err := s.api.ListShareableInvites(ctx, vaultID, params)
			return p, mapAdapterError(err)
		}, invitesOptions)
}

func (s *clientInvitesService) Create(ctx context.Context, req models.CreateShareableInviteRequest) (models.ShareableInvite, error) {
	vaultID, err := s.vault()
	if err != nil {
		return models.ShareableInvite{}, err
	}
	if err = s.validate(ctx, app.NoticeLinkCreateFailed, req); err != nil {
		return models.ShareableInvite{}, err
	}

	invite, err := s.api.CreateShareableInvite(ctx, vaultID, req)
	if err != nil {
		return models.ShareableInvite{}, s.fail("clientInvitesService.Create", app.NoticeLinkCreateFailed, app.NoticeReviewFallback, err)
	}

	s.invalidate(keyShareableInvites)
	s.notifier.Success(app.NoticeLinkCreated, invite.Link)
	return invite, nil
}

func (s *clientInvitesService) Revoke(ctx context.Context, inviteID string) (models.MessageResult, error) {
	if _, err := s.vault(); err != nil {
		return models.MessageResult{}, err
	}

	res, err := s.api.RevokeShareableInvite(ctx, inviteID)
	if err != nil {
		return models.MessageResult{}, s.failDefault("clientInvitesService.Revoke", app.NoticeLinkRevokeFailed, err)
	}

	s.invalidate(keyShareableInvites)
	s.notifier.Success(messageOr(res.Message, app.NoticeLinkRevoked), "")
	return res, nil
}

func (s *clientInvitesService) Delete(ctx context.Context, inviteID string) error {
	if _, err := s.vault(); err != nil {
		return err
	}

	if err := s.api.DeleteShareableInvite(ctx, inviteID); err != nil {
		return s.failDefault("clientInvitesService.Delete", app.NoticeLinkDeleteFailed, err)
	}

	s.invalidate(keyShareableInvites)
	s.notifier.Success(app.NoticeLinkDeleted, "")
	return nil
}
