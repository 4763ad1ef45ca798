package adapter

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/legacy-keeper/models"
)

const pathShareableInvites = "invites/shareable/"

func vaultInvitesPath(vaultID string) string {
	return vaultPath(vaultID) + "invites/shareable/"
}

// ListShareableInvites implements [InvitesAPI]. Unset paging falls back to
// page 1 of 10.
func (h *httpServerAdapter) ListShareableInvites(ctx context.Context, vaultID string, params models.InvitesQueryParams) (models.Page[models.ShareableInvite], error) {
	params = params.Normalize()

	var out models.PaginatedResponse[models.APIShareableInvite]
	if err := h.getJSON(ctx, vaultInvitesPath(vaultID), listQuery("", nil, params.Page, params.PageSize), &out); err != nil {
		return models.Page[models.ShareableInvite]{}, err
	}
	return models.ToPage(out, shareableInvite), nil
}

// CreateShareableInvite implements [InvitesAPI].
func (h *httpServerAdapter) CreateShareableInvite(ctx context.Context, vaultID string, req models.CreateShareableInviteRequest) (models.ShareableInvite, error) {
	body := models.APIShareableInviteRequest{
		Role:      req.Role,
		ExpiresAt: req.ExpiresAt.UTC().Format(time.RFC3339),
	}

	var out models.APIShareableInviteEnvelope
	if err := h.sendJSON(ctx, http.MethodPost, vaultInvitesPath(vaultID), body, &out); err != nil {
		return models.ShareableInvite{}, err
	}
	return shareableInvite(out.Invite), nil
}

// RevokeShareableInvite implements [InvitesAPI].
func (h *httpServerAdapter) RevokeShareableInvite(ctx context.Context, inviteID string) (models.MessageResult, error) {
	var out models.MessageResult
	if err := h.sendJSON(ctx, http.MethodPatch, pathShareableInvites+inviteID+"/revoke/", nil, &out); err != nil {
		return models.MessageResult{}, err
	}
	return out, nil
}

// DeleteShareableInvite implements [InvitesAPI].
func (h *httpServerAdapter) DeleteShareableInvite(ctx context.Context, inviteID string) error {
	_, err := h.send(ctx, http.MethodDelete, pathShareableInvites+inviteID+"/", nil)
	return err
}
