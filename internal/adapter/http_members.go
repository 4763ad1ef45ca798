package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/legacy-keeper/models"
)

const pathJoin = "join/"

func vaultPath(vaultID string) string {
	return pathVaults + vaultID + "/"
}

func membersPath(vaultID string) string {
	return vaultPath(vaultID) + "members/"
}

// ListMembers implements [MembersAPI]. The listing is scoped by path, not by
// the vault query parameter.
func (h *httpServerAdapter) ListMembers(ctx context.Context, vaultID string, params models.MembersQueryParams, page, pageSize int) (models.Page[models.FamilyMember], error) {
	var out models.PaginatedResponse[models.APIMembership]
	if err := h.getJSON(ctx, membersPath(vaultID), listQuery("", params.Values(), page, pageSize), &out); err != nil {
		return models.Page[models.FamilyMember]{}, err
	}
	return models.ToPage(out, h.mapper.member), nil
}

// RemoveMember implements [MembersAPI].
func (h *httpServerAdapter) RemoveMember(ctx context.Context, vaultID, membershipID string) error {
	_, err := h.send(ctx, http.MethodDelete, membersPath(vaultID)+membershipID+"/", nil)
	return err
}

// UpdateMemberRole implements [MembersAPI].
func (h *httpServerAdapter) UpdateMemberRole(ctx context.Context, vaultID, membershipID string, role models.UserRole) (models.FamilyMember, error) {
	var out models.APIMembership
	body := map[string]models.UserRole{"role": role}
	if err := h.sendJSON(ctx, http.MethodPatch, membersPath(vaultID)+membershipID+"/", body, &out); err != nil {
		return models.FamilyMember{}, err
	}
	return h.mapper.member(out), nil
}

// InviteMember implements [MembersAPI].
func (h *httpServerAdapter) InviteMember(ctx context.Context, vaultID string, req models.InviteMemberRequest) (models.InviteMemberResult, error) {
	var out models.InviteMemberResult
	if err := h.sendJSON(ctx, http.MethodPost, vaultPath(vaultID)+"invite/", req, &out); err != nil {
		return models.InviteMemberResult{}, err
	}
	return out, nil
}

// JoinVault implements [MembersAPI].
func (h *httpServerAdapter) JoinVault(ctx context.Context, token string) (models.JoinVaultResult, error) {
	var out models.JoinVaultResult
	body := map[string]string{"token": token}
	if err := h.sendJSON(ctx, http.MethodPost, pathJoin, body, &out); err != nil {
		return models.JoinVaultResult{}, err
	}
	return out, nil
}

// LeaveVault implements [MembersAPI].
func (h *httpServerAdapter) LeaveVault(ctx context.Context, vaultID string) (models.MessageResult, error) {
	var out models.MessageResult
	if err := h.sendJSON(ctx, http.MethodPost, vaultPath(vaultID)+"leave/", nil, &out); err != nil {
		return models.MessageResult{}, err
	}
	return out, nil
}

// TransferOwnership implements [MembersAPI].
func (h *httpServerAdapter) TransferOwnership(ctx context.Context, vaultID string, req models.TransferOwnershipRequest) (models.MessageResult, error) {
	var out models.MessageResult
	if err := h.sendJSON(ctx, http.MethodPost, vaultPath(vaultID)+"transfer-ownership/", req, &out); err != nil {
		return models.MessageResult{}, err
	}
	return out, nil
}
