package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/legacy-keeper/internal/logger"
	"github.com/MKhiriev/legacy-keeper/internal/sandbox"
	"github.com/MKhiriev/legacy-keeper/internal/utils"
	"github.com/MKhiriev/legacy-keeper/models"
)

func membersFilter(r *http.Request) sandbox.MembersFilter {
	q := r.URL.Query()
	f := sandbox.MembersFilter{
		Search: q.Get("search"),
		Role:   models.UserRole(q.Get("role")),
	}
	if active, err := strconv.ParseBool(q.Get("isActive")); err == nil {
		f.Active = &active
	}
	return f
}

func (h *Handler) listMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.sandbox.Members(userID(r), chi.URLParam(r, "vaultID"), membersFilter(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePage(w, r, members)
}

func (h *Handler) updateMemberRole(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Role models.UserRole `json:"role"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	member, err := h.sandbox.UpdateMemberRole(userID(r), chi.URLParam(r, "vaultID"), chi.URLParam(r, "membershipID"), body.Role)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, member, http.StatusOK)
}

func (h *Handler) removeMember(w http.ResponseWriter, r *http.Request) {
	if err := h.sandbox.RemoveMember(userID(r), chi.URLParam(r, "vaultID"), chi.URLParam(r, "membershipID")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) inviteMember(w http.ResponseWriter, r *http.Request) {
	var req models.InviteMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.sandbox.InviteMember(userID(r), chi.URLParam(r, "vaultID"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	logger.FromRequest(r).Info().Str("vault_id", chi.URLParam(r, "vaultID")).Msg("member invited")
	utils.WriteJSON(w, res, http.StatusCreated)
}

func (h *Handler) joinVault(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token string `json:"token"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	res, err := h.sandbox.JoinVault(userID(r), body.Token)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) leaveVault(w http.ResponseWriter, r *http.Request) {
	res, err := h.sandbox.LeaveVault(userID(r), chi.URLParam(r, "vaultID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) transferOwnership(w http.ResponseWriter, r *http.Request) {
	var req models.TransferOwnershipRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.sandbox.TransferOwnership(userID(r), chi.URLParam(r, "vaultID"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	logger.FromRequest(r).Info().
		Str("vault_id", chi.URLParam(r, "vaultID")).
		Str("owner_id", res.OwnerID).
		Msg("vault ownership transferred")
	utils.WriteJSON(w, res, http.StatusOK)
}
