package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/legacy-keeper/internal/utils"
	"github.com/MKhiriev/legacy-keeper/models"
)

func (h *Handler) listShareableInvites(w http.ResponseWriter, r *http.Request) {
	invites, err := h.sandbox.ShareableInvites(userID(r), chi.URLParam(r, "vaultID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writePage(w, r, invites)
}

func (h *Handler) createShareableInvite(w http.ResponseWriter, r *http.Request) {
	var req models.APIShareableInviteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	invite, err := h.sandbox.CreateShareableInvite(userID(r), chi.URLParam(r, "vaultID"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, models.APIShareableInviteEnvelope{Invite: invite}, http.StatusCreated)
}

func (h *Handler) revokeShareableInvite(w http.ResponseWriter, r *http.Request) {
	res, err := h.sandbox.RevokeShareableInvite(userID(r), chi.URLParam(r, "inviteID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) deleteShareableInvite(w http.ResponseWriter, r *http.Request) {
	if err := h.sandbox.DeleteShareableInvite(userID(r), chi.URLParam(r, "inviteID")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
