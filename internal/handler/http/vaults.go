package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/legacy-keeper/internal/utils"
)

// listVaults answers with a bare array; the client accepts both shapes.
func (h *Handler) listVaults(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.sandbox.Vaults(userID(r)), http.StatusOK)
}

func (h *Handler) getVault(w http.ResponseWriter, r *http.Request) {
	vault, err := h.sandbox.Vault(userID(r), chi.URLParam(r, "vaultID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, vault, http.StatusOK)
}
